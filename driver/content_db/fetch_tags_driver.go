package content_db

import (
	"context"
	"fmt"

	"genonaut/domain"
	"genonaut/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const opFetchTags = "FetchTags"

// FetchTags lists the tag catalog ordered by name.
func (r *ContentDBRepository) FetchTags(ctx context.Context, limit int) ([]domain.Tag, error) {
	if r == nil || r.pool == nil {
		return nil, &domain.StoreError{Op: opFetchTags, Cause: errDBUnavailable}
	}

	query := fmt.Sprintf("SELECT id::text, name FROM %s ORDER BY name, id LIMIT $1", r.tagsRelation)
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch tags", "error", err)
		return nil, classifyStoreError(opFetchTags, err)
	}

	tags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tag, error) {
		var (
			raw string
			tag domain.Tag
		)
		if err := row.Scan(&raw, &tag.Name); err != nil {
			return domain.Tag{}, err
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.Tag{}, fmt.Errorf("invalid tag id %q: %w", raw, err)
		}
		tag.ID = id
		return tag, nil
	})
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to scan tags", "error", err)
		return nil, classifyStoreError(opFetchTags, err)
	}

	return tags, nil
}
