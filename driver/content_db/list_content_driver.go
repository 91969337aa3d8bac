package content_db

import (
	"context"
	"fmt"
	"time"

	"genonaut/domain"
	"genonaut/utils/logger"
	"genonaut/utils/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const opListContent = "ListContent"

// ListContent runs the page query, and the count when requested, inside one
// read-only repeatable-read snapshot. It returns up to PageSize+1 rows.
func (r *ContentDBRepository) ListContent(ctx context.Context, q domain.ContentQuery) (slice *domain.ContentSlice, err error) {
	if r == nil || r.pool == nil {
		return nil, &domain.StoreError{Op: opListContent, Cause: errDBUnavailable}
	}

	plan, err := r.planner.Plan(q)
	if err != nil {
		return nil, err
	}
	if plan.Empty {
		return &domain.ContentSlice{Records: []*domain.ContentRecord{}, TotalCount: 0}, nil
	}
	metrics.RecordPlan(string(plan.TagStrategy))

	start := time.Now()
	defer func() { observe(opListContent, start, err) }()

	tx, err := r.beginTx(ctx, readOnlySnapshot)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to begin content snapshot", "error", err)
		return nil, classifyStoreError(opListContent, err)
	}

	records, err := queryContentRecords(ctx, tx, plan.SQL, plan.Args)
	if err != nil {
		rollback(ctx, tx)
		logger.Logger.ErrorContext(ctx, "failed to query content page",
			"error", err, "tag_strategy", plan.TagStrategy, "page_size", q.PageSize)
		return nil, classifyStoreError(opListContent, err)
	}

	total := domain.TotalCountSkipped
	if q.IncludeTotalCount {
		if err = tx.QueryRow(ctx, plan.CountSQL, plan.CountArgs...).Scan(&total); err != nil {
			rollback(ctx, tx)
			logger.Logger.ErrorContext(ctx, "failed to count content", "error", err)
			return nil, classifyStoreError(opListContent, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, classifyStoreError(opListContent, err)
	}

	logger.Logger.DebugContext(ctx, "listed content",
		"rows", len(records), "total_count", total, "tag_strategy", plan.TagStrategy)

	return &domain.ContentSlice{Records: records, TotalCount: total}, nil
}

func queryContentRecords(ctx context.Context, tx pgx.Tx, sql string, args []any) ([]*domain.ContentRecord, error) {
	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.ContentRecord, 0)
	for rows.Next() {
		record, err := scanContentRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func scanContentRecord(rows pgx.Rows) (*domain.ContentRecord, error) {
	var (
		record    domain.ContentRecord
		creatorID string
		source    string
		tagIDs    []string
	)
	if err := rows.Scan(
		&record.ID,
		&record.Title,
		&record.ContentType,
		&creatorID,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.QualityScore,
		&record.IsPrivate,
		&source,
		&tagIDs,
	); err != nil {
		return nil, fmt.Errorf("scan content row: %w", err)
	}

	var err error
	if record.CreatorID, err = uuid.Parse(creatorID); err != nil {
		return nil, fmt.Errorf("content %d: invalid creator id: %w", record.ID, err)
	}

	src, ok := domain.ParseSourceType(source)
	if !ok {
		return nil, fmt.Errorf("content %d: unknown source type %q", record.ID, source)
	}
	record.SourceType = src

	record.TagIDs = make([]uuid.UUID, 0, len(tagIDs))
	for _, raw := range tagIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("content %d: invalid tag id: %w", record.ID, err)
		}
		record.TagIDs = append(record.TagIDs, id)
	}

	return &record, nil
}
