package content_db

import (
	"context"
	"fmt"
	"time"

	"genonaut/domain"
	"genonaut/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	opLinkTags      = "LinkContentTags"
	opUnlinkTags    = "UnlinkContentTags"
	opReprojectTags = "ReprojectContentTags"
)

var readWrite = pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}

// LinkContentTags inserts junction rows and refreshes the record's tag_ids in one transaction.
func (r *ContentDBRepository) LinkContentTags(ctx context.Context, contentID int64, src domain.SourceType, tagIDs []uuid.UUID) (err error) {
	if len(tagIDs) == 0 {
		return nil
	}
	if r == nil || r.pool == nil {
		return &domain.StoreError{Op: opLinkTags, Cause: errDBUnavailable}
	}

	start := time.Now()
	defer func() { observe(opLinkTags, start, err) }()

	tx, err := r.beginTx(ctx, readWrite)
	if err != nil {
		return classifyStoreError(opLinkTags, err)
	}

	insert := fmt.Sprintf(
		"INSERT INTO %s (content_id, content_source, tag_id) VALUES ($1, $2, $3::uuid) ON CONFLICT DO NOTHING",
		r.tagJunction,
	)
	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(insert, contentID, string(src.ContentSource()), tagID.String())
	}

	br := tx.SendBatch(ctx, batch)
	for _, tagID := range tagIDs {
		if _, err = br.Exec(); err != nil {
			_ = br.Close()
			rollback(ctx, tx)
			logger.Logger.ErrorContext(ctx, "failed to link tag", "content_id", contentID, "tag_id", tagID, "error", err)
			return classifyStoreError(opLinkTags, err)
		}
	}
	if err = br.Close(); err != nil {
		rollback(ctx, tx)
		return classifyStoreError(opLinkTags, err)
	}

	if err = r.reproject(ctx, tx, contentID, src); err != nil {
		rollback(ctx, tx)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return classifyStoreError(opLinkTags, err)
	}
	return nil
}

// UnlinkContentTags removes junction rows and refreshes the record's tag_ids in one transaction.
func (r *ContentDBRepository) UnlinkContentTags(ctx context.Context, contentID int64, src domain.SourceType, tagIDs []uuid.UUID) (err error) {
	if len(tagIDs) == 0 {
		return nil
	}
	if r == nil || r.pool == nil {
		return &domain.StoreError{Op: opUnlinkTags, Cause: errDBUnavailable}
	}

	start := time.Now()
	defer func() { observe(opUnlinkTags, start, err) }()

	tx, err := r.beginTx(ctx, readWrite)
	if err != nil {
		return classifyStoreError(opUnlinkTags, err)
	}

	ids := make([]string, len(tagIDs))
	for i, id := range tagIDs {
		ids[i] = id.String()
	}
	remove := fmt.Sprintf(
		"DELETE FROM %s WHERE content_id = $1 AND content_source = $2 AND tag_id = ANY($3::uuid[])",
		r.tagJunction,
	)
	if _, err = tx.Exec(ctx, remove, contentID, string(src.ContentSource()), ids); err != nil {
		rollback(ctx, tx)
		logger.Logger.ErrorContext(ctx, "failed to unlink tags", "content_id", contentID, "error", err)
		return classifyStoreError(opUnlinkTags, err)
	}

	if err = r.reproject(ctx, tx, contentID, src); err != nil {
		rollback(ctx, tx)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return classifyStoreError(opUnlinkTags, err)
	}
	return nil
}

// ReprojectContentTags rebuilds tag_ids for one record from the junction.
func (r *ContentDBRepository) ReprojectContentTags(ctx context.Context, contentID int64, src domain.SourceType) (err error) {
	if r == nil || r.pool == nil {
		return &domain.StoreError{Op: opReprojectTags, Cause: errDBUnavailable}
	}

	start := time.Now()
	defer func() { observe(opReprojectTags, start, err) }()

	tx, err := r.beginTx(ctx, readWrite)
	if err != nil {
		return classifyStoreError(opReprojectTags, err)
	}
	if err = r.reproject(ctx, tx, contentID, src); err != nil {
		rollback(ctx, tx)
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return classifyStoreError(opReprojectTags, err)
	}
	return nil
}

// ReprojectSource rebuilds every stale tag_ids array of one source and returns the number of rows fixed.
// array_agg orders uuids bytewise, the same order domain.ProjectTagIDs uses.
func (r *ContentDBRepository) ReprojectSource(ctx context.Context, src domain.SourceType) (updated int64, err error) {
	if r == nil || r.pool == nil {
		return 0, &domain.StoreError{Op: opReprojectTags, Cause: errDBUnavailable}
	}

	start := time.Now()
	defer func() { observe(opReprojectTags, start, err) }()

	projection := fmt.Sprintf(
		"COALESCE((SELECT array_agg(DISTINCT ct.tag_id ORDER BY ct.tag_id) FROM %s ct WHERE ct.content_id = t.id AND ct.content_source = $1), '{}'::uuid[])",
		r.tagJunction,
	)
	update := fmt.Sprintf(
		"UPDATE %s AS t SET tag_ids = %s WHERE t.tag_ids IS DISTINCT FROM %s",
		r.layout.Table(src), projection, projection,
	)

	tag, err := r.pool.Exec(ctx, update, string(src.ContentSource()))
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to reproject source", "source_type", src, "error", err)
		return 0, classifyStoreError(opReprojectTags, err)
	}
	return tag.RowsAffected(), nil
}

func (r *ContentDBRepository) reproject(ctx context.Context, tx pgx.Tx, contentID int64, src domain.SourceType) error {
	selectLinks := fmt.Sprintf(
		"SELECT tag_id::text FROM %s WHERE content_id = $1 AND content_source = $2",
		r.tagJunction,
	)
	rows, err := tx.Query(ctx, selectLinks, contentID, string(src.ContentSource()))
	if err != nil {
		return classifyStoreError(opReprojectTags, err)
	}
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContentTagLink, error) {
		var raw string
		if err := row.Scan(&raw); err != nil {
			return domain.ContentTagLink{}, err
		}
		tagID, err := uuid.Parse(raw)
		if err != nil {
			return domain.ContentTagLink{}, err
		}
		return domain.ContentTagLink{ContentID: contentID, ContentSource: src.ContentSource(), TagID: tagID}, nil
	})
	if err != nil {
		return classifyStoreError(opReprojectTags, err)
	}

	projected := domain.ProjectTagIDs(links)
	ids := make([]string, len(projected))
	for i, id := range projected {
		ids[i] = id.String()
	}

	update := fmt.Sprintf("UPDATE %s SET tag_ids = $1::uuid[] WHERE id = $2", r.layout.Table(src))
	tag, err := tx.Exec(ctx, update, ids, contentID)
	if err != nil {
		return classifyStoreError(opReprojectTags, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%d", domain.ErrContentNotFound, src, contentID)
	}
	return nil
}
