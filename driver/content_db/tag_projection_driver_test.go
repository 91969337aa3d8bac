package content_db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"genonaut/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectWriteTx(mock pgxmock.PgxPoolIface) {
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite})
}

func TestLinkContentTags_EmptyInput(t *testing.T) {
	repo, mock := newRepo(t, 0)

	require.NoError(t, repo.LinkContentTags(context.Background(), 1, domain.SourceTypeItems, nil))
	require.NoError(t, repo.UnlinkContentTags(context.Background(), 1, domain.SourceTypeItems, []uuid.UUID{}))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlinkContentTags_ReprojectsInSameTx(t *testing.T) {
	repo, mock := newRepo(t, 0)

	expectWriteTx(mock)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM content_tags WHERE content_id = $1 AND content_source = $2")).
		WithArgs(int64(5), "auto", []string{tagB.String()}).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT tag_id::text FROM content_tags")).
		WithArgs(int64(5), "auto").
		WillReturnRows(pgxmock.NewRows([]string{"tag_id"}).AddRow(tagC.String()).AddRow(tagA.String()))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE content_items_auto SET tag_ids = $1::uuid[] WHERE id = $2")).
		WithArgs([]string{tagA.String(), tagC.String()}, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.UnlinkContentTags(context.Background(), 5, domain.SourceTypeAuto, []uuid.UUID{tagB})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReprojectContentTags_MissingContent(t *testing.T) {
	repo, mock := newRepo(t, 0)

	expectWriteTx(mock)
	mock.ExpectQuery("SELECT tag_id::text").
		WithArgs(int64(99), "regular").
		WillReturnRows(pgxmock.NewRows([]string{"tag_id"}))
	mock.ExpectExec("UPDATE content_items SET").
		WithArgs([]string{}, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.ReprojectContentTags(context.Background(), 99, domain.SourceTypeItems)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReprojectSource(t *testing.T) {
	repo, mock := newRepo(t, time.Second)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE content_items AS t SET tag_ids = COALESCE((SELECT array_agg(DISTINCT ct.tag_id ORDER BY ct.tag_id)")).
		WithArgs("regular").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	updated, err := repo.ReprojectSource(context.Background(), domain.SourceTypeItems)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchTags(t *testing.T) {
	repo, mock := newRepo(t, 0)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id::text, name FROM tags ORDER BY name, id LIMIT $1")).
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(tagA.String(), "landscape").
			AddRow(tagB.String(), "portrait"))

	tags, err := repo.FetchTags(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, domain.Tag{ID: tagA, Name: "landscape"}, tags[0])
	require.NoError(t, mock.ExpectationsWereMet())
}
