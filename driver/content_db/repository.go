package content_db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool the repository needs; pgxmock pools satisfy it too.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type ContentDBRepository struct {
	pool             PgxIface
	planner          *QueryPlanner
	layout           StoreLayout
	tagJunction      string
	tagsRelation     string
	statementTimeout time.Duration
}

// Options describe where content lives and how long a statement may run.
type Options struct {
	Layout               StoreLayout
	TagJunction          string
	TagsRelation         string
	AllModeSemiJoinLimit int
	StatementTimeout     time.Duration
}

func NewContentDBRepository(pool PgxIface, opts Options) *ContentDBRepository {
	return &ContentDBRepository{
		pool:             pool,
		planner:          NewQueryPlanner(opts.Layout, opts.TagJunction, opts.AllModeSemiJoinLimit),
		layout:           opts.Layout,
		tagJunction:      opts.TagJunction,
		tagsRelation:     opts.TagsRelation,
		statementTimeout: opts.StatementTimeout,
	}
}

// Ping checks that the database is reachable.
func (r *ContentDBRepository) Ping(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return errDBUnavailable
	}
	return r.pool.Ping(ctx)
}
