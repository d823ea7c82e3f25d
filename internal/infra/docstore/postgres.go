package docstore

import (
	"context"
	"errors"
	"sort"

	"needboard/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (s *PostgresStore) Get(ctx context.Context, table string, id uuid.UUID, dest any) error {
	query, args, err := psql().Select("*").From(table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build get query", err)
	}

	if err := pgxscan.Get(ctx, s.pool, dest, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return infra.WrapRepoErr("document not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to get document", err)
	}
	return nil
}

func (s *PostgresStore) Find(ctx context.Context, table string, filter Filter, opts FindOptions, dest any) error {
	builder := psql().Select("*").From(table)
	if len(filter) > 0 {
		builder = builder.Where(sq.Eq(filter))
	}
	if opts.OrderBy != "" {
		builder = builder.OrderBy(opts.OrderBy)
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build find query", err)
	}

	if err := pgxscan.Select(ctx, s.pool, dest, query, args...); err != nil {
		return infra.WrapRepoErr("failed to find documents", err)
	}
	return nil
}

// InsertUnique relies on the table's declared unique constraints; uniqueKey
// is informational for this backend.
func (s *PostgresStore) InsertUnique(ctx context.Context, table string, row map[string]any, _ []string) error {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	vals := make([]any, 0, len(cols))
	for _, col := range cols {
		vals = append(vals, row[col])
	}

	query, args, err := psql().Insert(table).Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build insert query", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("unique key violated", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert document", err)
	}
	return nil
}

// CompareAndSet is a single conditional UPDATE; the row-match count tells us
// atomically whether the expected value still held.
func (s *PostgresStore) CompareAndSet(ctx context.Context, table string, id uuid.UUID, field string, expected, next any) (bool, error) {
	query, args, err := psql().Update(table).
		Set(field, next).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, field: expected}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build compare-and-set query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to execute compare-and-set", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PostgresStore) Increment(ctx context.Context, table string, id uuid.UUID, field string, delta int64) error {
	query, args, err := psql().Update(table).
		Set(field, sq.Expr(field+" + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build increment query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to execute increment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("document not found for increment", nil, infra.KindNotFound)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, table string, id uuid.UUID, fields map[string]any) error {
	builder := psql().Update(table).Set("updated_at", sq.Expr("now()"))
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		builder = builder.Set(col, fields[col])
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to execute update", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("document not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, table string, id uuid.UUID) error {
	query, args, err := psql().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build delete query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to execute delete", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("document not found for delete", nil, infra.KindNotFound)
	}
	return nil
}
