package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

var psqlKV = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresKV keeps every record as one row of the kv_store table
// (key TEXT PRIMARY KEY, value JSONB). See migrations/.
type postgresKV struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresKV(db *pgxpool.Pool, log logger.Logger) KV {
	return &postgresKV{db: db, logger: log}
}

func (s *postgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	sql, args, err := psqlKV.Select("value").From("kv_store").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build kv get query", err)
	}

	var value []byte
	err = s.db.QueryRow(ctx, sql, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, apperror.NewInternal("failed to query kv_store", err)
	}
	return value, nil
}

func (s *postgresKV) Set(ctx context.Context, key string, value []byte) error {
	sql, args, err := psqlKV.Insert("kv_store").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build kv set query", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to upsert kv_store row", err)
	}
	return nil
}

func (s *postgresKV) Delete(ctx context.Context, key string) error {
	sql, args, err := psqlKV.Delete("kv_store").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build kv delete query", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to delete kv_store row", err)
	}
	return nil
}

func (s *postgresKV) ListByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	sql, args, err := psqlKV.Select("value").From("kv_store").
		Where(sq.Like{"key": prefix + "%"}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build kv list query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list kv_store rows", err)
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, apperror.NewInternal("failed to scan kv_store row", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating kv_store rows", err)
	}
	return values, nil
}
