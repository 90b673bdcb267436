package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrNoRows      = errors.New("no rows")
	ErrUnavailable = errors.New("storage unavailable")
)

type PostgresStorage struct {
	db *sqlx.DB
}

func NewPostgresStorage(db *sqlx.DB) (*PostgresStorage, error) {
	storage := &PostgresStorage{db: db}

	err := storage.runMigrations(context.Background())
	if err != nil {
		return nil, err
	}

	return storage, nil
}

func (s *PostgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte

	row := s.db.QueryRowxContext(ctx, `SELECT data FROM snapshots WHERE key = $1;`, key)

	if err := row.Err(); err != nil {
		return nil, classifyError(err)
	}

	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRows
		}

		return nil, classifyError(err)
	}

	return data, nil
}

func (s *PostgresStorage) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now();`,
		key, data,
	)
	if err != nil {
		return classifyError(err)
	}

	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = $1;`, key)
	if err != nil {
		return classifyError(err)
	}

	return nil
}

func (s *PostgresStorage) runMigrations(ctx context.Context) error {
	_, err := s.db.ExecContext(
		ctx,
		`CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	)
	if err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	return nil
}

func classifyError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		if pgerrcode.IsConnectionException(code) || pgerrcode.IsOperatorIntervention(code) || pgerrcode.IsInsufficientResources(code) {
			return fmt.Errorf("%w: %s", ErrUnavailable, pqErr.Message)
		}

		return err
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	return err
}
