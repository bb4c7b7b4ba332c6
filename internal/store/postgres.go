package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore handles all entity CRUD against PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the schema if it doesn't exist. The unique
// constraints mirror the application-level uniqueness checks so that
// concurrent duplicate creation is rejected by the store itself.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name       VARCHAR(100)  NOT NULL,
			email      VARCHAR(255)  NOT NULL,
			password   VARCHAR(255)  NOT NULL,
			created_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			CONSTRAINT users_email_key UNIQUE (email)
		);

		CREATE TABLE IF NOT EXISTS task_categories (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id    UUID          NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name       VARCHAR(100)  NOT NULL,
			created_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			CONSTRAINT task_categories_user_name_key UNIQUE (user_id, name)
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id     UUID          NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category_id UUID          NOT NULL REFERENCES task_categories(id) ON DELETE CASCADE,
			title       VARCHAR(255)  NOT NULL,
			details     TEXT          NOT NULL,
			completed   BOOLEAN       NOT NULL DEFAULT FALSE,
			created_at  TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			CONSTRAINT tasks_user_category_title_key UNIQUE (user_id, category_id, title)
		);
	`)
	return err
}

// isUniqueViolation reports whether err is a violation of the named
// unique constraint (SQLSTATE 23505).
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
