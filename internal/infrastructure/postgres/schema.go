package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap crea las tablas si no existen. Las referencias entre entidades son
// laxas (columnas de texto, sin FK): la resolución ocurre solo en las lecturas
// que expanden, igual que en un almacén de documentos.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS addresses (
			id          TEXT PRIMARY KEY,
			street      TEXT NOT NULL,
			city        TEXT NOT NULL,
			zip_code    TEXT NOT NULL,
			country     TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			first_name    TEXT NOT NULL DEFAULT '',
			last_name     TEXT NOT NULL DEFAULT '',
			phone         TEXT NOT NULL DEFAULT '',
			address_id    TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
		`CREATE TABLE IF NOT EXISTS exercises (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			description  TEXT NOT NULL,
			duration     DOUBLE PRECISION NOT NULL,
			repetitions  DOUBLE PRECISION NOT NULL,
			series       DOUBLE PRECISION NOT NULL,
			rest         DOUBLE PRECISION NOT NULL,
			difficulty   TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS descriptions (
			id            TEXT PRIMARY KEY,
			installations TEXT[] NOT NULL,
			equipments    TEXT[] NOT NULL,
			activities    TEXT[] NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS training_rooms (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			capacity        INTEGER NOT NULL,
			specializations TEXT[] NOT NULL DEFAULT '{}',
			address_id      TEXT NOT NULL DEFAULT '',
			responsible_id  TEXT NOT NULL DEFAULT '',
			exercise_ids    TEXT[] NOT NULL DEFAULT '{}',
			description_id  TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
