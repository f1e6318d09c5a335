package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Cada perfil se guarda completo en data (JSONB, mismos nombres de campo que la API);
// las columnas aparte son las claves de búsqueda y las restricciones de unicidad.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id    TEXT PRIMARY KEY,
		email      TEXT NOT NULL,
		role       TEXT NOT NULL,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS users_email_idx ON users (email)`,
	`CREATE TABLE IF NOT EXISTS vets (
		vet_id                 TEXT PRIMARY KEY,
		user_id                TEXT NOT NULL CONSTRAINT vets_user_id_key UNIQUE,
		primary_specialization TEXT NOT NULL DEFAULT '',
		city                   TEXT NOT NULL DEFAULT '',
		rating                 NUMERIC(3,2) NOT NULL DEFAULT 0,
		data                   JSONB NOT NULL,
		created_at             TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS vets_specialization_idx ON vets (primary_specialization, rating DESC)`,
	`CREATE TABLE IF NOT EXISTS shelters (
		shelter_id TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL CONSTRAINT shelters_user_id_key UNIQUE,
		city       TEXT NOT NULL DEFAULT '',
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		pet_id     TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		shelter_id TEXT,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_owner_idx ON pets (owner_id, created_at DESC)`,
}

// EnsureSchema crea tablas e índices si no existen, en una sola transacción.
func EnsureSchema(ctx context.Context, db TxBeginner) error {
	return RunInTx(ctx, db, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema: %w", err)
			}
		}
		return nil
	})
}
