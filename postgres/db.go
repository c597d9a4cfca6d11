package postgres

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/simfrisk/SleepJournal/postgres/migrations"
)

// Open connects to postgres via the pgx stdlib driver. Pooling is handled by
// database/sql; nothing in the core holds connection state.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "[postgres.Open] sql.Open")
	}
	return db, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return errors.Wrap(err, "[postgres.Migrate] SetDialect")
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "[postgres.Migrate] UpContext")
	}
	return nil
}
