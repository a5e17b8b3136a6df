package pgstore

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/newsletter/pkg/pg"
)

// MigrationsDir is the directory inside Migrations holding the goose files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, db *sql.DB, cfg pg.Config, log *slog.Logger) error {
	return pg.Migrate(ctx, db, Migrations, MigrationsDir, cfg, log)
}
