// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Connect opens a *pgxpool.Pool with retry; OpenDB bridges that pool to
// database/sql for code (and goose) that expects *sql.DB. Migrate applies
// goose migrations from any fs.FS, so packages can ship their schema with
// //go:embed. Healthcheck plugs into httpserver.ReadinessHandler.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	db := pg.OpenDB(pool)
//	if err := pg.Migrate(ctx, db, pgstore.Migrations, pgstore.MigrationsDir, cfg, log); err != nil {
//		return err
//	}
//
// IsDuplicateKeyError and IsNotFoundError classify driver errors.
package pg
