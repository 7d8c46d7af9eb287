package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// withGoose opens a database/sql handle over the pool and prepares goose.
func withGoose(pool *pgxpool.Pool, fn func(db *sql.DB) error) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return fn(db)
}

// RunMigrations applies all pending database migrations.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	return withGoose(pool, func(db *sql.DB) error {
		if err := goose.UpContext(ctx, db, "migrations"); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("get migration version: %w", err)
		}

		slog.Info("migrations completed", "version", version)
		return nil
	})
}

// RollbackMigration reverts the most recently applied migration.
func RollbackMigration(ctx context.Context, pool *pgxpool.Pool) error {
	return withGoose(pool, func(db *sql.DB) error {
		if err := goose.DownContext(ctx, db, "migrations"); err != nil {
			return fmt.Errorf("rollback migration: %w", err)
		}

		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("get migration version: %w", err)
		}

		slog.Info("migration rolled back", "version", version)
		return nil
	})
}

// MigrationVersion returns the currently applied migration version.
func MigrationVersion(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	var version int64
	err := withGoose(pool, func(db *sql.DB) error {
		v, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("get migration version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}
