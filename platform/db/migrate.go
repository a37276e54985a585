package db

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedded embed.FS

// RunMigrations applies all pending goose migrations. The embedded set is used
// unless migrationsDir points at an existing directory on disk.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	dir := "migrations"
	if d := strings.TrimSpace(migrationsDir); d != "" && dirExists(d) {
		goose.SetBaseFS(nil)
		dir = d
	} else {
		goose.SetBaseFS(embedded)
	}

	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
