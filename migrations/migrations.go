// Package migrations — схема БД, встроенная в бинарь; применяется goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up — применяет все миграции к БД по DSN.
func Up(ctx context.Context, dsn string, logger goose.Logger) error {
	return run(ctx, dsn, logger, func(db *sql.DB) error { return goose.UpContext(ctx, db, ".") })
}

// Down — откатывает последнюю миграцию.
func Down(ctx context.Context, dsn string, logger goose.Logger) error {
	return run(ctx, dsn, logger, func(db *sql.DB) error { return goose.DownContext(ctx, db, ".") })
}

// Status — печатает состояние миграций через logger.
func Status(ctx context.Context, dsn string, logger goose.Logger) error {
	return run(ctx, dsn, logger, func(db *sql.DB) error { return goose.StatusContext(ctx, db, ".") })
}

func run(ctx context.Context, dsn string, logger goose.Logger, fn func(*sql.DB) error) error {
	goose.SetBaseFS(FS)
	if logger != nil {
		goose.SetLogger(logger)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	if err := fn(db); err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	return nil
}
