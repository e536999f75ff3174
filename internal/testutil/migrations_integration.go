//go:build integration

package testutil

import (
	"context"
	"log"
	"os"

	"github.com/Gunvolt24/pixelcraft/migrations"
)

// ApplyMigrationsGoose — применяет встроенные миграции к тестовой БД.
func ApplyMigrationsGoose(ctx context.Context, dsn string) error {
	return migrations.Up(ctx, dsn, log.New(os.Stdout, "[goose] ", 0))
}
