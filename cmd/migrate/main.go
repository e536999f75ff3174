package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Gunvolt24/pixelcraft/config"
	"github.com/Gunvolt24/pixelcraft/migrations"
	"github.com/Gunvolt24/pixelcraft/pkg/logger"
)

// CLI для миграций схемы каталога: up | down | status.
func main() {
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	// goose пишет через стандартный *log.Logger — направляем его в zap.
	gooseLog := zap.NewStdLog(logg.Base().Named("goose"))

	switch cmd {
	case "up":
		err = migrations.Up(ctx, cfg.Postgres.DSN, gooseLog)
	case "down":
		err = migrations.Down(ctx, cfg.Postgres.DSN, gooseLog)
	case "status":
		err = migrations.Status(ctx, cfg.Postgres.DSN, gooseLog)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want up|down|status)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		logg.Errorf(ctx, "migrate %s: %v", cmd, err)
		_ = cleanup()
		os.Exit(1)
	}
	logg.Infof(ctx, "migrate %s: done", cmd)
}
