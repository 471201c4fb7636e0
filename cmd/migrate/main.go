// Command migrate applies the embedded SQL migrations to DATABASE_DSN.
//
// Usage:
//
//	migrate [up|down|status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/safetyplan/actionplan/internal/app"
	"github.com/safetyplan/actionplan/internal/config"
	"github.com/safetyplan/actionplan/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(command, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(command, dsn string, logger *slog.Logger) error {
	if dsn == "" {
		return errors.New("database.dsn is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			logger.Info("migration applied", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
		}
		return err
	case "down":
		r, err := provider.Down(ctx)
		if r != nil {
			logger.Info("migration rolled back", slog.String("source", r.Source.Path))
		}
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration status",
				slog.String("source", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
		return nil
	}

	return fmt.Errorf("unknown command %q (want up, down or status)", command)
}
