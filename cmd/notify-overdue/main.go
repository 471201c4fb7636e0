// Command notify-overdue e-mails one reminder per responsible party listing
// their overdue blocking actions. It is intended to be invoked once a day by
// an external scheduler.
//
// Configuration comes from CONFIG_PATH and the environment; run with -help to
// list every variable. Send failures are logged and do not change the exit
// code.
//
// Exit codes: 0 = run completed (including nothing overdue), 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/safetyplan/actionplan/internal/app"
	"github.com/safetyplan/actionplan/internal/config"
)

func main() {
	flags := flag.NewFlagSet("notify-overdue", flag.ExitOnError)
	dryRun := flags.Bool("dry-run", false, "render reminders without sending them")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: notify-overdue [-dry-run]\n\n")
		flags.PrintDefaults()
		fmt.Fprintf(flags.Output(), "\n%s\n", config.Usage())
	}
	flags.Parse(os.Args[1:]) //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		os.Exit(1)
	}
	if *dryRun {
		cfg.Notify.DryRun = true
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := app.RunNotifier(ctx, cfg, logger, time.Now()); err != nil {
		logger.Error("overdue reminder run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
