package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/safetyplan/actionplan/internal/adapter/mail"
	"github.com/safetyplan/actionplan/internal/config"
	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/internal/service/catalog"
	"github.com/safetyplan/actionplan/internal/service/notify"
)

// RunNotifier performs one overdue reminder run. The returned error is set
// only for failures that should fail the process; individual send failures
// are reported in the Report.
func RunNotifier(ctx context.Context, cfg *config.Config, logger *slog.Logger, now time.Time) (notify.Report, error) {
	if err := cfg.ValidateNotifier(); err != nil {
		return notify.Report{}, fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Notify.RunTimeout)
	defer cancel()

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return notify.Report{}, err
	}
	defer store.Close()

	catalogSvc := catalog.NewService(logger, store.Records, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	svc := notify.NewService(logger, store.Records, catalogSvc, mail.NewSender(logger, cfg.Mail), notify.Config{
		AdminRecipients: cfg.Mail.AdminRecipients,
		SubjectPrefix:   cfg.Mail.SubjectPrefix,
		AppURL:          cfg.Notify.AppURL,
		DryRun:          cfg.Notify.DryRun,
	})

	today := domain.Today(now, cfg.Notify.Location)
	logger.InfoContext(ctx, "overdue reminder run starting",
		slog.String("version", BuildVersion()),
		slog.String("store", store.Backend),
		slog.String("today", domain.FormatDeadline(today)),
		slog.Bool("dry_run", cfg.Notify.DryRun),
	)

	// svc.Run logs the summary.
	return svc.Run(ctx, today)
}
