// Package notify finds overdue action items and e-mails one consolidated
// reminder per responsible-party pair.
//
// A run is a single sequential pass: load, select, group, then for each
// group build recipients, render and send. Nothing about past deliveries is
// persisted, so an unchanged overdue set produces the same messages on every
// run.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-sql/civil"

	"github.com/safetyplan/actionplan/internal/domain"
)

type recordReader interface {
	ReadAll(ctx context.Context, table string) ([]domain.Record, error)
}

type catalogSource interface {
	Catalog(ctx context.Context) (domain.Catalog, error)
}

type mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// Config holds run-wide settings.
type Config struct {
	AdminRecipients []string
	SubjectPrefix   string
	AppURL          string
	// DryRun renders every message but sends none.
	DryRun bool
}

// Service runs the overdue reminder pipeline.
type Service struct {
	log      *slog.Logger
	records  recordReader
	catalog  catalogSource
	mail     mailer
	renderer *Renderer
	cfg      Config
}

// NewService creates a new notify service.
func NewService(
	logger *slog.Logger,
	records recordReader,
	catalog catalogSource,
	mail mailer,
	cfg Config,
) *Service {
	return &Service{
		log:      logger.With("service", "notify"),
		records:  records,
		catalog:  catalog,
		mail:     mail,
		renderer: NewRenderer(cfg.SubjectPrefix),
		cfg:      cfg,
	}
}

// Run sends reminders for every overdue group as of today. Only load
// failures are returned; delivery problems are reported per group.
func (s *Service) Run(ctx context.Context, today civil.Date) (Report, error) {
	mode := modeSend
	if s.cfg.DryRun {
		mode = modeDryRun
	}
	report, _, err := s.process(ctx, today, mode)
	if err != nil {
		return report, err
	}

	s.log.InfoContext(ctx, "notification run finished",
		slog.String("today", today.String()),
		slog.Int("overdue", report.Overdue),
		slog.Int("groups", report.Groups),
		slog.Int("sent", report.Sent),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("quarantined", report.Quarantined),
		slog.Int("no_deadline", report.NoDeadline),
	)
	return report, nil
}

// Preview renders the messages a run would send today without sending them.
func (s *Service) Preview(ctx context.Context, today civil.Date) (PreviewResult, error) {
	report, messages, err := s.process(ctx, today, modePreview)
	if err != nil {
		return PreviewResult{}, err
	}
	return PreviewResult{Report: report, Messages: messages}, nil
}

type runMode int

const (
	modeSend runMode = iota
	modeDryRun
	modePreview
)

func (s *Service) process(ctx context.Context, today civil.Date, mode runMode) (Report, []Message, error) {
	var report Report

	items, err := s.loadItems(ctx, &report)
	if err != nil {
		return report, nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return report, nil, fmt.Errorf("load catalog: %w", err)
	}

	overdue := SelectOverdue(items, today)
	report.Overdue = len(overdue)
	if len(overdue) == 0 {
		s.log.InfoContext(ctx, "no overdue action items", slog.String("today", today.String()))
		return report, nil, nil
	}

	batches := GroupByResponsible(overdue, catalog)
	report.Groups = len(batches)

	var messages []Message
	for _, b := range batches {
		res, msg := s.deliver(ctx, b, today, mode)
		report.add(res)
		if msg != nil {
			messages = append(messages, *msg)
		}
	}

	return report, messages, nil
}

// loadItems reads and decodes every action item. Quarantined rows are logged
// and counted.
func (s *Service) loadItems(ctx context.Context, report *Report) ([]domain.ActionItem, error) {
	records, err := s.records.ReadAll(ctx, domain.TableActionItems)
	if err != nil {
		return nil, fmt.Errorf("read action items: %w", err)
	}

	items, quarantined := domain.DecodeActionItems(records)
	for _, q := range quarantined {
		s.log.WarnContext(ctx, "action item quarantined",
			slog.String("id", q.ID),
			slog.String("field", q.Field),
			slog.String("value", q.Value),
			slog.String("reason", q.Reason),
		)
	}
	report.Quarantined = len(quarantined)

	report.NoDeadline = countOpenWithoutDeadline(items)
	if report.NoDeadline > 0 {
		s.log.DebugContext(ctx, "open action items without a usable deadline",
			slog.Int("count", report.NoDeadline),
		)
	}

	return items, nil
}

// deliver handles one batch. The returned message is nil when nothing was
// rendered.
func (s *Service) deliver(ctx context.Context, b Batch, today civil.Date, mode runMode) (DeliveryResult, *Message) {
	res := DeliveryResult{Key: b.Key, Items: len(b.Items)}
	log := s.log.With(
		slog.String("responsible", b.Key.Responsible),
		slog.String("co_responsible", b.Key.CoResponsible),
		slog.Int("items", len(b.Items)),
	)

	// Admin observers alone never receive a batch whose owner is unusable.
	if !domain.IsPlausibleEmail(b.Key.Responsible) {
		log.WarnContext(ctx, "skipping batch without responsible email", slog.String("ids", joinIDs(b)))
		res.Outcome = OutcomeSkipped
		res.Reason = ReasonMissingResponsible
		return res, nil
	}

	res.Recipients = BuildRecipients(b.Key, s.cfg.AdminRecipients)
	if len(res.Recipients) == 0 {
		log.WarnContext(ctx, "skipping batch without valid recipients")
		res.Outcome = OutcomeSkipped
		res.Reason = ReasonNoRecipients
		return res, nil
	}

	subject := s.renderer.Subject(b, today)
	body, err := s.renderer.Render(b, RenderContext{Today: today, AppURL: s.cfg.AppURL})
	if err != nil {
		log.ErrorContext(ctx, "render failed", slog.String("error", err.Error()))
		res.Outcome = OutcomeFailed
		res.Err = err
		return res, nil
	}
	msg := &Message{
		Key:        b.Key,
		Recipients: res.Recipients,
		Subject:    subject,
		HTMLBody:   body,
		Items:      len(b.Items),
	}

	switch mode {
	case modePreview:
		res.Outcome = OutcomeSkipped
		res.Reason = ReasonPreview
		return res, msg
	case modeDryRun:
		log.InfoContext(ctx, "dry run: reminder not sent",
			slog.String("recipients", strings.Join(res.Recipients, ",")),
			slog.String("subject", subject),
		)
		res.Outcome = OutcomeSkipped
		res.Reason = ReasonDryRun
		return res, msg
	}

	if err := s.mail.Send(ctx, res.Recipients, subject, body); err != nil {
		log.ErrorContext(ctx, "reminder delivery failed",
			slog.String("recipients", strings.Join(res.Recipients, ",")),
			slog.String("error", err.Error()),
		)
		res.Outcome = OutcomeFailed
		res.Err = err
		return res, msg
	}

	log.InfoContext(ctx, "reminder sent", slog.String("recipients", strings.Join(res.Recipients, ",")))
	res.Outcome = OutcomeSent
	return res, msg
}

func joinIDs(b Batch) string {
	ids := make([]string, len(b.Items))
	for i, it := range b.Items {
		ids[i] = it.ID
	}
	return strings.Join(ids, ",")
}
