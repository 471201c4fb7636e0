package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safetyplan/actionplan/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBlockingAction inserts a catalog row with a unique id and returns it.
func SeedBlockingAction(t *testing.T, pool *pgxpool.Pool, description string) domain.BlockingAction {
	t.Helper()
	ctx := context.Background()

	ba := domain.BlockingAction{
		ID:          "BA-" + uniqueSuffix(),
		Description: description,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO blocking_actions (id, description) VALUES ($1, $2) RETURNING created_at`,
		ba.ID, ba.Description,
	).Scan(&ba.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBlockingAction: %v", err)
	}

	return ba
}

// ActionItemOption customises a seeded action item before it is inserted.
type ActionItemOption func(*domain.ActionItem)

// WithDeadline sets the initial deadline.
func WithDeadline(d civil.Date) ActionItemOption {
	return func(it *domain.ActionItem) { it.InitialDeadline = &d }
}

// WithStatus sets the status.
func WithStatus(s domain.ActionStatus) ActionItemOption {
	return func(it *domain.ActionItem) { it.Status = s }
}

// WithResponsible sets the responsible and co-responsible e-mails.
func WithResponsible(owner, coOwner string) ActionItemOption {
	return func(it *domain.ActionItem) {
		it.ResponsibleEmail = owner
		it.CoResponsibleEmail = coOwner
	}
}

// WithUnit sets the operating unit.
func WithUnit(unit string) ActionItemOption {
	return func(it *domain.ActionItem) { it.OperatingUnit = unit }
}

// SeedActionItem inserts a pending action item for blockingRef. The default
// owner is unique per call and the deadline is a week ago.
func SeedActionItem(t *testing.T, pool *pgxpool.Pool, blockingRef string, opts ...ActionItemOption) domain.ActionItem {
	t.Helper()
	ctx := context.Background()

	deadline := civil.DateOf(time.Now().AddDate(0, 0, -7))
	it := domain.ActionItem{
		ID:                "AI-" + uniqueSuffix(),
		BlockingActionRef: blockingRef,
		OperatingUnit:     "Unit " + uniqueSuffix(),
		ResponsibleEmail:  "owner-" + uniqueSuffix() + "@example.com",
		InitialDeadline:   &deadline,
		Status:            domain.ActionStatusPending,
	}
	for _, opt := range opts {
		opt(&it)
	}

	var deadlineArg any
	if it.InitialDeadline != nil {
		deadlineArg = domain.FormatISODate(*it.InitialDeadline)
	}
	var coOwner any
	if it.CoResponsibleEmail != "" {
		coOwner = it.CoResponsibleEmail
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO action_items
		    (id, blocking_action_ref, operating_unit, responsible_email, co_responsible_email, initial_deadline, status)
		 VALUES ($1, $2, $3, $4, $5, $6::date, $7)
		 RETURNING created_at, updated_at`,
		it.ID, it.BlockingActionRef, it.OperatingUnit, it.ResponsibleEmail, coOwner, deadlineArg, string(it.Status),
	).Scan(&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActionItem: %v", err)
	}

	return it
}
