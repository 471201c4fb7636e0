// Package actionplan implements the action-plan operations around the
// reminder pipeline: creating items from catalog selections, updating their
// status and evidence, and listing them.
package actionplan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"

	"github.com/safetyplan/actionplan/internal/domain"
)

type recordStore interface {
	ReadAll(ctx context.Context, table string) ([]domain.Record, error)
	Get(ctx context.Context, table, id string) (domain.Record, error)
	Insert(ctx context.Context, table string, rec domain.Record) (string, error)
	UpdateFields(ctx context.Context, table, id string, fields domain.Record) error
}

type catalogService interface {
	List(ctx context.Context) ([]domain.BlockingAction, error)
	Catalog(ctx context.Context) (domain.Catalog, error)
	Invalidate()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxRefsPerRequest = 50
	maxTextLength     = 200
	maxURLLength      = 2048
)

// Service provides action plan operations.
type Service struct {
	log     *slog.Logger
	store   recordStore
	catalog catalogService
	tx      txManager
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a new action plan service. loc decides which calendar
// day "today" is.
func NewService(
	logger *slog.Logger,
	store recordStore,
	catalog catalogService,
	tx txManager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     logger.With("service", "actionplan"),
		store:   store,
		catalog: catalog,
		tx:      tx,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *Service) today() civil.Date {
	return domain.Today(s.now(), s.loc)
}

// getItem loads and decodes one item. Rows that fail to decode are reported
// as a conflict.
func (s *Service) getItem(ctx context.Context, id string) (domain.ActionItem, error) {
	rec, err := s.store.Get(ctx, domain.TableActionItems, id)
	if err != nil {
		return domain.ActionItem{}, err
	}
	item, q, ok := domain.DecodeActionItem(rec)
	if !ok {
		return domain.ActionItem{}, fmt.Errorf("action item %s: %s %q: %w", id, q.Reason, q.Value, domain.ErrConflict)
	}
	return item, nil
}
