// Package catalog serves the blocking-action catalog from the record store
// through a TTL cache with explicit invalidation.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/safetyplan/actionplan/internal/cache"
	"github.com/safetyplan/actionplan/internal/domain"
)

type recordReader interface {
	ReadAll(ctx context.Context, table string) ([]domain.Record, error)
}

const cacheKey = domain.TableBlockingActions

// Service loads and caches the catalog. It is safe for concurrent use.
type Service struct {
	log     *slog.Logger
	records recordReader
	cache   *cache.TTL[string, []domain.BlockingAction]
}

// NewService creates a catalog service caching at most size snapshots for ttl.
func NewService(logger *slog.Logger, records recordReader, size int, ttl time.Duration) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		records: records,
		cache:   cache.NewTTL[string, []domain.BlockingAction](size, ttl),
	}
}

// List returns every valid catalog entry. Quarantined rows are logged and left out.
func (s *Service) List(ctx context.Context) ([]domain.BlockingAction, error) {
	return s.cache.GetOrLoad(ctx, cacheKey, s.load)
}

// Catalog returns the catalog indexed by id.
func (s *Service) Catalog(ctx context.Context) (domain.Catalog, error) {
	actions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalog(actions), nil
}

// Invalidate drops the cached catalog; the next read goes to the store.
func (s *Service) Invalidate() {
	s.cache.Invalidate(cacheKey)
	s.log.Info("catalog cache invalidated")
}

func (s *Service) load(ctx context.Context) ([]domain.BlockingAction, error) {
	records, err := s.records.ReadAll(ctx, domain.TableBlockingActions)
	if err != nil {
		return nil, fmt.Errorf("read blocking actions: %w", err)
	}

	actions, quarantined := domain.DecodeBlockingActions(records)
	for _, q := range quarantined {
		s.log.WarnContext(ctx, "blocking action quarantined",
			slog.String("reason", q.Reason),
			slog.String("value", q.Value),
		)
	}

	s.log.DebugContext(ctx, "catalog loaded", slog.Int("entries", len(actions)))
	return actions, nil
}
