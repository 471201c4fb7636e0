package actionplan

import (
	"context"
	"log/slog"

	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

// ListCatalog returns every blocking action.
func (s *Service) ListCatalog(ctx context.Context) ([]domain.BlockingAction, error) {
	if _, err := ctxutil.RequireRole(ctx, nil); err != nil {
		return nil, err
	}
	return s.catalog.List(ctx)
}

// InvalidateCatalog drops the cached catalog so edits made directly in the
// store become visible. Admin only.
func (s *Service) InvalidateCatalog(ctx context.Context) error {
	caller, err := ctxutil.RequireRole(ctx, domain.Role.IsAdmin)
	if err != nil {
		return err
	}
	s.catalog.Invalidate()
	s.log.InfoContext(ctx, "catalog refresh requested", slog.String("by", caller.Email))
	return nil
}
