package actionplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

// UpdateItem applies a partial update to an action item.
//
// Reviewers and admins may edit any item; owners only items they are
// responsible or co-responsible for. Moving to COMPLETED stamps today's
// completion date and any other status clears it. Reopening a completed or
// cancelled item requires the admin role.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (domain.ActionItem, error) {
	caller, err := ctxutil.RequireRole(ctx, nil)
	if err != nil {
		return domain.ActionItem{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.ActionItem{}, err
	}
	id := strings.TrimSpace(input.ID)

	var updated domain.ActionItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.getItem(txCtx, id)
		if err != nil {
			return err
		}

		if !caller.Role.CanReview() && !current.IsOwnedBy(caller.Email) {
			return domain.ErrForbidden
		}

		fields, err := s.changes(current, input, caller)
		if err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := s.store.UpdateFields(txCtx, domain.TableActionItems, id, fields); err != nil {
				return fmt.Errorf("update action item: %w", err)
			}
		}

		updated, err = s.getItem(txCtx, id)
		return err
	})
	if err != nil {
		return domain.ActionItem{}, err
	}

	s.log.InfoContext(ctx, "action item updated",
		slog.String("id", id),
		slog.String("by", caller.Email),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// changes computes the columns to write. Fields equal to the current value
// are omitted.
func (s *Service) changes(current domain.ActionItem, input UpdateItemInput, caller domain.Identity) (domain.Record, error) {
	fields := domain.Record{}

	if input.Status != nil {
		next, _ := domain.ParseActionStatus(*input.Status)
		if next != current.Status {
			if !current.Status.IsOpen() && next.IsOpen() && !caller.Role.IsAdmin() {
				return nil, fmt.Errorf("reopen %s item: %w", strings.ToLower(current.Status.Label()), domain.ErrConflict)
			}
			fields[domain.ColStatus] = next.String()
			if next == domain.ActionStatusCompleted {
				fields[domain.ColCompletionDate] = domain.FormatISODate(s.today())
			} else {
				fields[domain.ColCompletionDate] = ""
			}
		}
	}

	if input.InitialDeadline != nil {
		d, _ := domain.ParseDeadline(*input.InitialDeadline)
		if current.InitialDeadline == nil || *current.InitialDeadline != d {
			fields[domain.ColInitialDeadline] = domain.FormatISODate(d)
		}
	}

	if input.EvidenceURL != nil {
		next := strings.TrimSpace(*input.EvidenceURL)
		var prev string
		if current.EvidenceURL != nil {
			prev = *current.EvidenceURL
		}
		if next != prev {
			fields[domain.ColEvidenceURL] = next
		}
	}

	return fields, nil
}
