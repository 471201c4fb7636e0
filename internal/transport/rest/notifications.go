package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-sql/civil"

	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/internal/service/notify"
	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

type overduePreviewer interface {
	Preview(ctx context.Context, today civil.Date) (notify.PreviewResult, error)
}

// NotificationHandler serves the admin reminder preview.
type NotificationHandler struct {
	notify overduePreviewer
	loc    *time.Location
	now    func() time.Time
	log    *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler. loc decides which
// calendar day the preview is computed for.
func NewNotificationHandler(previewer overduePreviewer, loc *time.Location, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notify: previewer,
		loc:    loc,
		now:    time.Now,
		log:    logger.With("handler", "notifications"),
	}
}

type previewResponse struct {
	Date        string            `json:"date"`
	Overdue     int               `json:"overdue"`
	Groups      int               `json:"groups"`
	Skipped     int               `json:"skipped"`
	Quarantined int               `json:"quarantined"`
	NoDeadline  int               `json:"noDeadline"`
	Results     []resultResponse  `json:"results"`
	Messages    []messageResponse `json:"messages"`
}

type resultResponse struct {
	Responsible   string   `json:"responsible"`
	CoResponsible string   `json:"coResponsible,omitempty"`
	Recipients    []string `json:"recipients"`
	Items         int      `json:"items"`
	Outcome       string   `json:"outcome"`
	Reason        string   `json:"reason,omitempty"`
}

type messageResponse struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	HTMLBody   string   `json:"htmlBody"`
	Items      int      `json:"items"`
}

// PreviewOverdue handles GET /api/notifications/overdue/preview.
// Optional query: date=YYYY-MM-DD (defaults to today). Admin only.
func (h *NotificationHandler) PreviewOverdue(w http.ResponseWriter, r *http.Request) {
	if _, err := ctxutil.RequireRole(r.Context(), domain.Role.IsAdmin); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	today := domain.Today(h.now(), h.loc)
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, ok := domain.ParseDeadline(raw)
		if !ok {
			handleError(h.log, w, r, domain.NewValidationError("date", "must be DD/MM/YYYY or YYYY-MM-DD"))
			return
		}
		today = d
	}

	res, err := h.notify.Preview(r.Context(), today)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreviewResponse(today, res))
}

func toPreviewResponse(today civil.Date, res notify.PreviewResult) previewResponse {
	out := previewResponse{
		Date:        domain.FormatISODate(today),
		Overdue:     res.Report.Overdue,
		Groups:      res.Report.Groups,
		Skipped:     res.Report.Skipped,
		Quarantined: res.Report.Quarantined,
		NoDeadline:  res.Report.NoDeadline,
		Results:     make([]resultResponse, len(res.Report.Results)),
		Messages:    make([]messageResponse, len(res.Messages)),
	}
	for i, dr := range res.Report.Results {
		out.Results[i] = resultResponse{
			Responsible:   dr.Key.Responsible,
			CoResponsible: dr.Key.CoResponsible,
			Recipients:    dr.Recipients,
			Items:         dr.Items,
			Outcome:       string(dr.Outcome),
			Reason:        dr.Reason,
		}
	}
	for i, m := range res.Messages {
		out.Messages[i] = messageResponse{
			Recipients: m.Recipients,
			Subject:    m.Subject,
			HTMLBody:   m.HTMLBody,
			Items:      m.Items,
		}
	}
	return out
}
