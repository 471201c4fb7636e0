package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// storePinger is satisfied by the pgx pool and the sheet store.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	store   storePinger
	version string
	now     func() time.Time
}

func NewHealthHandler(store storePinger, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version, now: time.Now}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 while the record store is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.checkStore(r.Context())
	writeJSON(w, statusCode(comp.Status), HealthResponse{Status: comp.Status, Timestamp: h.now()})
}

// Health is Ready plus the version and per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.checkStore(r.Context())
	writeJSON(w, statusCode(comp.Status), HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"store": comp},
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
