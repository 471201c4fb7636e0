package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

// Health check paths are logged at debug so orchestrator polling stays quiet.
var healthPaths = map[string]bool{"/live": true, "/ready": true}

// Logger emits one "http.request" record per request. 5xx logs at error and
// 4xx at warn. The caller is taken from the identity Auth resolves further
// down the chain.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			caller := rw.caller
			if id, ok := ctxutil.IdentityFromCtx(r.Context()); ok {
				caller = id.Email
			}
			if caller != "" {
				attrs = append(attrs, slog.String("caller", caller))
			}

			logger.LogAttrs(r.Context(), requestLevel(r.URL.Path, rw.status), "http.request", attrs...)
		})
	}
}

func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case healthPaths[path]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// callerRecorder is implemented by writers that want the authenticated
// caller reported back to them.
type callerRecorder interface {
	setCaller(email string)
}

type responseRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
	caller      string
}

func (w *responseRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *responseRecorder) setCaller(email string) { w.caller = email }

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }
