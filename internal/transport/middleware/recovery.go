package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged 500. http.ErrAbortHandler is
// re-raised so net/http can abort the connection as intended. When the
// handler already started a response only the log is written.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &headerTracker{ResponseWriter: w}
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.String("error", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)
				if !tw.started {
					writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
				}
			}()
			next.ServeHTTP(tw, r)
		})
	}
}

type headerTracker struct {
	http.ResponseWriter
	started bool
}

func (w *headerTracker) WriteHeader(code int) {
	w.started = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *headerTracker) Write(b []byte) (int, error) {
	w.started = true
	return w.ResponseWriter.Write(b)
}

// setCaller forwards to an outer recorder so Logger still sees the caller.
func (w *headerTracker) setCaller(email string) {
	if rec, ok := w.ResponseWriter.(callerRecorder); ok {
		rec.setCaller(email)
	}
}

func (w *headerTracker) Unwrap() http.ResponseWriter { return w.ResponseWriter }
