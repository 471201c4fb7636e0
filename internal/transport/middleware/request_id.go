package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

// RequestIDHeader carries the correlation id in requests and responses.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 128

// RequestID stores a correlation id in the context and echoes it in the
// response. A client id is kept when it is short printable ASCII; otherwise
// a UUID is generated.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}
