package middleware

import (
	"net/http"
	"strings"

	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Identity, error)
}

// Auth resolves the bearer token into a caller identity. Requests without a
// token pass through anonymously; services decide whether that is allowed.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeUnauthorized(w)
				return
			}
			if rec, ok := w.(callerRecorder); ok {
				rec.setCaller(id.Email)
			}
			ctx := ctxutil.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="actionplan", error="invalid_token"`)
	writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
}
