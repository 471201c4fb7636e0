// Package ctxutil carries request-scoped values between transport and services.
package ctxutil

import (
	"context"
	"strings"

	"github.com/safetyplan/actionplan/internal/domain"
)

type (
	identityKey  struct{}
	requestIDKey struct{}
)

func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx reports false unless the context holds an identity with
// an e-mail and a known role.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	if !ok || strings.TrimSpace(id.Email) == "" || !id.Role.IsValid() {
		return domain.Identity{}, false
	}
	return id, true
}

// RequireRole returns the caller when allowed accepts their role. A nil
// allowed admits any authenticated caller. Missing identities yield
// domain.ErrUnauthorized and rejected roles domain.ErrForbidden.
func RequireRole(ctx context.Context, allowed func(domain.Role) bool) (domain.Identity, error) {
	id, ok := IdentityFromCtx(ctx)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	if allowed != nil && !allowed(id.Role) {
		return domain.Identity{}, domain.ErrForbidden
	}
	return id, nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" when no request id is set.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
