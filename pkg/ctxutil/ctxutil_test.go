package ctxutil

import (
	"context"
	"errors"
	"testing"

	"github.com/safetyplan/actionplan/internal/domain"
)

func TestIdentityFromCtx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctx    context.Context
		wantOK bool
	}{
		{"valid", WithIdentity(context.Background(), domain.Identity{Email: "a@x.com", Role: domain.RoleReviewer}), true},
		{"empty context", context.Background(), false},
		{"no email", WithIdentity(context.Background(), domain.Identity{Email: " ", Role: domain.RoleAdmin}), false},
		{"unknown role", WithIdentity(context.Background(), domain.Identity{Email: "a@x.com", Role: "superuser"}), false},
		{"wrong type", context.WithValue(context.Background(), identityKey{}, "a@x.com"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := IdentityFromCtx(tt.ctx); ok != tt.wantOK {
				t.Fatalf("IdentityFromCtx ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	owner := WithIdentity(context.Background(), domain.Identity{Email: "o@x.com", Role: domain.RoleOwner})
	admin := WithIdentity(context.Background(), domain.Identity{Email: "adm@x.com", Role: domain.RoleAdmin})

	tests := []struct {
		name    string
		ctx     context.Context
		allowed func(domain.Role) bool
		wantErr error
	}{
		{"anonymous", context.Background(), nil, domain.ErrUnauthorized},
		{"any role", owner, nil, nil},
		{"owner cannot review", owner, domain.Role.CanReview, domain.ErrForbidden},
		{"admin may review", admin, domain.Role.CanReview, nil},
		{"admin only", admin, domain.Role.IsAdmin, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, err := RequireRole(tt.ctx, tt.allowed)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RequireRole err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && id.Email == "" {
				t.Fatal("expected caller on success")
			}
		})
	}
}

func TestRequestIDFromCtx(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(WithRequestID(context.Background(), "req-123")); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := RequestIDFromCtx(context.WithValue(context.Background(), requestIDKey{}, 12345)); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}
