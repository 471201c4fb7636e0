// Package auth verifies the bearer tokens issued by the incident portal.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/safetyplan/actionplan/internal/domain"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies HS256 access tokens. The subject is the
// caller's e-mail address and the role travels as a custom claim.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed token for id. The portal issues
// tokens in production; this is used by operators and tests.
func (m *JWTManager) GenerateAccessToken(id domain.Identity) (string, error) {
	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   domain.NormalizeEmail(id.Email),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: id.Role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token and returns the identity it
// carries. A missing role claim means owner.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	email := domain.NormalizeEmail(claims.Subject)
	if !domain.IsPlausibleEmail(email) {
		return domain.Identity{}, fmt.Errorf("%w: subject %q is not an e-mail address", ErrInvalidToken, claims.Subject)
	}

	role := domain.Role(claims.Role)
	if claims.Role == "" {
		role = domain.RoleOwner
	}
	if !role.IsValid() {
		return domain.Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return domain.Identity{Email: email, Role: role}, nil
}
