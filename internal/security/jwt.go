package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quynhnga171088/user-management/internal/core/domain"
	"github.com/quynhnga171088/user-management/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// sessionClaims is the wire shape of a session token: subject holds the
// account email, roles the granted role names.
type sessionClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256-signed JWTs. The secret
// is loaded once at startup and never mutated; compromise of the secret
// invalidates every outstanding token.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for the subject with iat = now and exp = now + TTL.
func (i *JWTIssuer) Issue(email string, roles []domain.Role, now time.Time) (string, error) {
	names := make([]string, len(roles))
	for idx, r := range roles {
		names[idx] = string(r)
	}

	claims := sessionClaims{
		Roles: names,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate checks the signature before any claim, then the expiry window.
// A token is already invalid at exactly exp. The signing method is pinned
// to HS256 so alg-substitution tokens are rejected as signature-invalid.
func (i *JWTIssuer) Validate(token string, now time.Time) (*ports.TokenClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenSignatureInvalid
	}

	roles, err := domain.ParseRoles(claims.Roles)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	return &ports.TokenClaims{Subject: claims.Subject, Roles: roles}, nil
}
