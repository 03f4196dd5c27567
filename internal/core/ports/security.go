package ports

import (
	"context"
	"time"

	"github.com/quynhnga171088/user-management/internal/core/domain"
)

// PasswordHasher produces and verifies one-way salted password hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of the plaintext. Two calls with the same
	// input yield different strings; both verify.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. It fails
	// closed: malformed hash input yields false, never a panic or error.
	Verify(plaintext, hash string) bool
}

// TokenClaims is the validated content of a session token.
type TokenClaims struct {
	Subject string
	Roles   []domain.Role
}

// TokenIssuer mints and validates stateless, signed, time-bounded session
// tokens. Tokens are self-contained: validity is determined by signature
// and expiry alone, with no server-side lookup.
type TokenIssuer interface {
	Issue(email string, roles []domain.Role, now time.Time) (string, error)
	// Validate verifies the signature before inspecting claims and returns
	// domain.ErrTokenSignatureInvalid, domain.ErrTokenExpired or
	// domain.ErrTokenMalformed on rejection.
	Validate(token string, now time.Time) (*TokenClaims, error)
}

// LoginLimiter throttles repeated failed logins per account.
type LoginLimiter interface {
	// TooMany reports whether the account has exceeded the failure budget.
	TooMany(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the account.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
