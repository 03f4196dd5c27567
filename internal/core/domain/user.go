package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrEmailExists = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many login attempts")

var ErrTokenExpired = errors.New("token expired")
var ErrTokenSignatureInvalid = errors.New("invalid token signature")
var ErrTokenMalformed = errors.New("malformed token")

// User is the persisted identity record. PasswordHash is always the output
// of the password hasher, never plaintext, and is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PrimaryRole returns the first granted role, defaulting to RoleUser so the
// auth response always carries a role even for legacy records.
func (u *User) PrimaryRole() Role {
	if len(u.Roles) == 0 {
		return RoleUser
	}
	return u.Roles[0]
}

// HasRole reports whether the user holds the given role grant.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeEmail canonicalizes an email for lookup and uniqueness checks.
// Emails are unique case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
