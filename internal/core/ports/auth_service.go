package ports

import (
	"context"
)

// RegisterInput carries the data for a new registration. Roles is optional;
// when empty the user role is granted.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Roles    []string
}

// AuthResult is returned to the caller on successful register or login.
// The password never appears here; Role is the primary role grant.
type AuthResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthService implements the register and login use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
