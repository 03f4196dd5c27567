package handler

import "time"

// errorResponse documents the standard error envelope in swagger output.
// The actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty,dive,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles,omitempty"  validate:"omitempty,dive,oneof=admin user"`
	Active   *bool    `json:"active,omitempty"`
}

// updateUserRequest is a partial update: absent fields keep stored values.
type updateUserRequest struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"    validate:"omitempty,email"`
	Password string   `json:"password,omitempty" validate:"omitempty,min=8"`
	Roles    []string `json:"roles,omitempty"    validate:"omitempty,dive,oneof=admin user"`
	Active   *bool    `json:"active,omitempty"`
}

// --- Response types ---

// authResponse is what register and login return: the token plus a summary
// of the authenticated identity. Never the password hash.
type authResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// userResponse is the outward user representation. It intentionally exposes
// only id, name, email, roles, active and created_at.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type listUsersResponse struct {
	Data []userResponse `json:"data"`
}
