package domain

import (
	"errors"
	"strings"
)

// Role is a named permission grant. The set is closed: unknown role names
// are rejected at parse time so access checks stay exhaustive.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts a role name (case-insensitive) into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

// ParseRoles converts a list of role names, rejecting the whole list on the
// first unknown name. Duplicates are collapsed, preserving first occurrence.
func ParseRoles(names []string) ([]Role, error) {
	seen := make(map[Role]struct{}, len(names))
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		role, err := ParseRole(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	return roles, nil
}

// MatchMode selects how a set of required roles is evaluated against the
// roles granted by a token.
type MatchMode int

const (
	// MatchAny allows the request when the caller holds at least one of the
	// required roles.
	MatchAny MatchMode = iota
	// MatchAll allows the request only when the caller holds every required role.
	MatchAll
)

// Authorized is the access-control decision: it checks the granted role set
// against the required set under the given mode. Roles are independent
// grants checked by membership; there is no hierarchy. An empty required
// set denies, so a route with no declared roles never opens up by accident.
func Authorized(granted, required []Role, mode MatchMode) bool {
	if len(required) == 0 {
		return false
	}

	held := make(map[Role]struct{}, len(granted))
	for _, r := range granted {
		held[r] = struct{}{}
	}

	switch mode {
	case MatchAll:
		for _, r := range required {
			if _, ok := held[r]; !ok {
				return false
			}
		}
		return true
	default: // MatchAny
		for _, r := range required {
			if _, ok := held[r]; ok {
				return true
			}
		}
		return false
	}
}
