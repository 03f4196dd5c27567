package handler

import (
	"github.com/quynhnga171088/user-management/internal/core/domain"
	"github.com/quynhnga171088/user-management/internal/core/ports"
)

// --- Service result → HTTP response ---

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		Token: r.Token,
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}
}

func toUserResponse(u *domain.User) userResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Roles:     roles,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toListResponse(users []domain.User) listUsersResponse {
	items := make([]userResponse, len(users))
	for i := range users {
		items[i] = toUserResponse(&users[i])
	}
	return listUsersResponse{Data: items}
}
