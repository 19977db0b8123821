package dto

import (
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// UserResponse defines the data returned for a dashboard account.
type UserResponse struct {
	UserID   string              `json:"userID"`
	Email    string              `json:"email"`
	FullName string              `json:"fullName"`
	Role     domain.UserRole     `json:"role"`
	FermeID  string              `json:"fermeID,omitempty"`
	Provider domain.AuthProvider `json:"provider"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		FermeID:  u.SiteID,
		Provider: u.AuthProvider,
	}
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FullName *string          `json:"fullName"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=superadmin admin"`
	FermeID  *string          `json:"fermeID"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	list := make([]UserResponse, len(users))
	for i, u := range users {
		list[i] = ToUserResponse(&u)
	}
	return ListUsersResponse{Users: list}
}
