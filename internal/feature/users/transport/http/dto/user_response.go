package dto

import (
	"user_backend/internal/feature/users/domain/entity"
)

// UserResponse represents a user in API responses.
// It exposes every persisted field; the entity itself is never
// serialized directly.
type UserResponse struct {
	ID        uint          `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	CreatedAt LocalDateTime `json:"createdAt"`
	UpdatedAt LocalDateTime `json:"updatedAt"`
}

// UserResponseFrom converts a persisted entity into its response
// representation.
func UserResponseFrom(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: LocalDateTime(u.CreatedAt),
		UpdatedAt: LocalDateTime(u.UpdatedAt),
	}
}
