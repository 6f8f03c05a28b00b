// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// UserRequest represents the request body for creating or updating a user.
// It uses Gin's binding tags for validation (required fields, length bounds,
// email format). It never carries id or timestamps; those are store-assigned.
type UserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
}
