package dto

import (
	"time"

	"github.com/legalsuite/case-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateUserRequest payload for operator registration.
type CreateUserRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=30"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     domain.UserRole `json:"role" validate:"required,oneof=admin operator"`
}

// AuthResponse carries an issued bearer token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse projects an operator account. The password hash never leaves
// the service.
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
