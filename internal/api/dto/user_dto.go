package dto

import (
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Name     string            `json:"name"`
	Role     domain.UserRole   `json:"role"`
	Status   domain.UserStatus `json:"status"`
	Unit     *string           `json:"unit,omitempty"`
}

// AuthResponse is returned by the login endpoint.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
