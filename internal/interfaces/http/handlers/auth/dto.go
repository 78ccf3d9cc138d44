package auth

import (
	"time"

	"devdesk/internal/application/auth/usecases"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Session SessionResponse `json:"session"`
	User    UserResponse    `json:"user"`
}

func newAuthResponse(tokens *usecases.TokenPair, id, email string, createdAt time.Time) *AuthResponse {
	return &AuthResponse{
		Session: SessionResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			ExpiresIn:    tokens.ExpiresIn,
		},
		User: UserResponse{
			ID:        id,
			Email:     email,
			CreatedAt: createdAt,
		},
	}
}
