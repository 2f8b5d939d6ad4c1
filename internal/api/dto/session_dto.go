package dto

import "github.com/spec-kit/deskboard/internal/domain"

// SessionRequest payload.
type SessionRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse payload.
type SessionResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
