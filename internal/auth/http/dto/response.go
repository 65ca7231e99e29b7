package dto

import (
	authDomain "github.com/theclub/api/internal/auth/domain"
)

// LoginResponse contains the issued token and a denormalized view of the
// account for the client.
type LoginResponse struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID int64  `json:"user_id"`
}

// NewLoginResponse builds a LoginResponse from a login or refresh result.
func NewLoginResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:  output.Token,
		Type:   "Bearer",
		Role:   string(output.Role),
		Name:   output.Name,
		Email:  output.Email,
		UserID: output.UserID,
	}
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
}
