package domain

import (
	userDomain "github.com/theclub/api/internal/user/domain"
)

// LoginInput contains the primary credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the result of a successful login or refresh: the issued
// token plus a denormalized view of the account for the client.
type LoginOutput struct {
	Token  string
	Role   userDomain.Role
	Name   string
	Email  string
	UserID int64
}
