package request

import (
	"strings"

	"acara-api/internal/domain/user"
)

type RegisterRequest struct {
	FullName        string `json:"full_name" binding:"required,max=100"`
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

type RegisterData struct {
	FullName string
	Username user.Username
	Email    user.Email
	Password user.Password
}

func (r RegisterRequest) ToDomain() (*RegisterData, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return nil, err
	}

	return &RegisterData{
		FullName: strings.TrimSpace(r.FullName),
		Username: username,
		Email:    email,
		Password: pass,
	}, nil
}

// LoginRequest accepts either the username or the email as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (r LoginRequest) TrimmedIdentifier() string {
	return strings.TrimSpace(r.Identifier)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ActivateRequest struct {
	Code string `json:"code" binding:"required"`
}
