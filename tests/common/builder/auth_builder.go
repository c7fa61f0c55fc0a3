//go:build unit || e2e

package builder

import (
	reqdto "acara-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Identifier string
	Password   string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Identifier: "tester",
		Password:   "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Identifier: a.Identifier,
		Password:   a.Password,
	}
}

type RegisterBuilder struct {
	FullName string
	Username string
	Email    string
	Password string
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{
		FullName: "Test User",
		Username: "tester",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FullName:        r.FullName,
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		PasswordConfirm: r.Password,
	}
}
