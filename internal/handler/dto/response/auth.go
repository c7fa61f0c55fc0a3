package response

import (
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
	// Surfaced until outbound mail delivery exists.
	ActivationCode string `json:"activation_code"`
}

func FromLoginResult(res *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken:  res.TokenPair.AccessToken,
		RefreshToken: res.TokenPair.RefreshToken,
		UserID:       res.UserID,
	}
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       view.ID,
		FullName: view.FullName,
		Username: view.Username,
		Email:    view.Email,
		Role:     view.Role,
		IsActive: view.IsActive,
	}
}

func FromTokenPair(pair *commands.TokenPair) *TokenPairResponse {
	return &TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

func FromRegisterResult(res *commands.RegisterResult) *RegisterResponse {
	return &RegisterResponse{
		UserID:         res.UserID,
		ActivationCode: res.ActivationCode,
	}
}
