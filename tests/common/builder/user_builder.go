//go:build unit || e2e

package builder

import (
	"acara-api/internal/domain/user"
	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	FullName       string
	Username       string
	Email          string
	PasswordHash   string
	Role           string
	IsActive       bool
	ActivationCode string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		FullName:       "Test User",
		Username:       "tester",
		Email:          "test@example.com",
		PasswordHash:   "hashed_password",
		Role:           "member",
		IsActive:       true,
		ActivationCode: "activation-code",
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.FullName, username, email, u.PasswordHash, u.ActivationCode), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		FullName: u.FullName,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
