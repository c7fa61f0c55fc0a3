package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id             uuid.UUID
	fullName       string
	username       Username
	email          Email
	passwordHash   string
	role           Role
	isActive       bool
	activationCode string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser creates an unactivated member. Activation happens through the
// activation code flow; admins are seeded, never self-registered.
func NewUser(fullName string, username Username, email Email, passwordHash, activationCode string) *User {
	return &User{
		id:             uuid.New(),
		fullName:       fullName,
		username:       username,
		email:          email,
		passwordHash:   passwordHash,
		role:           RoleMember,
		isActive:       false,
		activationCode: activationCode,
	}
}

func ReconstructUser(
	id uuid.UUID,
	fullName string,
	username Username,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	activationCode string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:             id,
		fullName:       fullName,
		username:       username,
		email:          email,
		passwordHash:   passwordHash,
		role:           role,
		isActive:       isActive,
		activationCode: activationCode,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (u *User) Activate() {
	u.isActive = true
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) FullName() string       { return u.fullName }
func (u *User) Username() Username     { return u.username }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) ActivationCode() string { return u.activationCode }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
