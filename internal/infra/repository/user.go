package repository

import (
	"context"

	"acara-api/internal/domain/user"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserRepository struct {
	queries *sqlc.Queries
}

func NewUserRepository(queries *sqlc.Queries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, db, sqlc.CreateUserParams{
		ID:             u.ID(),
		FullName:       u.FullName(),
		Username:       u.Username().Value(),
		Email:          u.Email().Value(),
		PasswordHash:   u.PasswordHash(),
		Role:           u.Role().String(),
		IsActive:       u.IsActive(),
		ActivationCode: u.ActivationCode(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Activate(ctx context.Context, db sqlc.DBTX, activationCode string) (int64, error) {
	affected, err := r.queries.ActivateUser(ctx, db, activationCode)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to activate user", err)
	}
	return affected, nil
}
