package repository

import (
	"context"

	"acara-api/internal/domain/category"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CategoryRepository struct {
	queries *sqlc.Queries
}

func NewCategoryRepository(queries *sqlc.Queries) *CategoryRepository {
	return &CategoryRepository{queries: queries}
}

func (r *CategoryRepository) Create(ctx context.Context, db sqlc.DBTX, c *category.Category) (uuid.UUID, error) {
	id, err := r.queries.CreateCategory(ctx, db, sqlc.CreateCategoryParams{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Icon:        c.Icon(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, db sqlc.DBTX, c *category.Category) (int64, error) {
	affected, err := r.queries.UpdateCategory(ctx, db, sqlc.UpdateCategoryParams{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Icon:        c.Icon(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update category", err)
	}
	return affected, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	affected, err := r.queries.DeleteCategory(ctx, db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete category", err)
	}
	return affected, nil
}
