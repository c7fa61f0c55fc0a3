package readstore

import (
	"context"

	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"
	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CategoryReadStore struct {
	queries *sqlc.Queries
	db      sqlc.DBTX
}

func NewCategoryReadStore(queries *sqlc.Queries, db sqlc.DBTX) *CategoryReadStore {
	return &CategoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	row, err := r.queries.GetCategoryByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return rowToCategoryView(row), nil
}

func (r *CategoryReadStore) FindAll(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.queries.ListCategories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}

	result := make([]*queries.CategoryView, len(rows))
	for i, row := range rows {
		result[i] = rowToCategoryView(row)
	}
	return result, nil
}

func rowToCategoryView(row sqlc.Category) *queries.CategoryView {
	return &queries.CategoryView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Icon:        row.Icon,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
