package repository

import (
	"context"

	"acara-api/internal/domain/banner"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BannerRepository struct {
	queries *sqlc.Queries
}

func NewBannerRepository(queries *sqlc.Queries) *BannerRepository {
	return &BannerRepository{queries: queries}
}

func (r *BannerRepository) Create(ctx context.Context, db sqlc.DBTX, b *banner.Banner) (uuid.UUID, error) {
	id, err := r.queries.CreateBanner(ctx, db, sqlc.CreateBannerParams{
		ID:     b.ID(),
		Title:  b.Title(),
		Image:  b.Image(),
		IsShow: b.IsShow(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create banner", err)
	}
	return id, nil
}

func (r *BannerRepository) Update(ctx context.Context, db sqlc.DBTX, b *banner.Banner) (int64, error) {
	affected, err := r.queries.UpdateBanner(ctx, db, sqlc.UpdateBannerParams{
		ID:     b.ID(),
		Title:  b.Title(),
		Image:  b.Image(),
		IsShow: b.IsShow(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update banner", err)
	}
	return affected, nil
}

func (r *BannerRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	affected, err := r.queries.DeleteBanner(ctx, db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete banner", err)
	}
	return affected, nil
}
