package readstore

import (
	"context"

	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"
	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BannerReadStore struct {
	queries *sqlc.Queries
	db      sqlc.DBTX
}

func NewBannerReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BannerReadStore {
	return &BannerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BannerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BannerView, error) {
	row, err := r.queries.GetBannerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("banner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find banner by ID", err)
	}
	return rowToBannerView(row), nil
}

func (r *BannerReadStore) FindAll(ctx context.Context) ([]*queries.BannerView, error) {
	rows, err := r.queries.ListBanners(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list banners", err)
	}
	return bannersToViews(rows), nil
}

func (r *BannerReadStore) FindVisible(ctx context.Context) ([]*queries.BannerView, error) {
	rows, err := r.queries.ListVisibleBanners(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visible banners", err)
	}
	return bannersToViews(rows), nil
}

func bannersToViews(rows []sqlc.Banner) []*queries.BannerView {
	result := make([]*queries.BannerView, len(rows))
	for i, row := range rows {
		result[i] = rowToBannerView(row)
	}
	return result
}

func rowToBannerView(row sqlc.Banner) *queries.BannerView {
	return &queries.BannerView{
		ID:        row.ID,
		Title:     row.Title,
		Image:     row.Image,
		IsShow:    row.IsShow,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
