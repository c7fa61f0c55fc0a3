package queries

import (
	"context"
	"time"

	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBannerNotFound   = errs.New("banner not found")
	ErrCategoryNotFound = errs.New("category not found")
)

type BannerView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	IsShow    bool      `json:"is_show"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BannerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BannerView, error)
	List(ctx context.Context) ([]*BannerView, error)
	// ListVisible serves the public storefront and only returns banners with
	// is_show set.
	ListVisible(ctx context.Context) ([]*BannerView, error)
}

type CategoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	List(ctx context.Context) ([]*CategoryView, error)
}

type BannerViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BannerView, error)
	FindAll(ctx context.Context) ([]*BannerView, error)
	FindVisible(ctx context.Context) ([]*BannerView, error)
}

type CategoryViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindAll(ctx context.Context) ([]*CategoryView, error)
}

type bannerQueriesImpl struct {
	repo BannerViewRepo
}

func NewBannerQueries(repo BannerViewRepo) BannerQueries {
	return &bannerQueriesImpl{repo: repo}
}

func (q *bannerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BannerView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBannerNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bannerQueriesImpl) List(ctx context.Context) ([]*BannerView, error) {
	return q.repo.FindAll(ctx)
}

func (q *bannerQueriesImpl) ListVisible(ctx context.Context) ([]*BannerView, error) {
	return q.repo.FindVisible(ctx)
}

type categoryQueriesImpl struct {
	repo CategoryViewRepo
}

func NewCategoryQueries(repo CategoryViewRepo) CategoryQueries {
	return &categoryQueriesImpl{repo: repo}
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]*CategoryView, error) {
	return q.repo.FindAll(ctx)
}
