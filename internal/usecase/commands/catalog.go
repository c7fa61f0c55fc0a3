package commands

import (
	"context"

	"acara-api/internal/domain/banner"
	"acara-api/internal/domain/category"
	reqdto "acara-api/internal/handler/dto/request"
	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"
	"acara-api/internal/usecase/queries"
	"acara-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBannerNotFound   = errs.New("banner not found")
	ErrInvalidBanner    = errs.New("invalid banner")
	ErrInvalidCategory  = errs.New("invalid category")
	ErrCategoryInUse    = errs.New("category still has events")
	ErrDuplicateCatName = errs.New("category name already taken")
)

type BannerCommands interface {
	Create(ctx context.Context, req reqdto.CreateBannerRequest) (*queries.BannerView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBannerRequest) (*queries.BannerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerCommandsImpl struct {
	uow         shared.UnitOfWork
	bannerViews queries.BannerViewRepo
	cache       CatalogInvalidator
}

func NewBannerCommands(uow shared.UnitOfWork, bannerViews queries.BannerViewRepo, cache CatalogInvalidator) BannerCommands {
	return &bannerCommandsImpl{
		uow:         uow,
		bannerViews: bannerViews,
		cache:       cache,
	}
}

func (b *bannerCommandsImpl) Create(ctx context.Context, req reqdto.CreateBannerRequest) (*queries.BannerView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBanner)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Banners().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	b.cache.InvalidateVisibleBanners(ctx)
	return b.bannerViews.FindByID(ctx, entity.ID())
}

func (b *bannerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBannerRequest) (*queries.BannerView, error) {
	entity, err := banner.NewBannerForUpdate(id, req.Title, req.Image, req.IsShow)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBanner)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, updateErr := tx.Banners().Update(ctx, tx.DB(), entity)
		if updateErr != nil {
			return updateErr
		}
		if affected == 0 {
			return ErrBannerNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.cache.InvalidateVisibleBanners(ctx)
	return b.bannerViews.FindByID(ctx, id)
}

func (b *bannerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, deleteErr := tx.Banners().Delete(ctx, tx.DB(), id)
		if deleteErr != nil {
			return deleteErr
		}
		if affected == 0 {
			return ErrBannerNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	b.cache.InvalidateVisibleBanners(ctx)
	return nil
}

type CategoryCommands interface {
	Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryCommandsImpl struct {
	uow           shared.UnitOfWork
	categoryViews queries.CategoryViewRepo
}

func NewCategoryCommands(uow shared.UnitOfWork, categoryViews queries.CategoryViewRepo) CategoryCommands {
	return &categoryCommandsImpl{
		uow:           uow,
		categoryViews: categoryViews,
	}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCategory)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Categories().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCatName)
		}
		return nil, err
	}

	return c.categoryViews.FindByID(ctx, entity.ID())
}

func (c *categoryCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error) {
	entity, err := category.NewCategoryForUpdate(id, req.Name, req.Description, req.Icon)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCategory)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, updateErr := tx.Categories().Update(ctx, tx.DB(), entity)
		if updateErr != nil {
			return updateErr
		}
		if affected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCatName)
		}
		return nil, err
	}

	return c.categoryViews.FindByID(ctx, id)
}

func (c *categoryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Categories().Delete(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrCategoryInUse)
			}
			return err
		}
		if affected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
