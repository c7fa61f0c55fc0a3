package commands

import (
	"context"

	reqdto "acara-api/internal/handler/dto/request"
	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"
	"acara-api/internal/usecase/queries"
	"acara-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound    = errs.New("event not found")
	ErrCategoryNotFound = errs.New("category not found")
	ErrDuplicateSlug    = errs.New("event slug already taken")
	ErrInvalidEvent     = errs.New("invalid event")
	ErrEventHasOrders   = errs.New("event still has ordered tickets")
)

// CatalogInvalidator drops cached catalog reads after a write. Implemented by
// the redis cache; a no-op implementation is fine for tests.
type CatalogInvalidator interface {
	InvalidateEventSlug(ctx context.Context, slug string)
	InvalidateVisibleBanners(ctx context.Context)
}

type EventCommands interface {
	Create(ctx context.Context, req reqdto.CreateEventRequest, createdBy uuid.UUID) (*queries.EventView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEventRequest) (*queries.EventView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventCommandsImpl struct {
	uow        shared.UnitOfWork
	eventViews queries.EventViewRepo
	cache      CatalogInvalidator
}

func NewEventCommands(uow shared.UnitOfWork, eventViews queries.EventViewRepo, cache CatalogInvalidator) EventCommands {
	return &eventCommandsImpl{
		uow:        uow,
		eventViews: eventViews,
		cache:      cache,
	}
}

func (e *eventCommandsImpl) Create(ctx context.Context, req reqdto.CreateEventRequest, createdBy uuid.UUID) (*queries.EventView, error) {
	entity, err := req.ToDomain(createdBy)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEvent)
	}

	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Events().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrDuplicateSlug)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return nil, err
	}

	return e.eventViews.FindByID(ctx, entity.ID())
}

func (e *eventCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEventRequest) (*queries.EventView, error) {
	var staleSlug string

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().EventByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return err
		}
		staleSlug = snap.Slug

		entity, err := req.ToDomain(id)
		if err != nil {
			return errs.Mark(err, ErrInvalidEvent)
		}

		affected, err := tx.Events().Update(ctx, tx.DB(), entity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrDuplicateSlug)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return nil, err
	}

	e.cache.InvalidateEventSlug(ctx, staleSlug)
	return e.eventViews.FindByID(ctx, id)
}

func (e *eventCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var staleSlug string

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().EventByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return err
		}
		staleSlug = snap.Slug

		affected, err := tx.Events().Delete(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
	if err != nil {
		// Tickets referenced by orders block the cascade.
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrEventHasOrders)
		}
		return err
	}

	e.cache.InvalidateEventSlug(ctx, staleSlug)
	return nil
}
