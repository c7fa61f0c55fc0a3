package repository

import (
	"context"

	"acara-api/internal/domain/event"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventRepository struct {
	queries *sqlc.Queries
}

func NewEventRepository(queries *sqlc.Queries) *EventRepository {
	return &EventRepository{queries: queries}
}

func (r *EventRepository) Create(ctx context.Context, db sqlc.DBTX, e *event.Event) (uuid.UUID, error) {
	loc := e.Location()
	id, err := r.queries.CreateEvent(ctx, db, sqlc.CreateEventParams{
		ID:          e.ID(),
		Name:        e.Name(),
		Slug:        e.Slug(),
		Description: e.Description(),
		Banner:      e.Banner(),
		CategoryID:  e.CategoryID(),
		IsFeatured:  e.IsFeatured(),
		IsOnline:    e.IsOnline(),
		IsPublished: e.IsPublished(),
		StartAt:     pgconv.TimeToPgtype(e.StartAt()),
		EndAt:       pgconv.TimeToPgtype(e.EndAt()),
		Region:      loc.Region,
		Address:     loc.Address,
		Latitude:    pgconv.Float64PtrToPgtype(loc.Latitude),
		Longitude:   pgconv.Float64PtrToPgtype(loc.Longitude),
		CreatedBy:   e.CreatedBy(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}
	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, db sqlc.DBTX, e *event.Event) (int64, error) {
	loc := e.Location()
	affected, err := r.queries.UpdateEvent(ctx, db, sqlc.UpdateEventParams{
		ID:          e.ID(),
		Name:        e.Name(),
		Slug:        e.Slug(),
		Description: e.Description(),
		Banner:      e.Banner(),
		CategoryID:  e.CategoryID(),
		IsFeatured:  e.IsFeatured(),
		IsOnline:    e.IsOnline(),
		IsPublished: e.IsPublished(),
		StartAt:     pgconv.TimeToPgtype(e.StartAt()),
		EndAt:       pgconv.TimeToPgtype(e.EndAt()),
		Region:      loc.Region,
		Address:     loc.Address,
		Latitude:    pgconv.Float64PtrToPgtype(loc.Latitude),
		Longitude:   pgconv.Float64PtrToPgtype(loc.Longitude),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update event", err)
	}
	return affected, nil
}

func (r *EventRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	affected, err := r.queries.DeleteEvent(ctx, db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete event", err)
	}
	return affected, nil
}
