package readstore

import (
	"context"

	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"
	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventReadStore struct {
	queries *sqlc.Queries
	db      sqlc.DBTX
}

func NewEventReadStore(queries *sqlc.Queries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	return rowToEventView(row), nil
}

func (r *EventReadStore) FindBySlug(ctx context.Context, slug string) (*queries.EventView, error) {
	row, err := r.queries.GetEventBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by slug", err)
	}
	return rowToEventView(row), nil
}

func (r *EventReadStore) FindAll(ctx context.Context, filter queries.EventFilter, limit, offset int32) ([]*queries.EventView, error) {
	rows, err := r.queries.ListEvents(ctx, r.db, sqlc.ListEventsParams{
		OnlyPublished: filter.OnlyPublished,
		Search:        filter.Search,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}

	result := make([]*queries.EventView, len(rows))
	for i, row := range rows {
		result[i] = rowToEventView(row)
	}
	return result, nil
}

func (r *EventReadStore) CountAll(ctx context.Context, filter queries.EventFilter) (int64, error) {
	count, err := r.queries.CountEvents(ctx, r.db, sqlc.CountEventsParams{
		OnlyPublished: filter.OnlyPublished,
		Search:        filter.Search,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count events", err)
	}
	return count, nil
}

func (r *EventReadStore) FindTicketsByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.TicketView, error) {
	rows, err := r.queries.ListTicketsByEvent(ctx, r.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets by event", err)
	}

	result := make([]*queries.TicketView, len(rows))
	for i, row := range rows {
		result[i] = rowToTicketView(row)
	}
	return result, nil
}

func (r *EventReadStore) FindTicketByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	row, err := r.queries.GetTicketByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket by ID", err)
	}
	return rowToTicketView(row), nil
}

func rowToEventView(row sqlc.Event) *queries.EventView {
	return &queries.EventView{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Banner:      row.Banner,
		CategoryID:  row.CategoryID,
		IsFeatured:  row.IsFeatured,
		IsOnline:    row.IsOnline,
		IsPublished: row.IsPublished,
		StartAt:     pgconv.TimeFromPgtype(row.StartAt),
		EndAt:       pgconv.TimeFromPgtype(row.EndAt),
		Region:      row.Region,
		Address:     row.Address,
		Latitude:    pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:   pgconv.Float64PtrFromPgtype(row.Longitude),
		CreatedBy:   row.CreatedBy,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowToTicketView(row sqlc.Ticket) *queries.TicketView {
	return &queries.TicketView{
		ID:          row.ID,
		EventID:     row.EventID,
		Name:        row.Name,
		Description: row.Description,
		Price:       pgconv.DecimalFromNumeric(row.Price),
		Quantity:    row.Quantity,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
