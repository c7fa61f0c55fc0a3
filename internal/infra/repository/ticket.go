package repository

import (
	"context"

	"acara-api/internal/domain/ticket"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TicketRepository struct {
	queries *sqlc.Queries
}

func NewTicketRepository(queries *sqlc.Queries) *TicketRepository {
	return &TicketRepository{queries: queries}
}

func (r *TicketRepository) Create(ctx context.Context, db sqlc.DBTX, t *ticket.Ticket) (uuid.UUID, error) {
	id, err := r.queries.CreateTicket(ctx, db, sqlc.CreateTicketParams{
		ID:          t.ID(),
		EventID:     t.EventID(),
		Name:        t.Name(),
		Description: t.Description(),
		Price:       pgconv.NumericFromDecimal(t.Price()),
		Quantity:    t.Quantity(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket", err)
	}
	return id, nil
}

func (r *TicketRepository) Update(ctx context.Context, db sqlc.DBTX, t *ticket.Ticket) (int64, error) {
	affected, err := r.queries.UpdateTicket(ctx, db, sqlc.UpdateTicketParams{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Price:       pgconv.NumericFromDecimal(t.Price()),
		Quantity:    t.Quantity(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update ticket", err)
	}
	return affected, nil
}

func (r *TicketRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	affected, err := r.queries.DeleteTicket(ctx, db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete ticket", err)
	}
	return affected, nil
}

// DecrementQuantity is the only write path that reduces inventory. The
// condition lives in the statement itself so two concurrent completions can
// never both take the last units.
func (r *TicketRepository) DecrementQuantity(ctx context.Context, db sqlc.DBTX, id uuid.UUID, quantity int32) (int64, error) {
	affected, err := r.queries.DecrementTicketQuantity(ctx, db, sqlc.DecrementTicketQuantityParams{
		ID:       id,
		Quantity: quantity,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement ticket quantity", err)
	}
	return affected, nil
}
