package readstore

import (
	"context"

	"acara-api/internal/domain/order"
	"acara-api/internal/domain/user"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"
	"acara-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the lookups command handlers need before they write.
// It is bound to whatever DBTX the caller is running on, so inside a
// transaction the reads see that transaction's view.
type CommandReads struct {
	db      sqlc.DBTX
	queries *sqlc.Queries
}

func NewCommandReads(db sqlc.DBTX, queries *sqlc.Queries) *CommandReads {
	return &CommandReads{db: db, queries: queries}
}

func (r *CommandReads) TicketByID(ctx context.Context, id uuid.UUID) (*shared.TicketSnapshot, error) {
	row, err := r.queries.GetTicketByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ticket", err)
	}

	return &shared.TicketSnapshot{
		ID:       row.ID,
		EventID:  row.EventID,
		Name:     row.Name,
		Price:    pgconv.DecimalFromNumeric(row.Price),
		Quantity: row.Quantity,
	}, nil
}

func (r *CommandReads) OrderByNumber(ctx context.Context, orderNumber string) (*shared.OrderSnapshot, error) {
	row, err := r.queries.GetOrderByNumber(ctx, r.db, orderNumber)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	status, err := order.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order status in store", err)
	}

	return &shared.OrderSnapshot{
		ID:          row.ID,
		OrderNumber: row.OrderNumber,
		TicketID:    row.TicketID,
		CreatedBy:   row.CreatedBy,
		Quantity:    row.Quantity,
		Total:       pgconv.DecimalFromNumeric(row.Total),
		Status:      status,
	}, nil
}

func (r *CommandReads) UserByIdentifier(ctx context.Context, identifier string) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByIdentifier(ctx, r.db, identifier)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return userSnapshot(row)
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return userSnapshot(row)
}

func (r *CommandReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event", err)
	}

	return &shared.EventSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		CategoryID:  row.CategoryID,
		IsPublished: row.IsPublished,
	}, nil
}

func userSnapshot(row sqlc.User) (*shared.UserSnapshot, error) {
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid user role in store", err)
	}

	return &shared.UserSnapshot{
		ID:           row.ID,
		FullName:     row.FullName,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         role,
		IsActive:     row.IsActive,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
