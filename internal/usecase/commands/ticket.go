package commands

import (
	"context"

	"acara-api/internal/domain/ticket"
	reqdto "acara-api/internal/handler/dto/request"
	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"
	"acara-api/internal/usecase/queries"
	"acara-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidTicket   = errs.New("invalid ticket")
	ErrTicketHasOrders = errs.New("ticket still has orders")
)

type TicketCommands interface {
	Create(ctx context.Context, req reqdto.CreateTicketRequest) (*queries.TicketView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateTicketRequest) (*queries.TicketView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketCommandsImpl struct {
	uow        shared.UnitOfWork
	eventViews queries.EventViewRepo
}

func NewTicketCommands(uow shared.UnitOfWork, eventViews queries.EventViewRepo) TicketCommands {
	return &ticketCommandsImpl{
		uow:        uow,
		eventViews: eventViews,
	}
}

func (t *ticketCommandsImpl) Create(ctx context.Context, req reqdto.CreateTicketRequest) (*queries.TicketView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTicket)
	}

	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Tickets().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, err
	}

	return t.eventViews.FindTicketByID(ctx, entity.ID())
}

func (t *ticketCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateTicketRequest) (*queries.TicketView, error) {
	entity, err := ticket.NewTicketForUpdate(id, req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTicket)
	}

	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, updateErr := tx.Tickets().Update(ctx, tx.DB(), entity)
		if updateErr != nil {
			return updateErr
		}
		if affected == 0 {
			return ErrTicketNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t.eventViews.FindTicketByID(ctx, id)
}

func (t *ticketCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Tickets().Delete(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrTicketHasOrders)
			}
			return err
		}
		if affected == 0 {
			return ErrTicketNotFound
		}
		return nil
	})
}
