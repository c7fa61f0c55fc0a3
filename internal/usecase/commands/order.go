package commands

import (
	"context"
	"errors"
	"time"

	"acara-api/internal/domain/order"
	"acara-api/internal/domain/ticket"
	"acara-api/internal/domain/user"
	reqdto "acara-api/internal/handler/dto/request"
	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"
	"acara-api/internal/pkg/metrics"
	"acara-api/internal/pkg/shortcode"
	"acara-api/internal/usecase/queries"
	"acara-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound        = errs.New("ticket not found")
	ErrOrderNotFound         = errs.New("order not found")
	ErrInsufficientQuantity  = errs.New("ticket quantity is not enough")
	ErrOrderCompleted        = errs.New("order has been completed")
	ErrOrderCancelled        = errs.New("order has been cancelled")
	ErrOrderAlreadyPending   = errs.New("order is already pending")
	ErrOrderAlreadyCancelled = errs.New("order is already cancelled")
	ErrInvalidOrder          = errs.New("invalid order")
	ErrOrderStateChanged     = errs.New("order changed concurrently")
)

const maxOrderNumberAttempts = 3

type OrderCommands interface {
	Create(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID) (*queries.OrderView, error)
	// Complete flips the order to completed, takes inventory and mints
	// vouchers, all inside one transaction.
	Complete(ctx context.Context, orderNumber string, actor uuid.UUID, role user.Role) (*queries.OrderView, error)
	MarkPending(ctx context.Context, orderNumber string, actor uuid.UUID, role user.Role) error
	Cancel(ctx context.Context, orderNumber string, actor uuid.UUID, role user.Role) error
	Remove(ctx context.Context, orderNumber string) error
}

type orderCommandsImpl struct {
	uow        shared.UnitOfWork
	orderViews queries.OrderViewRepo
	codes      CodeGenerator
}

func NewOrderCommands(uow shared.UnitOfWork, orderViews queries.OrderViewRepo, codes CodeGenerator) OrderCommands {
	return &orderCommandsImpl{
		uow:        uow,
		orderViews: orderViews,
		codes:      codes,
	}
}

func (o *orderCommandsImpl) Create(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID) (*queries.OrderView, error) {
	snap, err := o.uow.CommandReads().TicketByID(ctx, req.TicketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTicketNotFound)
		}
		return nil, err
	}

	tkt := ticket.ReconstructTicket(
		snap.ID, snap.EventID, snap.Name, "", snap.Price, snap.Quantity,
		time.Time{}, time.Time{},
	)

	var created *order.Order
	for attempt := 0; ; attempt++ {
		orderNumber, genErr := o.codes.Generate(shortcode.OrderNumberLength)
		if genErr != nil {
			return nil, errs.Wrap(genErr, "failed to generate order number")
		}

		newOrder, domainErr := order.NewOrder(orderNumber, tkt, userID, req.Quantity)
		if domainErr != nil {
			if errors.Is(domainErr, order.ErrInsufficientQuantity) {
				metrics.OrderRejections.WithLabelValues(metrics.ReasonInsufficientQuantity).Inc()
				return nil, errs.Mark(domainErr, ErrInsufficientQuantity)
			}
			return nil, errs.Mark(domainErr, ErrInvalidOrder)
		}

		err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, createErr := tx.Orders().Create(ctx, tx.DB(), newOrder)
			return createErr
		})
		if err == nil {
			created = newOrder
			break
		}
		// Order numbers are short and random; regenerate on a collision.
		if infra.IsKind(err, infra.KindDuplicateKey) && attempt < maxOrderNumberAttempts {
			continue
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrTicketNotFound)
		}
		return nil, err
	}

	metrics.OrdersCreated.Inc()

	return o.orderViews.FindByNumber(ctx, created.OrderNumber())
}

func (o *orderCommandsImpl) Complete(ctx context.Context, orderNumber string, actor uuid.UUID, role user.Role) (*queries.OrderView, error) {
	start := time.Now()

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := o.loadOwnedOrder(ctx, tx, orderNumber, actor, role)
		if err != nil {
			return err
		}

		ord := reconstructFromSnapshot(snap)
		if err := ord.Complete(o.codes); err != nil {
			return o.mapTransitionErr(err)
		}

		// Inventory is taken with a conditional decrement; zero rows means
		// another order got the remaining stock first.
		affected, err := tx.Tickets().DecrementQuantity(ctx, tx.DB(), snap.TicketID, snap.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			metrics.OrderRejections.WithLabelValues(metrics.ReasonInsufficientQuantity).Inc()
			return ErrInsufficientQuantity
		}

		// The status flip only fires from the status the snapshot saw, so a
		// cancel or another completion racing past the read above cannot be
		// overwritten; cancelled stays terminal.
		affected, err = tx.Orders().Complete(ctx, tx.DB(), snap.ID, snap.Status)
		if err != nil {
			return err
		}
		if affected == 0 {
			metrics.OrderRejections.WithLabelValues(metrics.ReasonStateChanged).Inc()
			return ErrOrderStateChanged
		}

		return tx.Orders().InsertVouchers(ctx, tx.DB(), ord.Vouchers())
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCompleted.Inc()
	metrics.OrderCompletionDuration.Observe(time.Since(start).Seconds())

	view, err := o.orderViews.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	metrics.VouchersIssued.Add(float64(len(view.Vouchers)))
	return view, nil
}

func (o *orderCommandsImpl) MarkPending(ctx context.Context, orderNumber string, actor uuid.UUID, role user.Role) error {
	return o.transition(ctx, orderNumber, actor, role, func(ord *order.Order) error {
		return ord.MarkPending()
	}, order.StatusPending)
}

func (o *orderCommandsImpl) Cancel(ctx context.Context, orderNumber string, actor uuid.UUID, role user.Role) error {
	return o.transition(ctx, orderNumber, actor, role, func(ord *order.Order) error {
		return ord.Cancel()
	}, order.StatusCancelled)
}

// transition handles the voucher-free status moves. Cancellation does not
// restore inventory: stock is only ever taken at completion, and a completed
// order can never be cancelled.
func (o *orderCommandsImpl) transition(
	ctx context.Context,
	orderNumber string,
	actor uuid.UUID,
	role user.Role,
	move func(*order.Order) error,
	to order.Status,
) error {
	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := o.loadOwnedOrder(ctx, tx, orderNumber, actor, role)
		if err != nil {
			return err
		}

		ord := reconstructFromSnapshot(snap)
		if err := move(ord); err != nil {
			return o.mapTransitionErr(err)
		}

		affected, err := tx.Orders().UpdateStatus(ctx, tx.DB(), snap.ID, snap.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStateChanged
		}
		return nil
	})
}

func (o *orderCommandsImpl) Remove(ctx context.Context, orderNumber string) error {
	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Orders().Delete(ctx, tx.DB(), orderNumber)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
}

// loadOwnedOrder reads the order inside the current transaction and applies
// the ownership rule: a non-admin asking about someone else's order gets the
// same answer as for an order that does not exist.
func (o *orderCommandsImpl) loadOwnedOrder(ctx context.Context, tx shared.Tx, orderNumber string, actor uuid.UUID, role user.Role) (*shared.OrderSnapshot, error) {
	snap, err := tx.Reads().OrderByNumber(ctx, orderNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}

	ord := reconstructFromSnapshot(snap)
	if !ord.IsOwnedBy(actor) && role != user.RoleAdmin {
		return nil, ErrOrderNotFound
	}
	return snap, nil
}

func reconstructFromSnapshot(snap *shared.OrderSnapshot) *order.Order {
	return order.ReconstructOrder(
		snap.ID, snap.OrderNumber, snap.TicketID, snap.CreatedBy,
		snap.Quantity, snap.Total, snap.Status, nil,
		time.Time{}, time.Time{},
	)
}

func (o *orderCommandsImpl) mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, order.ErrAlreadyCompleted):
		metrics.OrderRejections.WithLabelValues(metrics.ReasonAlreadyCompleted).Inc()
		return errs.Mark(err, ErrOrderCompleted)
	case errors.Is(err, order.ErrAlreadyCancelled):
		metrics.OrderRejections.WithLabelValues(metrics.ReasonRedundantTransition).Inc()
		return errs.Mark(err, ErrOrderAlreadyCancelled)
	case errors.Is(err, order.ErrCancelled):
		metrics.OrderRejections.WithLabelValues(metrics.ReasonAlreadyCancelled).Inc()
		return errs.Mark(err, ErrOrderCancelled)
	case errors.Is(err, order.ErrAlreadyPending):
		metrics.OrderRejections.WithLabelValues(metrics.ReasonRedundantTransition).Inc()
		return errs.Mark(err, ErrOrderAlreadyPending)
	default:
		return errs.Mark(err, ErrInvalidOrder)
	}
}
