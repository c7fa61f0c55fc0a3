package order

import (
	"time"

	"acara-api/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a purchase of a quantity of one ticket by one user. The total is
// fixed at creation from the ticket price in effect at that moment; later
// price changes never touch existing orders. Inventory is not reserved at
// creation; the authoritative availability check is the atomic decrement
// performed when the order completes.
type Order struct {
	id          uuid.UUID
	orderNumber string
	ticketID    uuid.UUID
	createdBy   uuid.UUID
	quantity    int32
	total       decimal.Decimal
	status      Status
	vouchers    []Voucher
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOrder(orderNumber string, tkt *ticket.Ticket, createdBy uuid.UUID, quantity int32) (*Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !tkt.HasStock(quantity) {
		return nil, ErrInsufficientQuantity
	}

	return &Order{
		id:          uuid.New(),
		orderNumber: orderNumber,
		ticketID:    tkt.ID(),
		createdBy:   createdBy,
		quantity:    quantity,
		total:       tkt.TotalFor(quantity),
		status:      StatusCreated,
		vouchers:    nil,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	orderNumber string,
	ticketID, createdBy uuid.UUID,
	quantity int32,
	total decimal.Decimal,
	status Status,
	vouchers []Voucher,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		orderNumber: orderNumber,
		ticketID:    ticketID,
		createdBy:   createdBy,
		quantity:    quantity,
		total:       total,
		status:      status,
		vouchers:    vouchers,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsOwnedBy is the explicit ownership check for order-scoped operations.
// Callers decide how to surface a mismatch; the query layer never folds
// ownership into its lookups.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.createdBy == userID
}

// Complete transitions the order to completed and mints exactly one voucher
// per purchased unit. The inventory decrement is the storage layer's
// responsibility and must commit atomically with this transition.
func (o *Order) Complete(gen CodeGenerator) error {
	if err := CanTransition(o.status, StatusCompleted); err != nil {
		return err
	}

	vouchers, err := mintVouchers(o.id, o.quantity, gen)
	if err != nil {
		return err
	}

	o.status = StatusCompleted
	o.vouchers = vouchers
	return nil
}

// MarkPending and Cancel carry no voucher or inventory side effects.
func (o *Order) MarkPending() error {
	if err := CanTransition(o.status, StatusPending); err != nil {
		return err
	}
	o.status = StatusPending
	return nil
}

func (o *Order) Cancel() error {
	if err := CanTransition(o.status, StatusCancelled); err != nil {
		return err
	}
	o.status = StatusCancelled
	return nil
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) OrderNumber() string    { return o.orderNumber }
func (o *Order) TicketID() uuid.UUID    { return o.ticketID }
func (o *Order) CreatedBy() uuid.UUID   { return o.createdBy }
func (o *Order) Quantity() int32        { return o.quantity }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Vouchers() []Voucher    { return o.vouchers }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
