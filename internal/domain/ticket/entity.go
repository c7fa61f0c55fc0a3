package ticket

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("ticket name cannot be empty")
	ErrNegativePrice    = errors.New("ticket price cannot be negative")
	ErrNegativeQuantity = errors.New("ticket quantity cannot be negative")
)

// Ticket is a purchasable admission category for an event. Quantity is the
// remaining sellable count; the order path only ever reduces it through the
// storage layer's conditional decrement.
type Ticket struct {
	id          uuid.UUID
	eventID     uuid.UUID
	name        string
	description string
	price       decimal.Decimal
	quantity    int32
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(eventID uuid.UUID, name, description string, price decimal.Decimal, quantity int32) (*Ticket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Ticket{
		id:          uuid.New(),
		eventID:     eventID,
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
	}, nil
}

// NewTicketForUpdate validates a replacement of a ticket's mutable fields.
// The owning event never changes after creation.
func NewTicketForUpdate(id uuid.UUID, name, description string, price decimal.Decimal, quantity int32) (*Ticket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Ticket{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
	}, nil
}

func ReconstructTicket(
	id, eventID uuid.UUID,
	name, description string,
	price decimal.Decimal,
	quantity int32,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:          id,
		eventID:     eventID,
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// HasStock reports whether the remaining quantity covers a request. This is
// the advisory creation-time check; the authoritative check is the atomic
// decrement at completion.
func (t *Ticket) HasStock(requested int32) bool {
	return requested > 0 && t.quantity >= requested
}

// TotalFor computes the order total for a quantity at the current price.
func (t *Ticket) TotalFor(quantity int32) decimal.Decimal {
	return t.price.Mul(decimal.NewFromInt32(quantity))
}

func (t *Ticket) ID() uuid.UUID          { return t.id }
func (t *Ticket) EventID() uuid.UUID     { return t.eventID }
func (t *Ticket) Name() string           { return t.name }
func (t *Ticket) Description() string    { return t.description }
func (t *Ticket) Price() decimal.Decimal { return t.price }
func (t *Ticket) Quantity() int32        { return t.quantity }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }
