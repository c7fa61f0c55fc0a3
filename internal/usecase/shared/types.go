package shared

import (
	"time"

	"acara-api/internal/domain/order"
	"acara-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshots for command-side reads. They carry exactly what a write
// path needs to decide; full read models live in usecase/queries.

type TicketSnapshot struct {
	ID       uuid.UUID
	EventID  uuid.UUID
	Name     string
	Price    decimal.Decimal
	Quantity int32
}

type OrderSnapshot struct {
	ID          uuid.UUID
	OrderNumber string
	TicketID    uuid.UUID
	CreatedBy   uuid.UUID
	Quantity    int32
	Total       decimal.Decimal
	Status      order.Status
}

type UserSnapshot struct {
	ID           uuid.UUID
	FullName     string
	Username     string
	Email        string
	PasswordHash string
	Role         user.Role
	IsActive     bool
	CreatedAt    time.Time
}

type EventSnapshot struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	CategoryID  uuid.UUID
	IsPublished bool
}
