package shared

import (
	"context"

	"acara-api/internal/domain/banner"
	"acara-api/internal/domain/category"
	"acara-api/internal/domain/event"
	"acara-api/internal/domain/order"
	"acara-api/internal/domain/ticket"
	"acara-api/internal/domain/user"
	sqlc "acara-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: command-side reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Tickets() TicketRepository
	Events() EventRepository
	Banners() BannerRepository
	Categories() CategoryRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TicketByID(ctx context.Context, id uuid.UUID) (*TicketSnapshot, error)
	OrderByNumber(ctx context.Context, orderNumber string) (*OrderSnapshot, error)
	UserByIdentifier(ctx context.Context, identifier string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, o *order.Order) (uuid.UUID, error)
	// Complete flips the status to completed only when the order is still
	// in the status the caller read; zero rows means the order moved
	// concurrently. Returns the number of rows changed.
	Complete(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, from order.Status) (int64, error)
	// UpdateStatus moves the order from one status to another as a single
	// conditional write; zero rows means the order moved concurrently.
	UpdateStatus(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, from, to order.Status) (int64, error)
	InsertVouchers(ctx context.Context, db sqlc.DBTX, vouchers []order.Voucher) error
	Delete(ctx context.Context, db sqlc.DBTX, orderNumber string) (int64, error)
}

type TicketRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, t *ticket.Ticket) (uuid.UUID, error)
	Update(ctx context.Context, db sqlc.DBTX, t *ticket.Ticket) (int64, error)
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	// DecrementQuantity atomically takes stock: quantity is reduced only
	// when enough remains, in one conditional statement. Zero rows means
	// insufficient stock.
	DecrementQuantity(ctx context.Context, db sqlc.DBTX, id uuid.UUID, quantity int32) (int64, error)
}

type EventRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, e *event.Event) (uuid.UUID, error)
	Update(ctx context.Context, db sqlc.DBTX, e *event.Event) (int64, error)
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BannerRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, b *banner.Banner) (uuid.UUID, error)
	Update(ctx context.Context, db sqlc.DBTX, b *banner.Banner) (int64, error)
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, c *category.Category) (uuid.UUID, error)
	Update(ctx context.Context, db sqlc.DBTX, c *category.Category) (int64, error)
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) (uuid.UUID, error)
	Activate(ctx context.Context, db sqlc.DBTX, activationCode string) (int64, error)
}
