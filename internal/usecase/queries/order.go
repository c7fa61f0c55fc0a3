package queries

import (
	"context"
	"time"

	"acara-api/internal/domain/user"
	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errs.New("order not found")

// Read models (DTO for read side)
type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	TicketID    uuid.UUID       `json:"ticket_id"`
	TicketName  string          `json:"ticket_name"`
	EventID     uuid.UUID       `json:"event_id"`
	EventName   string          `json:"event_name"`
	CreatedBy   uuid.UUID       `json:"created_by"`
	UserEmail   string          `json:"user_email"`
	Quantity    int32           `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	Vouchers    []VoucherView   `json:"vouchers"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type VoucherView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	IsPrint   bool      `json:"is_print"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderListItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	TicketName  string          `json:"ticket_name"`
	EventName   string          `json:"event_name"`
	UserEmail   string          `json:"user_email"`
	Quantity    int32           `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderList struct {
	Items []*OrderListItem `json:"items"`
	Total int64            `json:"total"`
	Page  int32            `json:"page"`
	Limit int32            `json:"limit"`
}

type OrderQueries interface {
	// GetByNumber hides orders of other users from non-admins: they get the
	// same not-found as for an order that does not exist.
	GetByNumber(ctx context.Context, actor uuid.UUID, role user.Role, orderNumber string) (*OrderView, error)
	List(ctx context.Context, search string, page Page) (*OrderList, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) (*OrderList, error)
}

type OrderViewRepo interface {
	FindByNumber(ctx context.Context, orderNumber string) (*OrderView, error)
	FindAll(ctx context.Context, search string, limit, offset int32) ([]*OrderListItem, error)
	CountAll(ctx context.Context, search string) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*OrderListItem, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, actor uuid.UUID, role user.Role, orderNumber string) (*OrderView, error) {
	view, err := q.repo.FindByNumber(ctx, orderNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	if view.CreatedBy != actor && role != user.RoleAdmin {
		return nil, ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, search string, page Page) (*OrderList, error) {
	limit, offset := page.normalize()

	items, err := q.repo.FindAll(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := q.repo.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	return &OrderList{Items: items, Total: total, Page: offset/limit + 1, Limit: limit}, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, page Page) (*OrderList, error) {
	limit, offset := page.normalize()

	items, err := q.repo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := q.repo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &OrderList{Items: items, Total: total, Page: offset/limit + 1, Limit: limit}, nil
}
