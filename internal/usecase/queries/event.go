package queries

import (
	"context"
	"time"

	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEventNotFound  = errs.New("event not found")
	ErrTicketNotFound = errs.New("ticket not found")
)

type EventView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Banner      string    `json:"banner"`
	CategoryID  uuid.UUID `json:"category_id"`
	IsFeatured  bool      `json:"is_featured"`
	IsOnline    bool      `json:"is_online"`
	IsPublished bool      `json:"is_published"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Region      int32     `json:"region"`
	Address     string    `json:"address"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EventList struct {
	Items []*EventView `json:"items"`
	Total int64        `json:"total"`
	Page  int32        `json:"page"`
	Limit int32        `json:"limit"`
}

type TicketView struct {
	ID          uuid.UUID       `json:"id"`
	EventID     uuid.UUID       `json:"event_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EventFilter narrows listings. Members only ever see published events; the
// admin listing passes OnlyPublished=false to see drafts too.
type EventFilter struct {
	OnlyPublished bool
	Search        string
}

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	GetBySlug(ctx context.Context, slug string) (*EventView, error)
	List(ctx context.Context, filter EventFilter, page Page) (*EventList, error)
	TicketsByEvent(ctx context.Context, eventID uuid.UUID) ([]*TicketView, error)
	TicketByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type EventViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindBySlug(ctx context.Context, slug string) (*EventView, error)
	FindAll(ctx context.Context, filter EventFilter, limit, offset int32) ([]*EventView, error)
	CountAll(ctx context.Context, filter EventFilter) (int64, error)
	FindTicketsByEvent(ctx context.Context, eventID uuid.UUID) ([]*TicketView, error)
	FindTicketByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type eventQueriesImpl struct {
	repo EventViewRepo
}

func NewEventQueries(repo EventViewRepo) EventQueries {
	return &eventQueriesImpl{repo: repo}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) GetBySlug(ctx context.Context, slug string) (*EventView, error) {
	view, err := q.repo.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) List(ctx context.Context, filter EventFilter, page Page) (*EventList, error) {
	limit, offset := page.normalize()

	items, err := q.repo.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := q.repo.CountAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &EventList{Items: items, Total: total, Page: offset/limit + 1, Limit: limit}, nil
}

func (q *eventQueriesImpl) TicketsByEvent(ctx context.Context, eventID uuid.UUID) ([]*TicketView, error) {
	return q.repo.FindTicketsByEvent(ctx, eventID)
}

func (q *eventQueriesImpl) TicketByID(ctx context.Context, id uuid.UUID) (*TicketView, error) {
	view, err := q.repo.FindTicketByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTicketNotFound)
		}
		return nil, err
	}
	return view, nil
}
