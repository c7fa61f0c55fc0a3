package response

import (
	"time"

	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Banner      string    `json:"banner"`
	CategoryID  uuid.UUID `json:"categoryId"`
	IsFeatured  bool      `json:"isFeatured"`
	IsOnline    bool      `json:"isOnline"`
	IsPublished bool      `json:"isPublished"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	Region      int32     `json:"region"`
	Address     string    `json:"address"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type EventListResponse struct {
	Items []*EventResponse `json:"items"`
	Total int64            `json:"total"`
	Page  int32            `json:"page"`
	Limit int32            `json:"limit"`
}

type TicketResponse struct {
	ID          uuid.UUID       `json:"id"`
	EventID     uuid.UUID       `json:"eventId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromEventView(rm *queries.EventView) *EventResponse {
	var resp EventResponse
	// field-for-field copy, the view and the response share field names
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromEventList(list *queries.EventList) *EventListResponse {
	items := make([]*EventResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, FromEventView(item))
	}

	return &EventListResponse{
		Items: items,
		Total: list.Total,
		Page:  list.Page,
		Limit: list.Limit,
	}
}

func FromTicketView(rm *queries.TicketView) *TicketResponse {
	var resp TicketResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromTicketViews(views []*queries.TicketView) []*TicketResponse {
	items := make([]*TicketResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromTicketView(v))
	}
	return items
}
