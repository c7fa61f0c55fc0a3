//go:build unit || e2e

package builder

import (
	"time"

	reqdto "acara-api/internal/handler/dto/request"
	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	OrderNumber string
	TicketID    uuid.UUID
	TicketName  string
	EventID     uuid.UUID
	EventName   string
	CreatedBy   uuid.UUID
	UserEmail   string
	Quantity    int32
	Total       decimal.Decimal
	Status      string
	Vouchers    []queries.VoucherView
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		OrderNumber: "ORD12345",
		TicketID:    uuid.New(),
		TicketName:  "Regular",
		EventID:     uuid.New(),
		EventName:   "Go Conference",
		CreatedBy:   uuid.New(),
		UserEmail:   "test@example.com",
		Quantity:    2,
		Total:       decimal.NewFromInt(300000),
		Status:      "created",
	}
}

func (o *OrderBuilder) WithStatus(status string) *OrderBuilder {
	o.Status = status
	return o
}

func (o *OrderBuilder) WithCreatedBy(id uuid.UUID) *OrderBuilder {
	o.CreatedBy = id
	return o
}

func (o *OrderBuilder) WithVouchers(codes ...string) *OrderBuilder {
	for _, code := range codes {
		o.Vouchers = append(o.Vouchers, queries.VoucherView{
			ID:        uuid.New(),
			Code:      code,
			IsPrint:   false,
			CreatedAt: time.Now(),
		})
	}
	return o
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	now := time.Now()
	return &queries.OrderView{
		ID:          uuid.New(),
		OrderNumber: o.OrderNumber,
		TicketID:    o.TicketID,
		TicketName:  o.TicketName,
		EventID:     o.EventID,
		EventName:   o.EventName,
		CreatedBy:   o.CreatedBy,
		UserEmail:   o.UserEmail,
		Quantity:    o.Quantity,
		Total:       o.Total,
		Status:      o.Status,
		Vouchers:    o.Vouchers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (o *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:          uuid.New(),
		OrderNumber: o.OrderNumber,
		TicketName:  o.TicketName,
		EventName:   o.EventName,
		UserEmail:   o.UserEmail,
		Quantity:    o.Quantity,
		Total:       o.Total,
		Status:      o.Status,
		CreatedAt:   time.Now(),
	}
}

func (o *OrderBuilder) BuildCreateDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		TicketID: o.TicketID,
		Quantity: o.Quantity,
	}
}
