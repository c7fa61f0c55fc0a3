package response

import (
	"time"

	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID          uuid.UUID         `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	TicketID    uuid.UUID         `json:"ticketId"`
	TicketName  string            `json:"ticketName"`
	EventID     uuid.UUID         `json:"eventId"`
	EventName   string            `json:"eventName"`
	CreatedBy   uuid.UUID         `json:"createdBy"`
	UserEmail   string            `json:"userEmail"`
	Quantity    int32             `json:"quantity"`
	Total       decimal.Decimal   `json:"total"`
	Status      string            `json:"status"`
	Vouchers    []VoucherResponse `json:"vouchers"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type VoucherResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	IsPrint   bool      `json:"isPrint"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderListItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	TicketName  string          `json:"ticketName"`
	EventName   string          `json:"eventName"`
	UserEmail   string          `json:"userEmail"`
	Quantity    int32           `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderListResponse struct {
	Items []*OrderListItemResponse `json:"items"`
	Total int64                    `json:"total"`
	Page  int32                    `json:"page"`
	Limit int32                    `json:"limit"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	vouchers := make([]VoucherResponse, 0, len(rm.Vouchers))
	for _, v := range rm.Vouchers {
		vouchers = append(vouchers, VoucherResponse{
			ID:        v.ID,
			Code:      v.Code,
			IsPrint:   v.IsPrint,
			CreatedAt: v.CreatedAt,
		})
	}

	return &OrderResponse{
		ID:          rm.ID,
		OrderNumber: rm.OrderNumber,
		TicketID:    rm.TicketID,
		TicketName:  rm.TicketName,
		EventID:     rm.EventID,
		EventName:   rm.EventName,
		CreatedBy:   rm.CreatedBy,
		UserEmail:   rm.UserEmail,
		Quantity:    rm.Quantity,
		Total:       rm.Total,
		Status:      rm.Status,
		Vouchers:    vouchers,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromOrderListItem(rm *queries.OrderListItem) *OrderListItemResponse {
	return &OrderListItemResponse{
		ID:          rm.ID,
		OrderNumber: rm.OrderNumber,
		TicketName:  rm.TicketName,
		EventName:   rm.EventName,
		UserEmail:   rm.UserEmail,
		Quantity:    rm.Quantity,
		Total:       rm.Total,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromOrderList(list *queries.OrderList) *OrderListResponse {
	items := make([]*OrderListItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, FromOrderListItem(item))
	}

	return &OrderListResponse{
		Items: items,
		Total: list.Total,
		Page:  list.Page,
		Limit: list.Limit,
	}
}
