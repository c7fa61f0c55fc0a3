package request

import (
	"acara-api/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTicketRequest struct {
	EventID     uuid.UUID       `json:"event_id" binding:"required"`
	Name        string          `json:"name" binding:"required,max=120"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int32           `json:"quantity" binding:"gte=0"`
}

func (r CreateTicketRequest) ToDomain() (*ticket.Ticket, error) {
	return ticket.NewTicket(r.EventID, r.Name, r.Description, r.Price, r.Quantity)
}

type UpdateTicketRequest struct {
	Name        string          `json:"name" binding:"required,max=120"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int32           `json:"quantity" binding:"gte=0"`
}
