package request

import (
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	TicketID uuid.UUID `json:"ticket_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,gt=0"`
}
