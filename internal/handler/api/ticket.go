package api

import (
	"errors"
	"net/http"

	reqdto "acara-api/internal/handler/dto/request"
	resdto "acara-api/internal/handler/dto/response"
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	ticketCommands commands.TicketCommands
	eventQueries   queries.EventQueries
}

func NewTicketHandler(ticketCommands commands.TicketCommands, eventQueries queries.EventQueries) *TicketHandler {
	return &TicketHandler{
		ticketCommands: ticketCommands,
		eventQueries:   eventQueries,
	}
}

// @Summary Get ticket
// @Description Get a ticket type by ID
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID",
		})
		return
	}

	view, err := h.eventQueries.TicketByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Create ticket
// @Description Create a ticket type for an event (admin only)
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTicketRequest true "Ticket request"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req reqdto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ticketCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTicketView(view))
}

// @Summary Update ticket
// @Description Update a ticket type (admin only)
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.UpdateTicketRequest true "Ticket request"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID",
		})
		return
	}

	var req reqdto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ticketCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Delete ticket
// @Description Delete a ticket type (admin only)
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID",
		})
		return
	}

	if err := h.ticketCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket deleted",
	})
}

func (h *TicketHandler) writeTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ticket not found",
		})
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrTicketHasOrders):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Ticket has existing orders",
		})
	case errors.Is(err, commands.ErrInvalidTicket):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid ticket data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
