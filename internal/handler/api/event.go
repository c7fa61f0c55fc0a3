package api

import (
	"errors"
	"net/http"

	reqdto "acara-api/internal/handler/dto/request"
	resdto "acara-api/internal/handler/dto/response"
	"acara-api/internal/handler/middleware"
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

// @Summary List events
// @Description List published events with optional search
// @Tags events
// @Produce json
// @Param search query string false "Search by name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.EventListResponse
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	filter := queries.EventFilter{
		OnlyPublished: true,
		Search:        c.Query("search"),
	}

	list, err := h.eventQueries.List(c.Request.Context(), filter, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventList(list))
}

// @Summary List all events
// @Description List events including unpublished drafts (admin only)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.EventListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /events/all [get]
func (h *EventHandler) ListAllEvents(c *gin.Context) {
	filter := queries.EventFilter{
		OnlyPublished: false,
		Search:        c.Query("search"),
	}

	list, err := h.eventQueries.List(c.Request.Context(), filter, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventList(list))
}

// @Summary Get event by slug
// @Description Get a single event by its URL slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} map[string]string
// @Router /events/{slug} [get]
func (h *EventHandler) GetEventBySlug(c *gin.Context) {
	view, err := h.eventQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary List event tickets
// @Description List the ticket types of an event
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {array} resdto.TicketResponse
// @Failure 404 {object} map[string]string
// @Router /events/{slug}/tickets [get]
func (h *EventHandler) ListEventTickets(c *gin.Context) {
	event, err := h.eventQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	views, err := h.eventQueries.TicketsByEvent(c.Request.Context(), event.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketViews(views))
}

// @Summary Create event
// @Description Create a new event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.writeEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Update event
// @Description Update an existing event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Param request body reqdto.UpdateEventRequest true "Event request"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{slug} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := h.resolveEventID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Delete event
// @Description Delete an event (admin only)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{slug} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := h.resolveEventID(c)
	if !ok {
		return
	}

	if err := h.eventCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted",
	})
}

// resolveEventID maps the slug path segment to the event's ID so the
// commands keep operating on primary keys.
func (h *EventHandler) resolveEventID(c *gin.Context) (uuid.UUID, bool) {
	event, err := h.eventQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return uuid.Nil, false
	}
	return event.ID, true
}

func (h *EventHandler) writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, commands.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, gin.H{
			"error": "An event with this slug already exists",
		})
	case errors.Is(err, commands.ErrEventHasOrders):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Event has tickets with existing orders",
		})
	case errors.Is(err, commands.ErrInvalidEvent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid event data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
