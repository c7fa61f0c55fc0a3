package api

import (
	"errors"
	"net/http"
	"strconv"

	"acara-api/internal/domain/user"
	reqdto "acara-api/internal/handler/dto/request"
	resdto "acara-api/internal/handler/dto/response"
	"acara-api/internal/handler/middleware"
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Create a new order for a ticket
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.orderCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		case errors.Is(err, commands.ErrInsufficientQuantity):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough tickets available",
			})
		case errors.Is(err, commands.ErrInvalidOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid order data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List all orders with optional search (admin only)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by order number or user email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page := parsePage(c)
	search := c.Query("search")

	list, err := h.orderQueries.List(c.Request.Context(), search, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderList(list))
}

// @Summary List own orders
// @Description List the authenticated user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders/me [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	list, err := h.orderQueries.ListByUser(c.Request.Context(), userID, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderList(list))
}

// @Summary Get order
// @Description Get an order by its order number; members only see their own
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{orderNumber} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, role, ok := h.actorFromContext(c)
	if !ok {
		return
	}

	view, err := h.orderQueries.GetByNumber(c.Request.Context(), actor, role, c.Param("orderNumber"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Complete order
// @Description Complete an order, taking inventory and issuing vouchers
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{orderNumber}/completed [put]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	actor, role, ok := h.actorFromContext(c)
	if !ok {
		return
	}

	view, err := h.orderCommands.Complete(c.Request.Context(), c.Param("orderNumber"), actor, role)
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Mark order pending
// @Description Move a created order to pending
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{orderNumber}/pending [put]
func (h *OrderHandler) MarkOrderPending(c *gin.Context) {
	actor, role, ok := h.actorFromContext(c)
	if !ok {
		return
	}

	if err := h.orderCommands.MarkPending(c.Request.Context(), c.Param("orderNumber"), actor, role); err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order marked as pending",
	})
}

// @Summary Cancel order
// @Description Cancel an order; reserved inventory is not returned
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{orderNumber}/cancelled [put]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	actor, role, ok := h.actorFromContext(c)
	if !ok {
		return
	}

	if err := h.orderCommands.Cancel(c.Request.Context(), c.Param("orderNumber"), actor, role); err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled",
	})
}

// @Summary Delete order
// @Description Remove an order and its vouchers (admin only)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{orderNumber} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderCommands.Remove(c.Request.Context(), c.Param("orderNumber")); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted",
	})
}

func (h *OrderHandler) actorFromContext(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}

	return userID, role, true
}

func (h *OrderHandler) writeTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, commands.ErrInsufficientQuantity):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Not enough tickets available",
		})
	case errors.Is(err, commands.ErrOrderCompleted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order is already completed",
		})
	case errors.Is(err, commands.ErrOrderCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order has been cancelled",
		})
	case errors.Is(err, commands.ErrOrderAlreadyPending):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order is already pending",
		})
	case errors.Is(err, commands.ErrOrderAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order is already cancelled",
		})
	case errors.Is(err, commands.ErrOrderStateChanged):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order state changed, retry the request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parsePage(c *gin.Context) queries.Page {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 32)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 32)
	if err != nil || limit < 1 {
		limit = 10
	}
	return queries.Page{Page: int32(page), Limit: int32(limit)}
}
