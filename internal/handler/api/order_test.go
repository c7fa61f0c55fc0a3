//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"acara-api/internal/domain/user"
	"acara-api/internal/handler/api"
	resdto "acara-api/internal/handler/dto/response"
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"
	"acara-api/tests/common/builder"
	"acara-api/tests/common/httptest"
	commandsmock "acara-api/tests/mock/commands"
	queriesmock "acara-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.role = user.RoleMember

	// stands in for the auth middleware
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
	})

	s.router.POST("/orders", s.handler.CreateOrder)
	s.router.GET("/orders", s.handler.ListOrders)
	s.router.GET("/orders/me", s.handler.ListMyOrders)
	s.router.GET("/orders/:orderNumber", s.handler.GetOrder)
	s.router.PUT("/orders/:orderNumber/completed", s.handler.CompleteOrder)
	s.router.PUT("/orders/:orderNumber/pending", s.handler.MarkOrderPending)
	s.router.PUT("/orders/:orderNumber/cancelled", s.handler.CancelOrder)
	s.router.DELETE("/orders/:orderNumber", s.handler.DeleteOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"
	reqBody := builder.NewOrderBuilder().BuildCreateDTO()

	s.Run("success: returns 201 Created with the new order", func() {
		view := builder.NewOrderBuilder().WithCreatedBy(s.userID).BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.OrderNumber, response.OrderNumber)
		s.Equal("created", response.Status)
	})

	s.Run("error: 400 Bad Request when quantity is zero", func() {
		body := map[string]any{"ticket_id": uuid.New().String(), "quantity": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for unknown ticket", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
			Return(nil, commands.ErrTicketNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
	})

	s.Run("error: 409 Conflict when stock is insufficient", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
			Return(nil, commands.ErrInsufficientQuantity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough tickets available")
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.Run("success: returns the order for its owner", func() {
		view := builder.NewOrderBuilder().WithCreatedBy(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), s.userID, s.role, view.OrderNumber).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.OrderNumber, nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.OrderNumber, response.OrderNumber)
	})

	s.Run("error: 404 Not Found when hidden or missing", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), s.userID, s.role, "ORD99999").
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/ORD99999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.Run("success: returns the paginated admin listing", func() {
		item := builder.NewOrderBuilder().BuildListItem()
		list := &queries.OrderList{Items: []*queries.OrderListItem{item}, Total: 1, Page: 1, Limit: 10}
		s.mockQueries.EXPECT().List(gomock.Any(), "", queries.Page{Page: 1, Limit: 10}).
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(int64(1), response.Total)
	})

	s.Run("success: forwards search and paging parameters", func() {
		list := &queries.OrderList{Items: nil, Total: 0, Page: 2, Limit: 5}
		s.mockQueries.EXPECT().List(gomock.Any(), "alice", queries.Page{Page: 2, Limit: 5}).
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?search=alice&page=2&limit=5", nil, "")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(2), response.Page)
	})
}

func (s *OrderHandlerTestSuite) TestListMyOrders() {
	s.Run("success: scopes the listing to the caller", func() {
		item := builder.NewOrderBuilder().BuildListItem()
		list := &queries.OrderList{Items: []*queries.OrderListItem{item}, Total: 1, Page: 1, Limit: 10}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, queries.Page{Page: 1, Limit: 10}).
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/me", nil, "")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})
}

func (s *OrderHandlerTestSuite) TestCompleteOrder() {
	url := "/orders/ORD12345/completed"

	s.Run("success: returns the completed order with vouchers", func() {
		view := builder.NewOrderBuilder().
			WithCreatedBy(s.userID).
			WithStatus("completed").
			WithVouchers("AB12C", "CD34E").
			BuildView()
		s.mockCommands.EXPECT().Complete(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
		s.Len(response.Vouchers, 2)
	})

	s.Run("error: 409 Conflict when already completed", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(nil, commands.ErrOrderCompleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already completed")
	})

	s.Run("error: 409 Conflict when stock ran out", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(nil, commands.ErrInsufficientQuantity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough tickets available")
	})

	s.Run("error: 404 Not Found for another user's order", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(nil, commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestTransitions() {
	s.Run("success: marks the order pending", func() {
		s.mockCommands.EXPECT().MarkPending(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/orders/ORD12345/pending", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: cancels the order", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/orders/ORD12345/cancelled", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 409 Conflict when cancelling a completed order", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(commands.ErrOrderCompleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/orders/ORD12345/cancelled", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already completed")
	})

	s.Run("error: 409 Conflict when the state changed concurrently", func() {
		s.mockCommands.EXPECT().MarkPending(gomock.Any(), "ORD12345", s.userID, s.role).
			Return(commands.ErrOrderStateChanged).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/orders/ORD12345/pending", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "retry")
	})
}

func (s *OrderHandlerTestSuite) TestDeleteOrder() {
	s.Run("success: deletes the order", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), "ORD12345").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/ORD12345", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 Not Found for a missing order", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), "ORD99999").
			Return(commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/ORD99999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}
