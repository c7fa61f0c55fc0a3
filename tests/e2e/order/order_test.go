//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"acara-api/internal/handler/dto/request"
	resdto "acara-api/internal/handler/dto/response"
	"acara-api/tests/common/dbtest"
	apptest "acara-api/tests/common/httptest"
	"acara-api/tests/e2e"
	"acara-api/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderSuite))
}

type orderFixture struct {
	memberID uuid.UUID
	memberTk string
	adminTk  string
	ticketID uuid.UUID
}

func (s *OrderSuite) setupOrderFixture(ticketPrice decimal.Decimal, ticketQuantity int32) orderFixture {
	t := s.T()

	adminID := dbtest.CreateTestUser(t, s.DB, "admin", "admin@example.com", "admin")
	memberID, memberToken := helper.CreateAndLogin(t, s.Router, s.DB, "alice", "alice@example.com", "member")
	adminToken := helper.LoginUser(t, s.Router, "admin@example.com")

	eventID := dbtest.CreateTestEvent(t, s.DB, adminID)
	ticketID := dbtest.CreateTestTicket(t, s.DB, eventID, ticketPrice, ticketQuantity)

	return orderFixture{
		memberID: memberID,
		memberTk: memberToken,
		adminTk:  adminToken,
		ticketID: ticketID,
	}
}

func (s *OrderSuite) createOrder(token string, ticketID uuid.UUID, quantity int32) resdto.OrderResponse {
	w := apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", request.CreateOrderRequest{
		TicketID: ticketID,
		Quantity: quantity,
	}, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, "create order failed: %s", w.Body.String())

	var order resdto.OrderResponse
	require.NoError(s.T(), apptest.DecodeResponseBody(s.T(), w.Body, &order))
	return order
}

func (s *OrderSuite) fetchOrder(orderNumber, token string) resdto.OrderResponse {
	w := apptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+orderNumber, nil, token)
	var order resdto.OrderResponse
	apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &order)
	return order
}

func (s *OrderSuite) ticketQuantityInDB(ticketID uuid.UUID) int32 {
	var qty int32
	err := s.DB.QueryRow(context.Background(),
		"SELECT quantity FROM tickets WHERE id = $1", ticketID).Scan(&qty)
	require.NoError(s.T(), err)
	return qty
}

func (s *OrderSuite) TestOrderLifecycle() {
	s.Run("created order completes and mints vouchers", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(150000), 10)

		order := s.createOrder(fix.memberTk, fix.ticketID, 2)
		s.Equal("created", order.Status)
		s.True(order.Total.Equal(decimal.NewFromInt(300000)),
			"expected total 300000, got %s", order.Total)
		s.Empty(order.Vouchers)

		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/orders/"+order.OrderNumber+"/pending", nil, fix.memberTk)
		require.Equal(s.T(), http.StatusOK, w.Code, "mark pending failed: %s", w.Body.String())
		s.Equal("pending", s.fetchOrder(order.OrderNumber, fix.memberTk).Status)

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/orders/"+order.OrderNumber+"/completed", nil, fix.memberTk)
		var completed resdto.OrderResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &completed)
		s.Equal("completed", completed.Status)
		s.Len(completed.Vouchers, 2)
		s.Equal(int32(8), s.ticketQuantityInDB(fix.ticketID))
	})

	s.Run("completed order cannot be cancelled", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(50000), 5)

		order := s.createOrder(fix.memberTk, fix.ticketID, 1)
		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/orders/"+order.OrderNumber+"/completed", nil, fix.memberTk)
		require.Equal(s.T(), http.StatusOK, w.Code)

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/orders/"+order.OrderNumber+"/cancelled", nil, fix.memberTk)
		apptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "completed")
	})

	s.Run("total is fixed at creation and survives price changes", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(150000), 10)

		order := s.createOrder(fix.memberTk, fix.ticketID, 2)
		s.True(order.Total.Equal(decimal.NewFromInt(300000)))

		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/tickets/"+fix.ticketID.String(), request.UpdateTicketRequest{
				Name:     "Regular",
				Price:    decimal.NewFromInt(999999),
				Quantity: 10,
			}, fix.adminTk)
		require.Equal(s.T(), http.StatusOK, w.Code, "ticket update failed: %s", w.Body.String())

		fetched := s.fetchOrder(order.OrderNumber, fix.memberTk)
		s.True(fetched.Total.Equal(decimal.NewFromInt(300000)),
			"total must keep the price in effect at creation, got %s", fetched.Total)

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/orders/"+order.OrderNumber+"/completed", nil, fix.memberTk)
		var completed resdto.OrderResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &completed)
		s.True(completed.Total.Equal(decimal.NewFromInt(300000)),
			"completion must not reprice the order, got %s", completed.Total)
	})

	s.Run("cancelling never restores inventory", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(50000), 5)

		order := s.createOrder(fix.memberTk, fix.ticketID, 2)
		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/orders/"+order.OrderNumber+"/cancelled", nil, fix.memberTk)
		require.Equal(s.T(), http.StatusOK, w.Code, "cancel failed: %s", w.Body.String())
		s.Equal("cancelled", s.fetchOrder(order.OrderNumber, fix.memberTk).Status)

		// Stock is only moved at completion, so cancelling a created
		// order leaves the ticket untouched.
		s.Equal(int32(5), s.ticketQuantityInDB(fix.ticketID))
	})
}

func (s *OrderSuite) TestOrderVisibility() {
	s.Run("orders are hidden from other members but visible to admins", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(80000), 5)
		order := s.createOrder(fix.memberTk, fix.ticketID, 1)

		_, otherToken := helper.CreateAndLogin(s.T(), s.Router, s.DB, "bob", "bob@example.com", "member")
		w := apptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/"+order.OrderNumber, nil, otherToken)
		apptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/"+order.OrderNumber, nil, fix.adminTk)
		var fetched resdto.OrderResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)
		s.Equal(order.OrderNumber, fetched.OrderNumber)
		s.Equal(fix.memberID, fetched.CreatedBy)
	})

	s.Run("admin listing searches by order number and user email", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(80000), 5)
		order := s.createOrder(fix.memberTk, fix.ticketID, 1)

		for _, term := range []string{order.OrderNumber, "alice@example.com"} {
			w := apptest.PerformRequest(s.T(), s.Router, http.MethodGet,
				"/api/orders?search="+term, nil, fix.adminTk)
			var list resdto.OrderListResponse
			apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
			s.Equal(int64(1), list.Total, "search %q should match the order", term)
			require.Len(s.T(), list.Items, 1)
			s.Equal(order.OrderNumber, list.Items[0].OrderNumber)
		}

		w := apptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders?search=nobody@example.com", nil, fix.adminTk)
		var empty resdto.OrderListResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &empty)
		s.Equal(int64(0), empty.Total)
	})

	s.Run("own orders appear in the personal listing", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(80000), 5)
		order := s.createOrder(fix.memberTk, fix.ticketID, 1)

		w := apptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/me", nil, fix.memberTk)
		var list resdto.OrderListResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Equal(int64(1), list.Total)
		require.Len(s.T(), list.Items, 1)
		s.Equal(order.OrderNumber, list.Items[0].OrderNumber)
	})
}

// Two orders compete for the last ticket; exactly one completion may win.
func (s *OrderSuite) TestConcurrentCompletionOversell() {
	s.Run("last ticket is sold exactly once", func() {
		fix := s.setupOrderFixture(decimal.NewFromInt(100000), 1)

		_, bobToken := helper.CreateAndLogin(s.T(), s.Router, s.DB, "bob", "bob@example.com", "member")

		aliceOrder := s.createOrder(fix.memberTk, fix.ticketID, 1)
		bobOrder := s.createOrder(bobToken, fix.ticketID, 1)

		type attempt struct {
			orderNumber string
			token       string
		}
		attempts := []attempt{
			{aliceOrder.OrderNumber, fix.memberTk},
			{bobOrder.OrderNumber, bobToken},
		}

		codes := make([]int, len(attempts))
		var wg sync.WaitGroup
		for i, a := range attempts {
			wg.Add(1)
			go func(i int, a attempt) {
				defer wg.Done()
				w := apptest.PerformRequest(s.T(), s.Router, http.MethodPut,
					"/api/orders/"+a.orderNumber+"/completed", nil, a.token)
				codes[i] = w.Code
			}(i, a)
		}
		wg.Wait()

		succeeded, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				succeeded++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, succeeded, "exactly one completion must win, got codes %v", codes)
		s.Equal(1, conflicted, "the losing completion must conflict, got codes %v", codes)

		s.Equal(int32(0), s.ticketQuantityInDB(fix.ticketID))

		var voucherCount int
		err := s.DB.QueryRow(context.Background(),
			`SELECT count(*) FROM vouchers v
			 JOIN orders o ON o.id = v.order_id
			 WHERE o.ticket_id = $1`, fix.ticketID).Scan(&voucherCount)
		require.NoError(s.T(), err)
		s.Equal(1, voucherCount, "only the winning order mints a voucher")
	})
}
