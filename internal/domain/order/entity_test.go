//go:build unit

package order_test

import (
	"testing"

	"acara-api/internal/domain/order"
	"acara-api/internal/domain/ticket"
	"acara-api/internal/pkg/shortcode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTicket(t *testing.T, price int64, quantity int32) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket(uuid.New(), "Regular", "regular admission", decimal.NewFromInt(price), quantity)
	require.NoError(t, err)
	return tkt
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total from the price at creation time", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 5)

		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 2)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCreated, o.Status())
		assert.True(t, o.Total().Equal(decimal.NewFromInt(200)), "total = %s", o.Total())
		assert.Empty(t, o.Vouchers())
	})

	t.Run("rejects quantity above remaining stock", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 1)

		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 2)
		assert.ErrorIs(t, err, order.ErrInsufficientQuantity)
		assert.Nil(t, o)
	})

	t.Run("allows ordering the exact remaining stock", func(t *testing.T) {
		tkt := newTestTicket(t, 50, 3)

		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 3)
		require.NoError(t, err)
		assert.True(t, o.Total().Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 5)

		for _, q := range []int32{0, -1} {
			_, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), q)
			assert.ErrorIs(t, err, order.ErrInvalidQuantity)
		}
	})
}

func TestOrderComplete(t *testing.T) {
	gen := shortcode.NewCryptoGenerator()

	t.Run("mints one distinct voucher per unit", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 5)
		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 2)
		require.NoError(t, err)

		require.NoError(t, o.Complete(gen))

		assert.Equal(t, order.StatusCompleted, o.Status())
		require.Len(t, o.Vouchers(), 2)

		codes := make(map[string]struct{})
		for _, v := range o.Vouchers() {
			assert.Len(t, v.Code(), order.VoucherCodeLength)
			assert.False(t, v.IsPrint())
			assert.Equal(t, o.ID(), v.OrderID())
			codes[v.Code()] = struct{}{}
		}
		assert.Len(t, codes, 2, "voucher codes must be distinct within an order")
	})

	t.Run("rejects double completion without minting again", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 5)
		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 2)
		require.NoError(t, err)
		require.NoError(t, o.Complete(gen))

		err = o.Complete(gen)
		assert.ErrorIs(t, err, order.ErrAlreadyCompleted)
		assert.Len(t, o.Vouchers(), 2)
	})

	t.Run("retries per-order duplicate codes", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 5)
		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 2)
		require.NoError(t, err)

		err = o.Complete(&sequenceGenerator{codes: []string{"AAAAA", "AAAAA", "BBBBB"}})
		require.NoError(t, err)
		assert.NotEqual(t, o.Vouchers()[0].Code(), o.Vouchers()[1].Code())
	})
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  order.Status
		to    order.Status
		errIs error
	}{
		{name: "created to pending", from: order.StatusCreated, to: order.StatusPending},
		{name: "created to cancelled", from: order.StatusCreated, to: order.StatusCancelled},
		{name: "created to completed", from: order.StatusCreated, to: order.StatusCompleted},
		{name: "pending to completed", from: order.StatusPending, to: order.StatusCompleted},
		{name: "pending to cancelled", from: order.StatusPending, to: order.StatusCancelled},
		{name: "pending to pending is redundant", from: order.StatusPending, to: order.StatusPending, errIs: order.ErrAlreadyPending},
		{name: "completed is terminal for completion", from: order.StatusCompleted, to: order.StatusCompleted, errIs: order.ErrAlreadyCompleted},
		{name: "completed is terminal for pending", from: order.StatusCompleted, to: order.StatusPending, errIs: order.ErrAlreadyCompleted},
		{name: "completed is terminal for cancel", from: order.StatusCompleted, to: order.StatusCancelled, errIs: order.ErrAlreadyCompleted},
		{name: "cancelled rejects re-cancel as redundant", from: order.StatusCancelled, to: order.StatusCancelled, errIs: order.ErrAlreadyCancelled},
		{name: "cancelled is terminal for completion", from: order.StatusCancelled, to: order.StatusCompleted, errIs: order.ErrCancelled},
		{name: "cancelled is terminal for pending", from: order.StatusCancelled, to: order.StatusPending, errIs: order.ErrCancelled},
		{name: "nothing transitions back to created", from: order.StatusPending, to: order.StatusCreated, errIs: order.ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := order.CanTransition(tc.from, tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderTransitions(t *testing.T) {
	gen := shortcode.NewCryptoGenerator()

	t.Run("cancelled order stays cancelled", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 5)
		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 1)
		require.NoError(t, err)
		require.NoError(t, o.Cancel())

		assert.ErrorIs(t, o.Cancel(), order.ErrAlreadyCancelled)
		assert.ErrorIs(t, o.MarkPending(), order.ErrCancelled)
		assert.ErrorIs(t, o.Complete(gen), order.ErrCancelled)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("completed order rejects pending and cancel", func(t *testing.T) {
		tkt := newTestTicket(t, 100, 5)
		o, err := order.NewOrder("A1B2C3D4", tkt, uuid.New(), 1)
		require.NoError(t, err)
		require.NoError(t, o.Complete(gen))

		assert.ErrorIs(t, o.MarkPending(), order.ErrAlreadyCompleted)
		assert.ErrorIs(t, o.Cancel(), order.ErrAlreadyCompleted)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})
}

func TestOrderOwnership(t *testing.T) {
	owner := uuid.New()
	tkt := newTestTicket(t, 100, 5)
	o, err := order.NewOrder("A1B2C3D4", tkt, owner, 1)
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(owner))
	assert.False(t, o.IsOwnedBy(uuid.New()))
}

// sequenceGenerator replays a fixed list of codes.
type sequenceGenerator struct {
	codes []string
	next  int
}

func (g *sequenceGenerator) Generate(_ int) (string, error) {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code, nil
}
