//go:build unit

package commands

import (
	"context"
	"fmt"
	"testing"

	"acara-api/internal/domain/order"
	"acara-api/internal/domain/ticket"
	"acara-api/internal/domain/user"
	reqdto "acara-api/internal/handler/dto/request"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/usecase/queries"
	"acara-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUoW struct {
	tx    *fakeTx
	reads *fakeReads
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type fakeTx struct {
	orders  *fakeOrderRepo
	tickets *fakeTicketRepo
	reads   *fakeReads
}

func (t *fakeTx) Orders() shared.OrderRepository       { return t.orders }
func (t *fakeTx) Tickets() shared.TicketRepository     { return t.tickets }
func (t *fakeTx) Events() shared.EventRepository       { return nil }
func (t *fakeTx) Banners() shared.BannerRepository     { return nil }
func (t *fakeTx) Categories() shared.CategoryRepository { return nil }
func (t *fakeTx) Users() shared.UserRepository         { return nil }
func (t *fakeTx) Reads() shared.CommandReads           { return t.reads }
func (t *fakeTx) DB() sqlc.DBTX                        { return nil }

type fakeReads struct {
	ticket   *shared.TicketSnapshot
	ticketErr error
	order    *shared.OrderSnapshot
	orderErr error
}

func (r *fakeReads) TicketByID(context.Context, uuid.UUID) (*shared.TicketSnapshot, error) {
	return r.ticket, r.ticketErr
}

func (r *fakeReads) OrderByNumber(context.Context, string) (*shared.OrderSnapshot, error) {
	return r.order, r.orderErr
}

func (r *fakeReads) UserByIdentifier(context.Context, string) (*shared.UserSnapshot, error) {
	return nil, nil
}

func (r *fakeReads) UserByID(context.Context, uuid.UUID) (*shared.UserSnapshot, error) {
	return nil, nil
}

func (r *fakeReads) EventByID(context.Context, uuid.UUID) (*shared.EventSnapshot, error) {
	return nil, nil
}

type fakeOrderRepo struct {
	created          *order.Order
	completeCalls    int
	completeAffected int64
	completeFrom     order.Status
	statusCalls      int
	statusAffected   int64
	vouchers         []order.Voucher
	deleteAffected   int64
}

func (r *fakeOrderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) (uuid.UUID, error) {
	r.created = o
	return o.ID(), nil
}

func (r *fakeOrderRepo) Complete(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, from order.Status) (int64, error) {
	r.completeCalls++
	r.completeFrom = from
	return r.completeAffected, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, _, _ order.Status) (int64, error) {
	r.statusCalls++
	return r.statusAffected, nil
}

func (r *fakeOrderRepo) InsertVouchers(_ context.Context, _ sqlc.DBTX, vouchers []order.Voucher) error {
	r.vouchers = vouchers
	return nil
}

func (r *fakeOrderRepo) Delete(context.Context, sqlc.DBTX, string) (int64, error) {
	return r.deleteAffected, nil
}

type fakeTicketRepo struct {
	decrementCalls    int
	decrementAffected int64
	decrementedQty    int32
}

func (r *fakeTicketRepo) Create(context.Context, sqlc.DBTX, *ticket.Ticket) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (r *fakeTicketRepo) Update(context.Context, sqlc.DBTX, *ticket.Ticket) (int64, error) {
	return 0, nil
}

func (r *fakeTicketRepo) Delete(context.Context, sqlc.DBTX, uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeTicketRepo) DecrementQuantity(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, quantity int32) (int64, error) {
	r.decrementCalls++
	r.decrementedQty = quantity
	return r.decrementAffected, nil
}

type stubOrderViews struct {
	view *queries.OrderView
}

func (s *stubOrderViews) FindByNumber(context.Context, string) (*queries.OrderView, error) {
	return s.view, nil
}

func (s *stubOrderViews) FindAll(context.Context, string, int32, int32) ([]*queries.OrderListItem, error) {
	return nil, nil
}

func (s *stubOrderViews) CountAll(context.Context, string) (int64, error) { return 0, nil }

func (s *stubOrderViews) FindByUserID(context.Context, uuid.UUID, int32, int32) ([]*queries.OrderListItem, error) {
	return nil, nil
}

func (s *stubOrderViews) CountByUserID(context.Context, uuid.UUID) (int64, error) { return 0, nil }

type seqGen struct {
	n int
}

func (g *seqGen) Generate(length int) (string, error) {
	g.n++
	return fmt.Sprintf("%0*d", length, g.n), nil
}

func newFixture(reads *fakeReads) (*fakeUoW, *fakeOrderRepo, *fakeTicketRepo) {
	orders := &fakeOrderRepo{completeAffected: 1, statusAffected: 1, deleteAffected: 1}
	tickets := &fakeTicketRepo{decrementAffected: 1}
	uow := &fakeUoW{
		tx:    &fakeTx{orders: orders, tickets: tickets, reads: reads},
		reads: reads,
	}
	return uow, orders, tickets
}

func ticketSnapshot(quantity int32) *shared.TicketSnapshot {
	return &shared.TicketSnapshot{
		ID:       uuid.New(),
		EventID:  uuid.New(),
		Name:     "Early Bird",
		Price:    decimal.NewFromInt(150000),
		Quantity: quantity,
	}
}

func orderSnapshot(owner uuid.UUID, status order.Status, quantity int32) *shared.OrderSnapshot {
	return &shared.OrderSnapshot{
		ID:          uuid.New(),
		OrderNumber: "AB12CD34",
		TicketID:    uuid.New(),
		CreatedBy:   owner,
		Quantity:    quantity,
		Total:       decimal.NewFromInt(300000),
		Status:      status,
	}
}

func TestOrderCommands_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("success fixes the total at creation", func(t *testing.T) {
		reads := &fakeReads{ticket: ticketSnapshot(10)}
		uow, orders, _ := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{view: &queries.OrderView{}}, &seqGen{})

		_, err := cmd.Create(context.Background(), reqdto.CreateOrderRequest{
			TicketID: reads.ticket.ID,
			Quantity: 2,
		}, userID)

		require.NoError(t, err)
		require.NotNil(t, orders.created)
		assert.Equal(t, order.StatusCreated, orders.created.Status())
		assert.True(t, decimal.NewFromInt(300000).Equal(orders.created.Total()))
		assert.Equal(t, userID, orders.created.CreatedBy())
	})

	t.Run("insufficient stock rejects before any write", func(t *testing.T) {
		reads := &fakeReads{ticket: ticketSnapshot(1)}
		uow, orders, _ := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		_, err := cmd.Create(context.Background(), reqdto.CreateOrderRequest{
			TicketID: reads.ticket.ID,
			Quantity: 2,
		}, userID)

		assert.ErrorIs(t, err, ErrInsufficientQuantity)
		assert.Nil(t, orders.created)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		reads := &fakeReads{ticketErr: infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)}
		uow, _, _ := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		_, err := cmd.Create(context.Background(), reqdto.CreateOrderRequest{
			TicketID: uuid.New(),
			Quantity: 1,
		}, userID)

		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}

func TestOrderCommands_Complete(t *testing.T) {
	owner := uuid.New()

	t.Run("success decrements stock and mints one voucher per unit", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusCreated, 3)
		reads := &fakeReads{order: snap}
		uow, orders, tickets := newFixture(reads)
		view := &queries.OrderView{Vouchers: make([]queries.VoucherView, 3)}
		cmd := NewOrderCommands(uow, &stubOrderViews{view: view}, &seqGen{})

		got, err := cmd.Complete(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		require.NoError(t, err)
		assert.Equal(t, view, got)
		assert.Equal(t, 1, tickets.decrementCalls)
		assert.Equal(t, int32(3), tickets.decrementedQty)
		assert.Equal(t, 1, orders.completeCalls)
		assert.Len(t, orders.vouchers, 3)
		for _, v := range orders.vouchers {
			assert.Equal(t, snap.ID, v.OrderID())
			assert.False(t, v.IsPrint())
		}
	})

	t.Run("lost stock race rolls back without flipping status", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusCreated, 2)
		reads := &fakeReads{order: snap}
		uow, orders, tickets := newFixture(reads)
		tickets.decrementAffected = 0
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		_, err := cmd.Complete(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		assert.ErrorIs(t, err, ErrInsufficientQuantity)
		assert.Zero(t, orders.completeCalls)
		assert.Empty(t, orders.vouchers)
	})

	t.Run("already completed order is rejected before touching stock", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusCompleted, 2)
		reads := &fakeReads{order: snap}
		uow, _, tickets := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		_, err := cmd.Complete(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		assert.ErrorIs(t, err, ErrOrderCompleted)
		assert.Zero(t, tickets.decrementCalls)
	})

	t.Run("status flip only fires from the status that was read", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusPending, 2)
		reads := &fakeReads{order: snap}
		uow, orders, _ := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{view: &queries.OrderView{}}, &seqGen{})

		_, err := cmd.Complete(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, orders.completeFrom)
	})

	t.Run("order moved between read and flip issues no vouchers", func(t *testing.T) {
		// A cancel committing after the snapshot read makes the conditional
		// flip a no-op; the cancelled order must stay cancelled.
		snap := orderSnapshot(owner, order.StatusCreated, 1)
		reads := &fakeReads{order: snap}
		uow, orders, _ := newFixture(reads)
		orders.completeAffected = 0
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		_, err := cmd.Complete(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		assert.ErrorIs(t, err, ErrOrderStateChanged)
		assert.Empty(t, orders.vouchers)
	})

	t.Run("another member's order reads as not found", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusCreated, 1)
		reads := &fakeReads{order: snap}
		uow, _, tickets := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		_, err := cmd.Complete(context.Background(), snap.OrderNumber, uuid.New(), user.RoleMember)

		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Zero(t, tickets.decrementCalls)
	})

	t.Run("admin may complete any order", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusPending, 1)
		reads := &fakeReads{order: snap}
		uow, orders, _ := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{view: &queries.OrderView{}}, &seqGen{})

		_, err := cmd.Complete(context.Background(), snap.OrderNumber, uuid.New(), user.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, 1, orders.completeCalls)
	})
}

func TestOrderCommands_Transitions(t *testing.T) {
	owner := uuid.New()

	t.Run("cancel never touches inventory", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusPending, 2)
		reads := &fakeReads{order: snap}
		uow, orders, tickets := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		err := cmd.Cancel(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		require.NoError(t, err)
		assert.Equal(t, 1, orders.statusCalls)
		assert.Zero(t, tickets.decrementCalls)
	})

	t.Run("cancelling a completed order fails", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusCompleted, 1)
		reads := &fakeReads{order: snap}
		uow, orders, _ := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		err := cmd.Cancel(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		assert.ErrorIs(t, err, ErrOrderCompleted)
		assert.Zero(t, orders.statusCalls)
	})

	t.Run("re-requesting pending is redundant", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusPending, 1)
		reads := &fakeReads{order: snap}
		uow, _, _ := newFixture(reads)
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		err := cmd.MarkPending(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		assert.ErrorIs(t, err, ErrOrderAlreadyPending)
	})

	t.Run("concurrent state change surfaces a conflict", func(t *testing.T) {
		snap := orderSnapshot(owner, order.StatusCreated, 1)
		reads := &fakeReads{order: snap}
		uow, orders, _ := newFixture(reads)
		orders.statusAffected = 0
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		err := cmd.Cancel(context.Background(), snap.OrderNumber, owner, user.RoleMember)

		assert.ErrorIs(t, err, ErrOrderStateChanged)
	})
}

func TestOrderCommands_Remove(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		uow, orders, _ := newFixture(&fakeReads{})
		orders.deleteAffected = 0
		cmd := NewOrderCommands(uow, &stubOrderViews{}, &seqGen{})

		err := cmd.Remove(context.Background(), "NOPE1234")

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
