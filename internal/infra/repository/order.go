package repository

import (
	"context"

	"acara-api/internal/domain/order"
	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	queries *sqlc.Queries
}

func NewOrderRepository(queries *sqlc.Queries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, db sqlc.DBTX, o *order.Order) (uuid.UUID, error) {
	params := sqlc.CreateOrderParams{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		TicketID:    o.TicketID(),
		CreatedBy:   o.CreatedBy(),
		Quantity:    o.Quantity(),
		Total:       pgconv.NumericFromDecimal(o.Total()),
		Status:      o.Status().String(),
	}

	id, err := r.queries.CreateOrder(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	return id, nil
}

func (r *OrderRepository) Complete(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, from order.Status) (int64, error) {
	affected, err := r.queries.CompleteOrder(ctx, db, sqlc.CompleteOrderParams{
		ID:         orderID,
		FromStatus: from.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete order", err)
	}
	return affected, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, from, to order.Status) (int64, error) {
	affected, err := r.queries.UpdateOrderStatus(ctx, db, sqlc.UpdateOrderStatusParams{
		ID:         orderID,
		Status:     to.String(),
		FromStatus: from.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update order status", err)
	}
	return affected, nil
}

func (r *OrderRepository) InsertVouchers(ctx context.Context, db sqlc.DBTX, vouchers []order.Voucher) error {
	for _, v := range vouchers {
		err := r.queries.InsertVoucher(ctx, db, sqlc.InsertVoucherParams{
			ID:      v.ID(),
			OrderID: v.OrderID(),
			Code:    v.Code(),
			IsPrint: v.IsPrint(),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to insert voucher", err)
		}
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, db sqlc.DBTX, orderNumber string) (int64, error) {
	affected, err := r.queries.DeleteOrder(ctx, db, orderNumber)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete order", err)
	}
	return affected, nil
}
