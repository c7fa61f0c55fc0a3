package readstore

import (
	"context"

	"acara-api/internal/infra"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/pkg/pgconv"
	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	queries *sqlc.Queries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries *sqlc.Queries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByNumber(ctx context.Context, orderNumber string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderView(ctx, r.db, orderNumber)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by number", err)
	}

	voucherRows, err := r.queries.ListVouchersByOrder(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order vouchers", err)
	}

	return rowToOrderView(row, voucherRows), nil
}

func rowToOrderView(row sqlc.GetOrderViewRow, voucherRows []sqlc.Voucher) *queries.OrderView {
	vouchers := make([]queries.VoucherView, len(voucherRows))
	for i, v := range voucherRows {
		vouchers[i] = queries.VoucherView{
			ID:        v.ID,
			Code:      v.Code,
			IsPrint:   v.IsPrint,
			CreatedAt: pgconv.TimeFromPgtype(v.CreatedAt),
		}
	}

	return &queries.OrderView{
		ID:          row.ID,
		OrderNumber: row.OrderNumber,
		TicketID:    row.TicketID,
		TicketName:  row.TicketName,
		EventID:     row.EventID,
		EventName:   row.EventName,
		CreatedBy:   row.CreatedBy,
		UserEmail:   row.UserEmail,
		Quantity:    row.Quantity,
		Total:       pgconv.DecimalFromNumeric(row.Total),
		Status:      row.Status,
		Vouchers:    vouchers,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func (r *OrderReadStore) FindAll(ctx context.Context, search string, limit, offset int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrderViews(ctx, r.db, sqlc.ListOrderViewsParams{
		Search: search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	result := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.OrderListItem{
			ID:          row.ID,
			OrderNumber: row.OrderNumber,
			TicketName:  row.TicketName,
			EventName:   row.EventName,
			UserEmail:   row.UserEmail,
			Quantity:    row.Quantity,
			Total:       pgconv.DecimalFromNumeric(row.Total),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *OrderReadStore) CountAll(ctx context.Context, search string) (int64, error) {
	count, err := r.queries.CountOrders(ctx, r.db, search)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count orders", err)
	}
	return count, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrderViewsByUser(ctx, r.db, sqlc.ListOrderViewsByUserParams{
		CreatedBy: userID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}

	result := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.OrderListItem{
			ID:          row.ID,
			OrderNumber: row.OrderNumber,
			TicketName:  row.TicketName,
			EventName:   row.EventName,
			UserEmail:   row.UserEmail,
			Quantity:    row.Quantity,
			Total:       pgconv.DecimalFromNumeric(row.Total),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *OrderReadStore) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := r.queries.CountOrdersByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count orders by user", err)
	}
	return count, nil
}
