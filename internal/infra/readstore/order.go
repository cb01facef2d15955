package readstore

import (
	"context"
	"errors"

	"ecommerce-backend/internal/infra"
	"ecommerce-backend/internal/infra/db"
	"ecommerce-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const findOrderByNumberSQL = `
SELECT id, order_number, customer_name, customer_phone, status, total_cents, created_at
FROM orders
WHERE order_number = $1
`

const findOrderItemsSQL = `
SELECT id, product_id, quantity, product_name, unit_price_cents
FROM order_items
WHERE order_id = $1
ORDER BY id
`

const findPaymentByOrderSQL = `
SELECT id, status, amount_cents, currency, external_payment_id, init_point, sandbox_init_point, created_at
FROM payments
WHERE order_id = $1
`

func (r *OrderReadStore) FindByOrderNumber(ctx context.Context, orderNumber string) (*queries.OrderView, error) {
	var view queries.OrderView
	err := r.db.QueryRow(ctx, findOrderByNumberSQL, orderNumber).Scan(
		&view.ID,
		&view.OrderNumber,
		&view.CustomerName,
		&view.CustomerPhone,
		&view.Status,
		&view.TotalCents,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by order number", err)
	}

	items, err := r.findItems(ctx, &view)
	if err != nil {
		return nil, err
	}
	view.Items = items

	payment, err := r.findPayment(ctx, &view)
	if err != nil {
		return nil, err
	}
	view.Payment = payment

	return &view, nil
}

func (r *OrderReadStore) findItems(ctx context.Context, view *queries.OrderView) ([]queries.OrderItemView, error) {
	rows, err := r.db.Query(ctx, findOrderItemsSQL, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.ProductNameSnapshot, &item.UnitPriceCentsSnapshot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		item.LineTotalCents = item.UnitPriceCentsSnapshot * int64(item.Quantity)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item rows", err)
	}

	return items, nil
}

// A payment row may not exist yet; the view simply omits it then.
func (r *OrderReadStore) findPayment(ctx context.Context, view *queries.OrderView) (*queries.PaymentView, error) {
	var pay queries.PaymentView
	err := r.db.QueryRow(ctx, findPaymentByOrderSQL, view.ID).Scan(
		&pay.ID,
		&pay.Status,
		&pay.AmountCents,
		&pay.Currency,
		&pay.ExternalPaymentID,
		&pay.InitPoint,
		&pay.SandboxInitPoint,
		&pay.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find payment for order", err)
	}
	return &pay, nil
}
