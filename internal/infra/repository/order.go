package repository

import (
	"context"

	"ecommerce-backend/internal/domain/order"
	"ecommerce-backend/internal/infra"
	"ecommerce-backend/internal/infra/db"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const insertOrderSQL = `
INSERT INTO orders (id, order_number, customer_name, customer_phone, status, total_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const insertOrderItemSQL = `
INSERT INTO order_items (id, order_id, product_id, quantity, product_name, unit_price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
`

// Create persists the order row and one row per item. It must run inside a
// transaction so the aggregate lands atomically.
func (r *OrderRepository) Create(ctx context.Context, ord *order.Order) error {
	_, err := r.db.Exec(ctx, insertOrderSQL,
		ord.ID(),
		ord.OrderNumber(),
		ord.CustomerName(),
		ord.CustomerPhone(),
		string(ord.Status()),
		ord.TotalCents(),
		ord.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, item := range ord.Items() {
		_, err := r.db.Exec(ctx, insertOrderItemSQL,
			item.ID(),
			ord.ID(),
			item.ProductID(),
			item.Quantity(),
			item.ProductNameSnapshot(),
			item.UnitPriceCentsSnapshot(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return nil
}
