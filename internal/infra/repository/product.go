package repository

import (
	"context"

	"ecommerce-backend/internal/domain/product"
	"ecommerce-backend/internal/infra"
	"ecommerce-backend/internal/infra/db"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const insertProductSQL = `
INSERT INTO products (id, name, description, price_cents, currency, stock, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *ProductRepository) Create(ctx context.Context, prod *product.Product) error {
	_, err := r.db.Exec(ctx, insertProductSQL,
		prod.ID(),
		prod.Name(),
		prod.Description(),
		prod.PriceCents(),
		prod.Currency(),
		prod.Stock(),
		prod.IsActive(),
		prod.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}
