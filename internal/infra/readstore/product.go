package readstore

import (
	"context"
	"time"

	"ecommerce-backend/internal/infra"
	"ecommerce-backend/internal/infra/db"
	"ecommerce-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductRow struct {
	ID          uuid.UUID
	Name        string
	Description *string
	PriceCents  int64
	Currency    string
	Stock       int32
	IsActive    bool
	CreatedAt   time.Time
}

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

const activeProductsByIDsSQL = `
SELECT id, name, description, price_cents, currency, stock, is_active, created_at
FROM products
WHERE id = ANY($1) AND is_active
`

// ActiveByIDs returns only the matching active rows; callers decide what a
// missing id means.
func (r *ProductReadStore) ActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]ProductRow, error) {
	rows, err := r.db.Query(ctx, activeProductsByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active products by ids", err)
	}
	defer rows.Close()

	var result []ProductRow
	for rows.Next() {
		var row ProductRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.PriceCents, &row.Currency, &row.Stock, &row.IsActive, &row.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}

	return result, nil
}

const listActiveProductsSQL = `
SELECT id, name, description, price_cents, currency, stock, is_active, created_at
FROM products
WHERE is_active
ORDER BY created_at DESC
`

func (r *ProductReadStore) ListActive(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, listActiveProductsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active products", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		var row ProductRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.PriceCents, &row.Currency, &row.Stock, &row.IsActive, &row.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		view, err := toProductView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}

	return result, nil
}

func toProductView(row ProductRow) (*queries.ProductView, error) {
	var view queries.ProductView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map product row", err)
	}
	return &view, nil
}
