package response

import (
	"time"

	"ecommerce-backend/internal/domain/product"
	"ecommerce-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Stock       int32     `json:"stock"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		PriceCents:  p.PriceCents(),
		Currency:    p.Currency(),
		Stock:       p.Stock(),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
	}
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		PriceCents:  rm.PriceCents,
		Currency:    rm.Currency,
		Stock:       rm.Stock,
		IsActive:    rm.IsActive,
		CreatedAt:   rm.CreatedAt,
	}
}
