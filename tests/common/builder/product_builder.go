//go:build unit || e2e

package builder

import (
	"time"

	domproduct "ecommerce-backend/internal/domain/product"
	reqdto "ecommerce-backend/internal/handler/dto/request"
	"ecommerce-backend/internal/usecase/commands"
	"ecommerce-backend/internal/usecase/queries"
	"ecommerce-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID          uuid.UUID
	Name        string
	Description *string
	PriceCents  int64
	Currency    string
	Stock       int32
	IsActive    bool
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	description := "Freshly baked every morning"
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "Concha",
		Description: &description,
		PriceCents:  2500,
		Currency:    "MXN",
		Stock:       10,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(b.Name, b.Description, b.PriceCents, b.Currency, b.Stock, b.IsActive)
}

func (b *ProductBuilder) BuildReconstructed() *domproduct.Product {
	return domproduct.ReconstructProduct(b.ID, b.Name, b.Description, b.PriceCents, b.Currency, b.Stock, b.IsActive, b.CreatedAt)
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	isActive := b.IsActive
	return reqdto.CreateProductRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		Stock:       b.Stock,
		IsActive:    &isActive,
	}
}

func (b *ProductBuilder) BuildCreateCommand() commands.CreateProductCommand {
	return commands.CreateProductCommand{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		Stock:       b.Stock,
		IsActive:    b.IsActive,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		Stock:       b.Stock,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ProductBuilder) BuildSnapshot() shared.ActiveProductSnapshot {
	return shared.ActiveProductSnapshot{
		ID:         b.ID,
		Name:       b.Name,
		PriceCents: b.PriceCents,
		Currency:   b.Currency,
	}
}
