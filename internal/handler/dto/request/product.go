package request

import (
	"strings"

	"ecommerce-backend/internal/usecase/commands"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required,len=3"`
	Stock       int32   `json:"stock" binding:"gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r CreateProductRequest) ToCommand() commands.CreateProductCommand {
	var description *string
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		if trimmed != "" {
			description = &trimmed
		}
	}
	// New entries default to active; is_active=false creates a draft that
	// stays out of the public listing.
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return commands.CreateProductCommand{
		Name:        r.Name,
		Description: description,
		PriceCents:  r.PriceCents,
		Currency:    r.Currency,
		Stock:       r.Stock,
		IsActive:    isActive,
	}
}
