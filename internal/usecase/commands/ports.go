package commands

import (
	"context"

	"ecommerce-backend/internal/domain/order"
)

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodMercadoPago:
		return true
	default:
		return false
	}
}

// ProviderPreference is the provider-side checkout object for an order. The
// buyer is redirected to InitPoint to pay.
type ProviderPreference struct {
	ProviderPaymentID string
	InitPoint         string
	SandboxInitPoint  *string
}

// PaymentGateway is the port for hosted-checkout providers. Implementations
// must return an error, never a partial result, when the provider response
// lacks a usable identifier or init point.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, ord *order.Order, currency string) (*ProviderPreference, error)
}
