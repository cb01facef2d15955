package request

import (
	"ecommerce-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerName  string                   `json:"customer_name" binding:"required"`
	CustomerPhone string                   `json:"customer_phone" binding:"required"`
	Items         []CreateOrderItemRequest `json:"items" binding:"required"`
	PaymentMethod string                   `json:"payment_method" binding:"required,oneof=cash mercadopago"`
}

func (r CreateOrderRequest) ToCommand() commands.CreateOrderCommand {
	items := make([]commands.CreateOrderItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return commands.CreateOrderCommand{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Items:         items,
		PaymentMethod: commands.PaymentMethod(r.PaymentMethod),
	}
}
