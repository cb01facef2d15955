//go:build unit || e2e

package builder

import (
	"time"

	reqdto "ecommerce-backend/internal/handler/dto/request"
	"ecommerce-backend/internal/usecase/commands"
	"ecommerce-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	CustomerName  string
	CustomerPhone string
	Items         []OrderItemBuilder
	PaymentMethod string
}

type OrderItemBuilder struct {
	ProductID uuid.UUID
	Quantity  int32
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CustomerName:  "Ana López",
		CustomerPhone: "+52 555 123 4567",
		Items: []OrderItemBuilder{
			{ProductID: uuid.New(), Quantity: 2},
		},
		PaymentMethod: "cash",
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.CreateOrderItemRequest, len(b.Items))
	for i, item := range b.Items {
		items[i] = reqdto.CreateOrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return reqdto.CreateOrderRequest{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Items:         items,
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *OrderBuilder) BuildCreateCommand() commands.CreateOrderCommand {
	items := make([]commands.CreateOrderItemInput, len(b.Items))
	for i, item := range b.Items {
		items[i] = commands.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return commands.CreateOrderCommand{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Items:         items,
		PaymentMethod: commands.PaymentMethod(b.PaymentMethod),
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	items := make([]queries.OrderItemView, len(b.Items))
	var total int64
	for i, item := range b.Items {
		lineTotal := int64(item.Quantity) * 2500
		items[i] = queries.OrderItemView{
			ID:                     uuid.New(),
			ProductID:              item.ProductID,
			Quantity:               item.Quantity,
			ProductNameSnapshot:    "Concha",
			UnitPriceCentsSnapshot: 2500,
			LineTotalCents:         lineTotal,
		}
		total += lineTotal
	}
	return &queries.OrderView{
		ID:            uuid.New(),
		OrderNumber:   "ORD-20260830120000-DEADBEEF",
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Status:        "pending_payment",
		TotalCents:    total,
		Items:         items,
		CreatedAt:     time.Now(),
	}
}
