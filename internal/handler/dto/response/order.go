package response

import (
	"time"

	"ecommerce-backend/internal/usecase/commands"
	"ecommerce-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateOrderResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	PaymentURL  *string   `json:"payment_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Status        string              `json:"status"`
	TotalCents    int64               `json:"total_cents"`
	Items         []OrderItemResponse `json:"items"`
	Payment       *PaymentResponse    `json:"payment,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type OrderItemResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	Quantity       int32     `json:"quantity"`
	ProductName    string    `json:"product_name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

type PaymentResponse struct {
	ID                uuid.UUID `json:"id"`
	Status            string    `json:"status"`
	AmountCents       int64     `json:"amount_cents"`
	Currency          string    `json:"currency"`
	ExternalPaymentID *string   `json:"external_payment_id,omitempty"`
	InitPoint         *string   `json:"init_point,omitempty"`
	SandboxInitPoint  *string   `json:"sandbox_init_point,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromCreateOrderResult(result *commands.CreateOrderResult) *CreateOrderResponse {
	return &CreateOrderResponse{
		ID:          result.Order.ID(),
		OrderNumber: result.Order.OrderNumber(),
		Status:      string(result.Order.Status()),
		TotalCents:  result.Order.TotalCents(),
		PaymentURL:  result.PaymentURL,
		CreatedAt:   result.Order.CreatedAt(),
	}
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(rm.Items))
	for i, item := range rm.Items {
		items[i] = OrderItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			ProductName:    item.ProductNameSnapshot,
			UnitPriceCents: item.UnitPriceCentsSnapshot,
			LineTotalCents: item.LineTotalCents,
		}
	}

	var payment *PaymentResponse
	if rm.Payment != nil {
		payment = &PaymentResponse{
			ID:                rm.Payment.ID,
			Status:            rm.Payment.Status,
			AmountCents:       rm.Payment.AmountCents,
			Currency:          rm.Payment.Currency,
			ExternalPaymentID: rm.Payment.ExternalPaymentID,
			InitPoint:         rm.Payment.InitPoint,
			SandboxInitPoint:  rm.Payment.SandboxInitPoint,
			CreatedAt:         rm.Payment.CreatedAt,
		}
	}

	return &OrderResponse{
		ID:            rm.ID,
		OrderNumber:   rm.OrderNumber,
		CustomerName:  rm.CustomerName,
		CustomerPhone: rm.CustomerPhone,
		Status:        rm.Status,
		TotalCents:    rm.TotalCents,
		Items:         items,
		Payment:       payment,
		CreatedAt:     rm.CreatedAt,
	}
}
