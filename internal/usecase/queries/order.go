package queries

import (
	"context"
	"time"

	"ecommerce-backend/internal/infra"
	"ecommerce-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Status        string          `json:"status"`
	TotalCents    int64           `json:"total_cents"`
	Items         []OrderItemView `json:"items"`
	Payment       *PaymentView    `json:"payment,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItemView struct {
	ID                     uuid.UUID `json:"id"`
	ProductID              uuid.UUID `json:"product_id"`
	Quantity               int32     `json:"quantity"`
	ProductNameSnapshot    string    `json:"product_name_snapshot"`
	UnitPriceCentsSnapshot int64     `json:"unit_price_cents_snapshot"`
	LineTotalCents         int64     `json:"line_total_cents"`
}

type PaymentView struct {
	ID                uuid.UUID `json:"id"`
	Status            string    `json:"status"`
	AmountCents       int64     `json:"amount_cents"`
	Currency          string    `json:"currency"`
	ExternalPaymentID *string   `json:"external_payment_id,omitempty"`
	InitPoint         *string   `json:"init_point,omitempty"`
	SandboxInitPoint  *string   `json:"sandbox_init_point,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type OrderReadStore interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*OrderView, error)
}

type OrderQueries interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderView, error) {
	view, err := q.store.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order by order number")
	}
	return view, nil
}
