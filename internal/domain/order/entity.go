package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrderNumber   = errors.New("order_number is required")
	ErrEmptyCustomerName  = errors.New("customer_name is required")
	ErrEmptyCustomerPhone = errors.New("customer_phone is required")
	ErrNoItems            = errors.New("order must have at least one item")
	ErrInvalidStatus      = errors.New("invalid order status")
)

// Order is the aggregate root: it owns its items and the total is frozen at
// construction as the sum of the item line totals.
type Order struct {
	id            uuid.UUID
	orderNumber   string
	customerName  string
	customerPhone string
	items         []Item
	status        Status
	totalCents    int64
	createdAt     time.Time
}

func NewOrder(orderNumber, customerName, customerPhone string, items []Item, status Status) (*Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	customerName = strings.TrimSpace(customerName)
	customerPhone = strings.TrimSpace(customerPhone)

	if orderNumber == "" {
		return nil, ErrEmptyOrderNumber
	}
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if customerPhone == "" {
		return nil, ErrEmptyCustomerPhone
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var totalCents int64
	for _, item := range items {
		totalCents += item.LineTotalCents()
	}

	return &Order{
		id:            uuid.New(),
		orderNumber:   orderNumber,
		customerName:  customerName,
		customerPhone: customerPhone,
		items:         items,
		status:        status,
		totalCents:    totalCents,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	orderNumber, customerName, customerPhone string,
	items []Item,
	status Status,
	totalCents int64,
	createdAt time.Time,
) *Order {
	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		customerName:  customerName,
		customerPhone: customerPhone,
		items:         items,
		status:        status,
		totalCents:    totalCents,
		createdAt:     createdAt,
	}
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) OrderNumber() string   { return o.orderNumber }
func (o *Order) CustomerName() string  { return o.customerName }
func (o *Order) CustomerPhone() string { return o.customerPhone }
func (o *Order) Status() Status        { return o.status }
func (o *Order) TotalCents() int64     { return o.totalCents }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }

// Items returns a copy so callers cannot mutate the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}
