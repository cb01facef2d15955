package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrEmptyProductName    = errors.New("product_name_snapshot is required")
	ErrNonPositiveUnitPrice = errors.New("unit_price_cents_snapshot must be greater than zero")
)

// Item is an immutable snapshot of a purchased product inside an order. The
// name and unit price are copied at order time so later product edits never
// change historical orders.
type Item struct {
	id                     uuid.UUID
	productID              uuid.UUID
	quantity               int32
	productNameSnapshot    string
	unitPriceCentsSnapshot int64
}

func NewItem(productID uuid.UUID, quantity int32, productNameSnapshot string, unitPriceCentsSnapshot int64) (Item, error) {
	productNameSnapshot = strings.TrimSpace(productNameSnapshot)

	if quantity <= 0 {
		return Item{}, ErrNonPositiveQuantity
	}
	if productNameSnapshot == "" {
		return Item{}, ErrEmptyProductName
	}
	if unitPriceCentsSnapshot <= 0 {
		return Item{}, ErrNonPositiveUnitPrice
	}

	return Item{
		id:                     uuid.New(),
		productID:              productID,
		quantity:               quantity,
		productNameSnapshot:    productNameSnapshot,
		unitPriceCentsSnapshot: unitPriceCentsSnapshot,
	}, nil
}

func ReconstructItem(id, productID uuid.UUID, quantity int32, productNameSnapshot string, unitPriceCentsSnapshot int64) Item {
	return Item{
		id:                     id,
		productID:              productID,
		quantity:               quantity,
		productNameSnapshot:    productNameSnapshot,
		unitPriceCentsSnapshot: unitPriceCentsSnapshot,
	}
}

func (i Item) ID() uuid.UUID                  { return i.id }
func (i Item) ProductID() uuid.UUID           { return i.productID }
func (i Item) Quantity() int32                { return i.quantity }
func (i Item) ProductNameSnapshot() string    { return i.productNameSnapshot }
func (i Item) UnitPriceCentsSnapshot() int64  { return i.unitPriceCentsSnapshot }

// LineTotalCents is derived, never stored on the entity.
func (i Item) LineTotalCents() int64 {
	return int64(i.quantity) * i.unitPriceCentsSnapshot
}
