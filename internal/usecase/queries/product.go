package queries

import (
	"context"
	"time"

	"ecommerce-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Stock       int32     `json:"stock"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductReadStore interface {
	ListActive(ctx context.Context) ([]*ProductView, error)
}

type ProductQueries interface {
	ListActive(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

// ListActive returns active products only, most recently created first.
func (q *productQueriesImpl) ListActive(ctx context.Context) ([]*ProductView, error) {
	products, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active products")
	}
	return products, nil
}
