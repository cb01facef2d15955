package shared

import (
	"context"

	"ecommerce-backend/internal/domain/order"
	"ecommerce-backend/internal/domain/payment"
	"ecommerce-backend/internal/domain/product"
	"ecommerce-backend/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes a transaction around a function: commit on nil return,
// rollback otherwise. Nothing outside the closure ever sees an open
// transaction, which keeps network calls out of transactional scope.
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Payments() PaymentRepository
	Products() ProductRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ActiveProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ActiveProductSnapshot, error)
}

type OrderRepository interface {
	// Create persists the order row before its item rows so the items always
	// reference an existing parent.
	Create(ctx context.Context, ord *order.Order) error
}

type PaymentRepository interface {
	Create(ctx context.Context, pay *payment.Payment) error
	UpdateProviderResult(ctx context.Context, pay *payment.Payment) error
}

type ProductRepository interface {
	Create(ctx context.Context, prod *product.Product) error
}
