package repository

import (
	"context"

	"ecommerce-backend/internal/domain/payment"
	"ecommerce-backend/internal/infra"
	"ecommerce-backend/internal/infra/db"
	"ecommerce-backend/internal/pkg/errs"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(db db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const insertPaymentSQL = `
INSERT INTO payments (id, order_id, amount_cents, currency, status, external_payment_id, init_point, sandbox_init_point, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *PaymentRepository) Create(ctx context.Context, pay *payment.Payment) error {
	_, err := r.db.Exec(ctx, insertPaymentSQL,
		pay.ID(),
		pay.OrderID(),
		pay.AmountCents(),
		pay.Currency(),
		string(pay.Status()),
		pay.ExternalPaymentID(),
		pay.InitPoint(),
		pay.SandboxInitPoint(),
		pay.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

const updateProviderResultSQL = `
UPDATE payments
SET status = $2, external_payment_id = $3, init_point = $4, sandbox_init_point = $5
WHERE id = $1
`

// UpdateProviderResult stores the provider identifiers captured after the
// checkout preference was created.
func (r *PaymentRepository) UpdateProviderResult(ctx context.Context, pay *payment.Payment) error {
	tag, err := r.db.Exec(ctx, updateProviderResultSQL,
		pay.ID(),
		string(pay.Status()),
		pay.ExternalPaymentID(),
		pay.InitPoint(),
		pay.SandboxInitPoint(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment provider result", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", errs.New("no rows updated"), infra.KindNotFound)
	}
	return nil
}
