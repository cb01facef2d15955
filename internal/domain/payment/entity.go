package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount   = errors.New("amount_cents must be greater than zero")
	ErrInvalidCurrency     = errors.New("currency must have 3 characters")
	ErrInvalidStatus       = errors.New("invalid payment status")
	ErrMissingProviderData = errors.New("provider result is missing id or init_point")
	ErrNotTransitionable   = errors.New("payment already left the created state")
)

// Payment is the single payment attached to one order. It starts in
// "created" and moves to "pending" once a hosted-checkout preference exists.
type Payment struct {
	id                uuid.UUID
	orderID           uuid.UUID
	amountCents       int64
	currency          string
	status            Status
	externalPaymentID *string
	initPoint         *string
	sandboxInitPoint  *string
	createdAt         time.Time
}

// ProviderResult carries the fields returned by a successful preference
// creation at the payment provider.
type ProviderResult struct {
	ProviderPaymentID string
	InitPoint         string
	SandboxInitPoint  *string
}

func NewPayment(orderID uuid.UUID, amountCents int64, currency string) (*Payment, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &Payment{
		id:          uuid.New(),
		orderID:     orderID,
		amountCents: amountCents,
		currency:    currency,
		status:      StatusCreated,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructPayment(
	id, orderID uuid.UUID,
	amountCents int64,
	currency string,
	status Status,
	externalPaymentID, initPoint, sandboxInitPoint *string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:                id,
		orderID:           orderID,
		amountCents:       amountCents,
		currency:          currency,
		status:            status,
		externalPaymentID: externalPaymentID,
		initPoint:         initPoint,
		sandboxInitPoint:  sandboxInitPoint,
		createdAt:         createdAt,
	}
}

// ApplyProviderResult moves a freshly created payment to pending and records
// the provider identifiers. It is the only in-process transition; settlement
// states arrive via webhooks handled elsewhere.
func (p *Payment) ApplyProviderResult(res ProviderResult) error {
	if p.status != StatusCreated {
		return ErrNotTransitionable
	}
	if res.ProviderPaymentID == "" || res.InitPoint == "" {
		return ErrMissingProviderData
	}

	providerID := res.ProviderPaymentID
	initPoint := res.InitPoint

	p.status = StatusPending
	p.externalPaymentID = &providerID
	p.initPoint = &initPoint
	p.sandboxInitPoint = res.SandboxInitPoint
	return nil
}

func (p *Payment) ID() uuid.UUID              { return p.id }
func (p *Payment) OrderID() uuid.UUID         { return p.orderID }
func (p *Payment) AmountCents() int64         { return p.amountCents }
func (p *Payment) Currency() string           { return p.currency }
func (p *Payment) Status() Status             { return p.status }
func (p *Payment) ExternalPaymentID() *string { return p.externalPaymentID }
func (p *Payment) InitPoint() *string         { return p.initPoint }
func (p *Payment) SandboxInitPoint() *string  { return p.sandboxInitPoint }
func (p *Payment) CreatedAt() time.Time       { return p.createdAt }
