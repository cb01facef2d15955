package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrNonPositivePrice = errors.New("price_cents must be greater than zero")
	ErrNegativeStock   = errors.New("stock must be greater than or equal to zero")
	ErrInvalidCurrency = errors.New("currency must have 3 characters")
	ErrNameTooLong     = errors.New("product name is too long (max 255 characters)")
)

const MaxNameLength = 255

type Product struct {
	id          uuid.UUID
	name        string
	description *string
	priceCents  int64
	currency    string
	stock       int32
	isActive    bool
	createdAt   time.Time
}

func NewProduct(name string, description *string, priceCents int64, currency string, stock int32, isActive bool) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if priceCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	currency, err := NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	return &Product{
		id:          uuid.New(),
		name:        name,
		description: description,
		priceCents:  priceCents,
		currency:    currency,
		stock:       stock,
		isActive:    isActive,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	description *string,
	priceCents int64,
	currency string,
	stock int32,
	isActive bool,
	createdAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		priceCents:  priceCents,
		currency:    currency,
		stock:       stock,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

// NormalizeCurrency trims, uppercases and length-checks an ISO 4217 code.
func NormalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return "", ErrInvalidCurrency
	}
	return currency, nil
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() *string { return p.description }
func (p *Product) PriceCents() int64    { return p.priceCents }
func (p *Product) Currency() string     { return p.currency }
func (p *Product) Stock() int32         { return p.stock }
func (p *Product) IsActive() bool       { return p.isActive }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
