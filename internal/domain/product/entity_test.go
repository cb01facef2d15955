//go:build unit

package product_test

import (
	"strings"
	"testing"

	"ecommerce-backend/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	description := "Freshly baked every morning"

	testCases := []struct {
		name        string
		productName string
		description *string
		priceCents  int64
		currency    string
		stock       int32
		expectedErr error
	}{
		{
			name:        "success: valid product",
			productName: "Concha",
			description: &description,
			priceCents:  2500,
			currency:    "MXN",
			stock:       10,
		},
		{
			name:        "success: nil description and zero stock",
			productName: "Bolillo",
			priceCents:  800,
			currency:    "MXN",
			stock:       0,
		},
		{
			name:        "success: lowercase currency is normalized",
			productName: "Pan dulce",
			priceCents:  1200,
			currency:    "mxn",
			stock:       5,
		},
		{
			name:        "error: empty name",
			productName: "   ",
			priceCents:  2500,
			currency:    "MXN",
			stock:       10,
			expectedErr: product.ErrEmptyName,
		},
		{
			name:        "error: name over 255 chars",
			productName: strings.Repeat("a", 256),
			priceCents:  2500,
			currency:    "MXN",
			stock:       10,
			expectedErr: product.ErrNameTooLong,
		},
		{
			name:        "error: zero price",
			productName: "Concha",
			priceCents:  0,
			currency:    "MXN",
			stock:       10,
			expectedErr: product.ErrNonPositivePrice,
		},
		{
			name:        "error: negative price",
			productName: "Concha",
			priceCents:  -100,
			currency:    "MXN",
			stock:       10,
			expectedErr: product.ErrNonPositivePrice,
		},
		{
			name:        "error: negative stock",
			productName: "Concha",
			priceCents:  2500,
			currency:    "MXN",
			stock:       -1,
			expectedErr: product.ErrNegativeStock,
		},
		{
			name:        "error: currency not 3 chars",
			productName: "Concha",
			priceCents:  2500,
			currency:    "MXNN",
			stock:       10,
			expectedErr: product.ErrInvalidCurrency,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prod, err := product.NewProduct(tc.productName, tc.description, tc.priceCents, tc.currency, tc.stock, true)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, prod)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, prod)
			assert.Equal(t, strings.TrimSpace(tc.productName), prod.Name())
			assert.Equal(t, tc.priceCents, prod.PriceCents())
			assert.Equal(t, strings.ToUpper(tc.currency), prod.Currency())
			assert.Equal(t, tc.stock, prod.Stock())
			assert.True(t, prod.IsActive())
			assert.NotEqual(t, prod.ID().String(), "00000000-0000-0000-0000-000000000000")
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "uppercase passes through", input: "MXN", expected: "MXN"},
		{name: "lowercase is uppercased", input: "usd", expected: "USD"},
		{name: "whitespace is trimmed", input: " mxn ", expected: "MXN"},
		{name: "too short", input: "MX", wantErr: true},
		{name: "too long", input: "MXNN", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := product.NormalizeCurrency(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, product.ErrInvalidCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
