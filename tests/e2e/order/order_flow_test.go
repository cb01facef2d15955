//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"ecommerce-backend/internal/handler/dto/response"
	"ecommerce-backend/tests/common/builder"
	"ecommerce-backend/tests/common/dbtest"
	"ecommerce-backend/tests/common/httptest"
	"ecommerce-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL      = "/api/v1/orders"
	orderDetailURL = "/api/v1/orders/"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{14}-[0-9A-F]{8}$`)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

// =============================================================================
// TestCreateOrder - Order creation API tests
// =============================================================================

func (s *OrderSuite) TestCreateOrder() {
	s.Run("Normal case: Cash order is created and retrievable", func() {
		t := s.T()

		conchaID := dbtest.CreateTestProduct(t, s.DB, "Concha", 2500, "MXN", 10, true)
		bolilloID := dbtest.CreateTestProduct(t, s.DB, "Bolillo", 800, "MXN", 30, true)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{
				{ProductID: conchaID, Quantity: 2},
				{ProductID: bolilloID, Quantity: 3},
			}
			b.PaymentMethod = "cash"
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")

		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Regexp(t, orderNumberPattern, created.OrderNumber)
		require.Equal(t, "pending_payment", created.Status)
		require.Equal(t, int64(2*2500+3*800), created.TotalCents)
		require.Nil(t, created.PaymentURL, "cash orders have no checkout URL")

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, orderDetailURL+created.OrderNumber, nil, "")

		var detail response.OrderResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &detail)

		expected := &response.OrderResponse{
			OrderNumber:   created.OrderNumber,
			CustomerName:  "Ana López",
			CustomerPhone: "+52 555 123 4567",
			Status:        "pending_payment",
			TotalCents:    created.TotalCents,
			Items: []response.OrderItemResponse{
				{ProductID: conchaID, Quantity: 2, ProductName: "Concha", UnitPriceCents: 2500, LineTotalCents: 5000},
				{ProductID: bolilloID, Quantity: 3, ProductName: "Bolillo", UnitPriceCents: 800, LineTotalCents: 2400},
			},
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OrderResponse{}, "ID", "Payment", "CreatedAt"),
			cmpopts.IgnoreFields(response.OrderItemResponse{}, "ID"),
		}
		if diff := cmp.Diff(expected, &detail, opts...); diff != "" {
			t.Errorf("Order detail mismatch (-want +got):\n%s", diff)
		}

		require.NotNil(t, detail.Payment, "order detail should include its payment")
		require.Equal(t, "created", detail.Payment.Status)
		require.Equal(t, created.TotalCents, detail.Payment.AmountCents)
		require.Equal(t, "MXN", detail.Payment.Currency)
		require.Nil(t, detail.Payment.InitPoint)
	})

	s.Run("Normal case: Mercado Pago order returns checkout URL and records provider data", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Concha", 2500, "MXN", 10, true)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{{ProductID: productID, Quantity: 2}}
			b.PaymentMethod = "mercadopago"
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")

		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotNil(t, created.PaymentURL, "checkout URL should be returned")
		require.True(t, strings.HasPrefix(*created.PaymentURL, "http"), "checkout URL should be absolute")

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, orderDetailURL+created.OrderNumber, nil, "")

		var detail response.OrderResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &detail)
		require.NotNil(t, detail.Payment)
		require.Equal(t, "pending", detail.Payment.Status)
		require.NotNil(t, detail.Payment.ExternalPaymentID)
		require.NotEmpty(t, *detail.Payment.ExternalPaymentID)
		require.NotNil(t, detail.Payment.InitPoint)
		require.Equal(t, *created.PaymentURL, *detail.Payment.InitPoint)
	})

	s.Run("Error case: Provider outage returns 502 but the order survives", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Concha", 2500, "MXN", 10, true)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{{ProductID: productID, Quantity: 2}}
			b.PaymentMethod = "mercadopago"
		}).BuildCreateRequestDTO()

		s.Payments.SetFailing(true)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Payment provider request failed")
		s.Payments.SetFailing(false)

		var orderNumber string
		err := s.DB.QueryRow(context.Background(), "SELECT order_number FROM orders").Scan(&orderNumber)
		require.NoError(t, err, "the order should be persisted despite the provider outage")

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, orderDetailURL+orderNumber, nil, "")

		var detail response.OrderResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &detail)
		require.Equal(t, "pending_payment", detail.Status)
		require.Equal(t, int64(5000), detail.TotalCents)
		require.NotNil(t, detail.Payment)
		require.Equal(t, "created", detail.Payment.Status)
		require.Nil(t, detail.Payment.ExternalPaymentID)
		require.Nil(t, detail.Payment.InitPoint)
	})

	s.Run("Error case: Unknown product returns 404 naming the missing ID", func() {
		t := s.T()

		missingID := uuid.New()
		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{{ProductID: missingID, Quantity: 1}}
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, missingID.String())
	})

	s.Run("Error case: Inactive product is treated as not found", func() {
		t := s.T()

		inactiveID := dbtest.CreateTestProduct(t, s.DB, "Pan de Muerto", 3500, "MXN", 5, false)
		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{{ProductID: inactiveID, Quantity: 1}}
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, inactiveID.String())
	})

	s.Run("Error case: Negative quantity returns 422", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Concha", 2500, "MXN", 10, true)
		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{{ProductID: productID, Quantity: -1}}
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("Error case: Mixed product currencies return 422", func() {
		t := s.T()

		mxnID := dbtest.CreateTestProduct(t, s.DB, "Concha", 2500, "MXN", 10, true)
		usdID := dbtest.CreateTestProduct(t, s.DB, "Imported Roll", 400, "USD", 10, true)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{
				{ProductID: mxnID, Quantity: 1},
				{ProductID: usdID, Quantity: 1},
			}
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "mixed product currencies")
	})

	s.Run("Error case: Missing items fail request validation", func() {
		t := s.T()

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = nil
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Unknown payment method fails request validation", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Concha", 2500, "MXN", 10, true)
		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = []builder.OrderItemBuilder{{ProductID: productID, Quantity: 1}}
			b.PaymentMethod = "paypal"
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestGetOrder - Order lookup API tests
// =============================================================================

func (s *OrderSuite) TestGetOrder() {
	s.Run("Error case: Unknown order number returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, orderDetailURL+"ORD-20260101000000-FFFFFFFF", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})
}
