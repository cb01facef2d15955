//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecommerce-backend/internal/domain/order"
	"ecommerce-backend/internal/domain/payment"
	"ecommerce-backend/internal/domain/product"
	"ecommerce-backend/internal/infra/db"
	"ecommerce-backend/internal/pkg/clock"
	"ecommerce-backend/internal/usecase/commands"
	"ecommerce-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeStore keeps everything written through the fake unit of work. Each
// Within call snapshots the store so a returned error restores the previous
// state, mirroring a rolled-back transaction.
type fakeStore struct {
	products map[uuid.UUID]shared.ActiveProductSnapshot
	orders   []*order.Order
	payments []*payment.Payment

	providerUpdates []*payment.Payment
	readsErr        error
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[uuid.UUID]shared.ActiveProductSnapshot)}
}

func (s *fakeStore) addProduct(snap shared.ActiveProductSnapshot) {
	s.products[snap.ID] = snap
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ordersBefore := len(u.store.orders)
	paymentsBefore := len(u.store.payments)

	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.orders = u.store.orders[:ordersBefore]
		u.store.payments = u.store.payments[:paymentsBefore]
		return err
	}
	return nil
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Orders() shared.OrderRepository     { return &fakeOrderRepo{store: t.store} }
func (t *fakeTx) Payments() shared.PaymentRepository { return &fakePaymentRepo{store: t.store} }
func (t *fakeTx) Products() shared.ProductRepository { return &fakeProductRepo{} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) ActiveProductsByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ActiveProductSnapshot, error) {
	if r.store.readsErr != nil {
		return nil, r.store.readsErr
	}
	found := make(map[uuid.UUID]shared.ActiveProductSnapshot)
	for _, id := range ids {
		if snap, ok := r.store.products[id]; ok {
			found[id] = snap
		}
	}
	return found, nil
}

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) Create(_ context.Context, ord *order.Order) error {
	r.store.orders = append(r.store.orders, ord)
	return nil
}

type fakePaymentRepo struct {
	store *fakeStore
}

func (r *fakePaymentRepo) Create(_ context.Context, pay *payment.Payment) error {
	r.store.payments = append(r.store.payments, pay)
	return nil
}

func (r *fakePaymentRepo) UpdateProviderResult(_ context.Context, pay *payment.Payment) error {
	r.store.providerUpdates = append(r.store.providerUpdates, pay)
	return nil
}

type fakeProductRepo struct{}

func (r *fakeProductRepo) Create(_ context.Context, _ *product.Product) error { return nil }

type fakeGateway struct {
	pref  *commands.ProviderPreference
	err   error
	calls int
}

func (g *fakeGateway) CreatePreference(_ context.Context, _ *order.Order, _ string) (*commands.ProviderPreference, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.pref, nil
}

type CreateOrderTestSuite struct {
	suite.Suite
	store   *fakeStore
	uow     *fakeUoW
	gateway *fakeGateway
	clock   *clock.MockClock

	conchaID  uuid.UUID
	bolilloID uuid.UUID
}

func (s *CreateOrderTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.uow = &fakeUoW{store: s.store}
	s.gateway = &fakeGateway{
		pref: &commands.ProviderPreference{
			ProviderPaymentID: "pref-123",
			InitPoint:         "https://mercadopago.com/init/123",
		},
	}
	s.clock = clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	s.conchaID = uuid.New()
	s.bolilloID = uuid.New()
	s.store.addProduct(shared.ActiveProductSnapshot{ID: s.conchaID, Name: "Concha", PriceCents: 2500, Currency: "MXN"})
	s.store.addProduct(shared.ActiveProductSnapshot{ID: s.bolilloID, Name: "Bolillo", PriceCents: 800, Currency: "MXN"})
}

func (s *CreateOrderTestSuite) commands() commands.OrderCommands {
	return commands.NewOrderCommands(s.uow, s.gateway, s.clock)
}

func (s *CreateOrderTestSuite) baseCommand() commands.CreateOrderCommand {
	return commands.CreateOrderCommand{
		CustomerName:  "Ana López",
		CustomerPhone: "+52 555 123 4567",
		Items: []commands.CreateOrderItemInput{
			{ProductID: s.conchaID, Quantity: 2},
			{ProductID: s.bolilloID, Quantity: 3},
		},
		PaymentMethod: commands.PaymentMethodCash,
	}
}

func TestCreateOrderSuite(t *testing.T) {
	suite.Run(t, new(CreateOrderTestSuite))
}

func (s *CreateOrderTestSuite) TestCashOrder() {
	result, err := s.commands().CreateOrder(context.Background(), s.baseCommand())

	s.Require().NoError(err)
	s.Require().NotNil(result)

	// 2*2500 + 3*800
	s.Equal(int64(7400), result.Order.TotalCents())
	s.Equal(order.StatusPendingPayment, result.Order.Status())
	s.Regexp(`^ORD-20260830120000-[0-9A-F]{8}$`, result.Order.OrderNumber())
	s.Nil(result.PaymentURL)

	s.Require().NotNil(result.Payment)
	s.Equal(payment.StatusCreated, result.Payment.Status())
	s.Equal(int64(7400), result.Payment.AmountCents())
	s.Equal("MXN", result.Payment.Currency())

	// cash never touches the provider
	s.Equal(0, s.gateway.calls)
	s.Len(s.store.orders, 1)
	s.Len(s.store.payments, 1)
	s.Empty(s.store.providerUpdates)
}

func (s *CreateOrderTestSuite) TestItemSnapshotsFollowRequestOrder() {
	result, err := s.commands().CreateOrder(context.Background(), s.baseCommand())
	s.Require().NoError(err)

	items := result.Order.Items()
	s.Require().Len(items, 2)
	s.Equal("Concha", items[0].ProductNameSnapshot())
	s.Equal(int64(2500), items[0].UnitPriceCentsSnapshot())
	s.Equal("Bolillo", items[1].ProductNameSnapshot())
	s.Equal(int64(800), items[1].UnitPriceCentsSnapshot())
}

func (s *CreateOrderTestSuite) TestMercadoPagoOrder() {
	cmd := s.baseCommand()
	cmd.PaymentMethod = commands.PaymentMethodMercadoPago

	result, err := s.commands().CreateOrder(context.Background(), cmd)

	s.Require().NoError(err)
	s.Equal(1, s.gateway.calls)

	s.Require().NotNil(result.PaymentURL)
	s.Equal("https://mercadopago.com/init/123", *result.PaymentURL)

	s.Equal(payment.StatusPending, result.Payment.Status())
	s.Require().NotNil(result.Payment.ExternalPaymentID())
	s.Equal("pref-123", *result.Payment.ExternalPaymentID())

	s.Require().Len(s.store.providerUpdates, 1)
	s.Same(result.Payment, s.store.providerUpdates[0])
}

func (s *CreateOrderTestSuite) TestGatewayFailureKeepsOrderPersisted() {
	cmd := s.baseCommand()
	cmd.PaymentMethod = commands.PaymentMethodMercadoPago
	s.gateway.err = errors.New("connect timeout")

	result, err := s.commands().CreateOrder(context.Background(), cmd)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, commands.ErrPaymentGateway)

	// first transaction already committed: the order and its created payment
	// survive the provider failure
	s.Require().Len(s.store.orders, 1)
	s.Require().Len(s.store.payments, 1)
	s.Equal(payment.StatusCreated, s.store.payments[0].Status())
	s.Empty(s.store.providerUpdates)
}

func (s *CreateOrderTestSuite) TestMissingProductRollsBackEverything() {
	missingA := uuid.New()
	missingB := uuid.New()
	cmd := s.baseCommand()
	cmd.Items = append(cmd.Items,
		commands.CreateOrderItemInput{ProductID: missingB, Quantity: 1},
		commands.CreateOrderItemInput{ProductID: missingA, Quantity: 1},
	)

	result, err := s.commands().CreateOrder(context.Background(), cmd)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, commands.ErrProductNotFound)
	s.Contains(err.Error(), missingA.String())
	s.Contains(err.Error(), missingB.String())

	s.Empty(s.store.orders)
	s.Empty(s.store.payments)
	s.Equal(0, s.gateway.calls)
}

func (s *CreateOrderTestSuite) TestEmptyItems() {
	cmd := s.baseCommand()
	cmd.Items = nil

	_, err := s.commands().CreateOrder(context.Background(), cmd)

	s.ErrorIs(err, commands.ErrInvalidOrder)
	s.Empty(s.store.orders)
}

func (s *CreateOrderTestSuite) TestNonPositiveQuantity() {
	for _, quantity := range []int32{0, -1} {
		cmd := s.baseCommand()
		cmd.Items = []commands.CreateOrderItemInput{{ProductID: s.conchaID, Quantity: quantity}}

		_, err := s.commands().CreateOrder(context.Background(), cmd)

		s.ErrorIs(err, commands.ErrInvalidOrder)
		s.Empty(s.store.orders)
	}
}

func (s *CreateOrderTestSuite) TestUnsupportedPaymentMethod() {
	cmd := s.baseCommand()
	cmd.PaymentMethod = commands.PaymentMethod("transfer")

	_, err := s.commands().CreateOrder(context.Background(), cmd)

	s.ErrorIs(err, commands.ErrInvalidOrder)
}

func (s *CreateOrderTestSuite) TestMixedCurrenciesRejected() {
	usdID := uuid.New()
	s.store.addProduct(shared.ActiveProductSnapshot{ID: usdID, Name: "Import", PriceCents: 5000, Currency: "USD"})

	cmd := s.baseCommand()
	cmd.Items = append(cmd.Items, commands.CreateOrderItemInput{ProductID: usdID, Quantity: 1})

	_, err := s.commands().CreateOrder(context.Background(), cmd)

	s.Require().Error(err)
	s.ErrorIs(err, commands.ErrInvalidOrder)
	s.Contains(err.Error(), "mixed product currencies are not supported")
	s.Empty(s.store.orders)
}

func (s *CreateOrderTestSuite) TestDuplicateProductLinesKeepSeparateRows() {
	cmd := s.baseCommand()
	cmd.Items = []commands.CreateOrderItemInput{
		{ProductID: s.conchaID, Quantity: 1},
		{ProductID: s.conchaID, Quantity: 2},
	}

	result, err := s.commands().CreateOrder(context.Background(), cmd)

	s.Require().NoError(err)
	s.Len(result.Order.Items(), 2)
	s.Equal(int64(7500), result.Order.TotalCents())
}

func (s *CreateOrderTestSuite) TestReadFailure() {
	s.store.readsErr = errors.New("connection reset")

	_, err := s.commands().CreateOrder(context.Background(), s.baseCommand())

	s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
}

func TestCreateProduct(t *testing.T) {
	store := newFakeStore()
	uow := &fakeUoW{store: store}
	cmds := commands.NewProductCommands(uow)

	t.Run("success: constructs and persists", func(t *testing.T) {
		prod, err := cmds.CreateProduct(context.Background(), commands.CreateProductCommand{
			Name:       "Concha",
			PriceCents: 2500,
			Currency:   "mxn",
			Stock:      10,
			IsActive:   true,
		})

		require.NoError(t, err)
		require.NotNil(t, prod)
		require.Equal(t, "MXN", prod.Currency())
		require.True(t, prod.IsActive())
	})

	t.Run("success: drafts stay inactive", func(t *testing.T) {
		prod, err := cmds.CreateProduct(context.Background(), commands.CreateProductCommand{
			Name:       "Rosca de Reyes",
			PriceCents: 12000,
			Currency:   "MXN",
			Stock:      0,
			IsActive:   false,
		})

		require.NoError(t, err)
		require.False(t, prod.IsActive())
	})

	t.Run("error: invalid product never reaches storage", func(t *testing.T) {
		_, err := cmds.CreateProduct(context.Background(), commands.CreateProductCommand{
			Name:       "",
			PriceCents: 2500,
			Currency:   "MXN",
		})

		require.ErrorIs(t, err, commands.ErrInvalidProduct)
	})
}
