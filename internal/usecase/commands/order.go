package commands

import (
	"context"
	"sort"
	"strings"

	"ecommerce-backend/internal/domain/order"
	"ecommerce-backend/internal/domain/payment"
	"ecommerce-backend/internal/pkg/clock"
	"ecommerce-backend/internal/pkg/errs"
	"ecommerce-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrder            = errs.New("invalid order")
	ErrProductNotFound         = errs.New("products not found or inactive")
	ErrPaymentGateway          = errs.New("payment provider request failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int32
}

type CreateOrderCommand struct {
	CustomerName  string
	CustomerPhone string
	Items         []CreateOrderItemInput
	PaymentMethod PaymentMethod
}

type CreateOrderResult struct {
	Order      *order.Order
	Payment    *payment.Payment
	PaymentURL *string
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error)
}

type orderCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, gateway PaymentGateway, clock clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clock,
	}
}

// CreateOrder persists the order, its items and a base payment in one
// transaction, then optionally creates a hosted-checkout preference and
// records the provider result in a second transaction. The order is durable
// before any provider traffic happens, so a gateway failure never loses the
// order.
func (c *orderCommandsImpl) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if len(cmd.Items) == 0 {
		return nil, errs.Mark(errs.New("order must include at least one item"), ErrInvalidOrder)
	}
	if !cmd.PaymentMethod.IsValid() {
		return nil, errs.Mark(errs.Newf("unsupported payment method %q", cmd.PaymentMethod), ErrInvalidOrder)
	}

	var (
		ord *order.Order
		pay *payment.Payment
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		products, err := tx.Reads().ActiveProductsByIDs(ctx, distinctProductIDs(cmd.Items))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if missing := missingProductIDs(cmd.Items, products); len(missing) > 0 {
			return errs.Mark(
				errs.Newf("products not found or inactive: %s", strings.Join(missing, ", ")),
				ErrProductNotFound,
			)
		}

		currency, err := resolveCurrency(products)
		if err != nil {
			return err
		}

		items, err := buildItems(cmd.Items, products)
		if err != nil {
			return err
		}

		ord, err = order.NewOrder(
			order.NewOrderNumber(c.clock.Now()),
			cmd.CustomerName,
			cmd.CustomerPhone,
			items,
			order.StatusPendingPayment,
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidOrder)
		}

		pay, err = payment.NewPayment(ord.ID(), ord.TotalCents(), currency)
		if err != nil {
			return errs.Mark(err, ErrInvalidOrder)
		}

		if err := tx.Orders().Create(ctx, ord); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Payments().Create(ctx, pay); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cmd.PaymentMethod == PaymentMethodCash {
		return &CreateOrderResult{Order: ord, Payment: pay}, nil
	}

	// The gateway call runs with no transaction open; the order and its
	// "created" payment are already committed and survive a provider failure.
	pref, err := c.gateway.CreatePreference(ctx, ord, pay.Currency())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	if err := pay.ApplyProviderResult(payment.ProviderResult{
		ProviderPaymentID: pref.ProviderPaymentID,
		InitPoint:         pref.InitPoint,
		SandboxInitPoint:  pref.SandboxInitPoint,
	}); err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().UpdateProviderResult(ctx, pay); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	paymentURL := pref.InitPoint
	return &CreateOrderResult{Order: ord, Payment: pay, PaymentURL: &paymentURL}, nil
}

func distinctProductIDs(items []CreateOrderItemInput) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// missingProductIDs reports every requested id absent from the lookup,
// de-duplicated and sorted so the error message is stable.
func missingProductIDs(items []CreateOrderItemInput, products map[uuid.UUID]shared.ActiveProductSnapshot) []string {
	var missing []string
	for _, id := range distinctProductIDs(items) {
		if _, ok := products[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	sort.Strings(missing)
	return missing
}

// A single order maps to a single payment amount in a single currency;
// mixed-currency carts are rejected, never converted.
func resolveCurrency(products map[uuid.UUID]shared.ActiveProductSnapshot) (string, error) {
	currencies := make(map[string]struct{}, 1)
	var currency string
	for _, p := range products {
		c := strings.ToUpper(p.Currency)
		currencies[c] = struct{}{}
		currency = c
	}
	if len(currencies) != 1 {
		return "", errs.Mark(errs.New("mixed product currencies are not supported"), ErrInvalidOrder)
	}
	return currency, nil
}

// buildItems snapshots name and price per requested line, preserving the
// request order.
func buildItems(requested []CreateOrderItemInput, products map[uuid.UUID]shared.ActiveProductSnapshot) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requested))
	for _, req := range requested {
		if req.Quantity <= 0 {
			return nil, errs.Mark(errs.New("quantity must be greater than zero"), ErrInvalidOrder)
		}

		p := products[req.ProductID]
		item, err := order.NewItem(req.ProductID, req.Quantity, p.Name, p.PriceCents)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidOrder)
		}
		items = append(items, item)
	}
	return items, nil
}
