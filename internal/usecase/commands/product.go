package commands

import (
	"context"

	"ecommerce-backend/internal/domain/product"
	"ecommerce-backend/internal/pkg/errs"
	"ecommerce-backend/internal/usecase/shared"
)

var ErrInvalidProduct = errs.New("invalid product")

type CreateProductCommand struct {
	Name        string
	Description *string
	PriceCents  int64
	Currency    string
	Stock       int32
	IsActive    bool
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, cmd CreateProductCommand) (*product.Product, error)
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (c *productCommandsImpl) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	prod, err := product.NewProduct(cmd.Name, cmd.Description, cmd.PriceCents, cmd.Currency, cmd.Stock, cmd.IsActive)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProduct)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().Create(ctx, prod); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prod, nil
}
