package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// CreateProductCommand adds a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	product *catalog.Product

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(id kernel.UUID, name, category, icon string) (CreateProductCommand, error) {
	parsed, err := catalog.ParseCategory(category)
	if err != nil {
		return CreateProductCommand{}, err
	}

	product, err := catalog.NewProduct(id, name, parsed, icon)
	if err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{product: product, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Product() *catalog.Product {
	return c.product
}

type CreateProductCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

func NewCreateProductCommandHandler(uowFactory DirectoryUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Add(ctx, cmd.Product()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(id kernel.UUID) (DeleteProductCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ID() kernel.UUID {
	return c.id
}

type DeleteProductCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory DirectoryUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
