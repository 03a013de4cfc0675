package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand patches a single item outside of a full order update.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	patch  order.ItemPatch
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

func NewUpdateItemCommand(itemID kernel.UUID, patch order.ItemPatch, actor kernel.Actor) (UpdateItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return UpdateItemCommand{}, err
	}

	return UpdateItemCommand{
		itemID: itemID,
		patch:  patch,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateItemCommand) Patch() order.ItemPatch {
	return c.patch
}

func (c UpdateItemCommand) Actor() kernel.Actor {
	return c.actor
}
