package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand carries a partial update of an order and, optionally, the full
// list of its items.
//
// A nil items pointer leaves the items alone. A pointer to an empty slice removes every
// non-archived item.
//
// Example:
//
//	items := []services.ItemWrite{
//	    {ID: &cardsID, Patch: order.ItemPatch{Status: kernel.Some(order.Ready)}},
//	    {Patch: order.ItemPatch{Name: kernel.Some("Flyers"), Quantity: kernel.Some(1000)}},
//	}
//	cmd, err := NewUpdateOrderCommand(orderID, services.OrderChanges{}, &items, actor)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	changes services.OrderChanges
	items   *[]services.ItemWrite
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID kernel.UUID,
	changes services.OrderChanges,
	items *[]services.ItemWrite,
	actor kernel.Actor,
) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		changes: changes,
		items:   items,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Changes() services.OrderChanges {
	return c.changes
}

// Items returns the item list, nil when the request did not carry one.
func (c UpdateOrderCommand) Items() *[]services.ItemWrite {
	return c.items
}

func (c UpdateOrderCommand) Actor() kernel.Actor {
	return c.actor
}
