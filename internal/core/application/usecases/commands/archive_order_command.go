package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand archives every item of an order, or restores them when archived
// is false.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	archived bool
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

func NewArchiveOrderCommand(orderID kernel.UUID, archived bool, actor kernel.Actor) (ArchiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return ArchiveOrderCommand{
		orderID:  orderID,
		archived: archived,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

func (c ArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ArchiveOrderCommand) Archived() bool {
	return c.archived
}

func (c ArchiveOrderCommand) Actor() kernel.Actor {
	return c.actor
}
