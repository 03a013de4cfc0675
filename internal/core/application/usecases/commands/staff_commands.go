package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/staff"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateStaffCommandIsNotConstructed = errors.New(
		"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
	)
	ErrDeleteStaffCommandIsNotConstructed = errors.New(
		"DeleteStaffCommand must be created via NewDeleteStaffCommand constructor",
	)
)

// CreateStaffCommand registers a staff member. The member is built eagerly so field
// errors surface from the constructor.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	member *staff.Member

	guard guard.ConstructorGuard
}

func NewCreateStaffCommand(
	id kernel.UUID,
	username, fullName string,
	dayBeforeNotifications bool,
) (CreateStaffCommand, error) {
	member, err := staff.NewMember(id, username, fullName, dayBeforeNotifications)
	if err != nil {
		return CreateStaffCommand{}, err
	}

	return CreateStaffCommand{member: member, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

func (c CreateStaffCommand) Member() *staff.Member {
	return c.member
}

type CreateStaffCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

func NewCreateStaffCommandHandler(uowFactory DirectoryUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{uowFactory: uowFactory}
}

// Handle fails with a "username" validation error when the username is taken.
func (h *CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) error {
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

	if err := uow.StaffRepository().Add(ctx, cmd.Member()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteStaffCommand removes a staff member. Items they were responsible for and
// history entries they authored are kept with the reference cleared.
type DeleteStaffCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteStaffCommand(id kernel.UUID) (DeleteStaffCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteStaffCommand{}, err
	}

	return DeleteStaffCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteStaffCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStaffCommandIsNotConstructed)
}

func (c DeleteStaffCommand) ID() kernel.UUID {
	return c.id
}

type DeleteStaffCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

func NewDeleteStaffCommandHandler(uowFactory DirectoryUoWFactory) DeleteStaffCommandHandler {
	return DeleteStaffCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteStaffCommandHandler) Handle(ctx context.Context, cmd DeleteStaffCommand) error {
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

	if err := uow.StaffRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
