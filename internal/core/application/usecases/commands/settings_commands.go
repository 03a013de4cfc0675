package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/settings"
	"printshop/internal/pkg/guard"
)

var (
	ErrUpdateCompanySettingsCommandIsNotConstructed = errors.New(
		"UpdateCompanySettingsCommand must be created via NewUpdateCompanySettingsCommand constructor",
	)
	ErrUpdateTelegramSettingsCommandIsNotConstructed = errors.New(
		"UpdateTelegramSettingsCommand must be created via NewUpdateTelegramSettingsCommand constructor",
	)
)

// UpdateCompanySettingsCommand replaces the company settings row.
type UpdateCompanySettingsCommand struct { //nolint:recvcheck //using for validation
	company settings.Company

	guard guard.ConstructorGuard
}

func NewUpdateCompanySettingsCommand(company settings.Company) (UpdateCompanySettingsCommand, error) {
	if err := company.Validate(); err != nil {
		return UpdateCompanySettingsCommand{}, err
	}

	return UpdateCompanySettingsCommand{company: company, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCompanySettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompanySettingsCommandIsNotConstructed)
}

func (c UpdateCompanySettingsCommand) Company() settings.Company {
	return c.company
}

type UpdateCompanySettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdateCompanySettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateCompanySettingsCommandHandler {
	return UpdateCompanySettingsCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateCompanySettingsCommandHandler) Handle(ctx context.Context, cmd UpdateCompanySettingsCommand) error {
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

	if err := uow.SettingsRepository().SaveCompany(ctx, cmd.Company()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateTelegramSettingsCommand replaces the bot credentials used for notifications.
type UpdateTelegramSettingsCommand struct { //nolint:recvcheck //using for validation
	telegram settings.Telegram

	guard guard.ConstructorGuard
}

func NewUpdateTelegramSettingsCommand(telegram settings.Telegram) (UpdateTelegramSettingsCommand, error) {
	if err := telegram.Validate(); err != nil {
		return UpdateTelegramSettingsCommand{}, err
	}

	return UpdateTelegramSettingsCommand{telegram: telegram, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateTelegramSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTelegramSettingsCommandIsNotConstructed)
}

func (c UpdateTelegramSettingsCommand) Telegram() settings.Telegram {
	return c.telegram
}

type UpdateTelegramSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdateTelegramSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateTelegramSettingsCommandHandler {
	return UpdateTelegramSettingsCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateTelegramSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateTelegramSettingsCommand) error {
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

	if err := uow.SettingsRepository().SaveTelegram(ctx, cmd.Telegram()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
