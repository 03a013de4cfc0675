// Package settingsrepo stores the singleton settings as named JSON values in the
// settings table. A missing row is created with defaults on first read.
package settingsrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"printshop/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingDTO is a row of the settings table.
type SettingDTO struct {
	Key   string `gorm:"size:50;primaryKey"`
	Value string `gorm:"type:jsonb;not null"`
}

func (SettingDTO) TableName() string {
	return "settings"
}

type companyValue struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

type telegramValue struct {
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) GetCompany(ctx context.Context) (settings.Company, error) {
	var v companyValue
	if err := r.load(ctx, settings.CompanyKey, companyValue{}, &v); err != nil {
		return settings.Company{}, err
	}
	return settings.Company{Name: v.CompanyName, Address: v.Address, Phone: v.Phone}, nil
}

func (r *GormSettingsRepository) SaveCompany(ctx context.Context, company settings.Company) error {
	if err := company.Validate(); err != nil {
		return err
	}
	return r.save(ctx, settings.CompanyKey, companyValue{
		CompanyName: company.Name,
		Address:     company.Address,
		Phone:       company.Phone,
	})
}

func (r *GormSettingsRepository) GetTelegram(ctx context.Context) (settings.Telegram, error) {
	var v telegramValue
	if err := r.load(ctx, settings.TelegramKey, telegramValue{}, &v); err != nil {
		return settings.Telegram{}, err
	}
	return settings.Telegram{BotToken: v.BotToken, ChatID: v.ChatID}, nil
}

func (r *GormSettingsRepository) SaveTelegram(ctx context.Context, telegram settings.Telegram) error {
	if err := telegram.Validate(); err != nil {
		return err
	}
	return r.save(ctx, settings.TelegramKey, telegramValue{BotToken: telegram.BotToken, ChatID: telegram.ChatID})
}

// load reads key, inserting defaults when the row does not exist yet.
func (r *GormSettingsRepository) load(ctx context.Context, key string, defaults, target any) error {
	raw, err := json.Marshal(defaults)
	if err != nil {
		return err
	}

	var dto SettingDTO
	if err := r.db.WithContext(ctx).
		Where(SettingDTO{Key: key}).
		Attrs(SettingDTO{Value: string(raw)}).
		FirstOrCreate(&dto).Error; err != nil {
		return fmt.Errorf("load %s settings: %w", key, err)
	}

	if err := json.Unmarshal([]byte(dto.Value), target); err != nil {
		return fmt.Errorf("decode %s settings: %w", key, err)
	}
	return nil
}

func (r *GormSettingsRepository) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	dto := SettingDTO{Key: key, Value: string(raw)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&dto).Error
}
