package settings

import (
	"errors"
	"strings"
	"unicode/utf8"

	"printshop/internal/pkg/errs"
)

// Keys of the singleton settings rows.
const (
	CompanyKey  = "company"
	TelegramKey = "telegram"
)

// Company holds the print shop's own details shown on exports and notifications.
// The zero value is the default row.
type Company struct {
	Name    string
	Address string
	Phone   string
}

func (c Company) Validate() error {
	return errors.Join(
		maxLength("company_name", c.Name, 255),
		maxLength("address", c.Address, 500),
		maxLength("phone", c.Phone, 50),
	)
}

// Telegram holds the bot credentials used for staff notifications.
type Telegram struct {
	BotToken string
	ChatID   string
}

func (t Telegram) Validate() error {
	return errors.Join(
		maxLength("bot_token", t.BotToken, 255),
		maxLength("chat_id", t.ChatID, 255),
	)
}

// IsConfigured reports whether both the token and the chat are known.
func (t Telegram) IsConfigured() bool {
	return strings.TrimSpace(t.BotToken) != "" && strings.TrimSpace(t.ChatID) != ""
}

// Or fills empty fields from fallback.
func (t Telegram) Or(fallback Telegram) Telegram {
	if strings.TrimSpace(t.BotToken) == "" {
		t.BotToken = fallback.BotToken
	}
	if strings.TrimSpace(t.ChatID) == "" {
		t.ChatID = fallback.ChatID
	}
	return t
}

func maxLength(field, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return errs.NewValueIsOutOfRangeError(field, n, 0, limit)
	}
	return nil
}
