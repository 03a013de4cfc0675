package settings_test

import (
	"strings"
	"testing"

	"printshop/internal/core/domain/model/settings"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompany_Validate(t *testing.T) {
	require.NoError(t, settings.Company{}.Validate())

	err := settings.Company{Phone: strings.Repeat("1", 51)}.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	field, _ := errs.Field(err)
	assert.Equal(t, "phone", field)
}

func TestTelegram(t *testing.T) {
	t.Run("configured only with token and chat", func(t *testing.T) {
		assert.False(t, settings.Telegram{}.IsConfigured())
		assert.False(t, settings.Telegram{BotToken: "token"}.IsConfigured())
		assert.True(t, settings.Telegram{BotToken: "token", ChatID: "-100"}.IsConfigured())
	})

	t.Run("fallback fills empty fields", func(t *testing.T) {
		got := settings.Telegram{ChatID: "-100"}.Or(settings.Telegram{BotToken: "env-token", ChatID: "env-chat"})

		assert.Equal(t, settings.Telegram{BotToken: "env-token", ChatID: "-100"}, got)
	})
}
