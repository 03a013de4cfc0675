// Package telegram delivers notifications to a Telegram chat through the Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/ports"
)

const (
	DefaultAPIURL  = "https://api.telegram.org"
	requestTimeout = 5 * time.Second
)

type settingsSource interface {
	GetTelegram(ctx context.Context) (settings.Telegram, error)
}

type Notifier struct {
	client   *http.Client
	apiURL   string
	source   settingsSource
	fallback settings.Telegram
	logger   *slog.Logger
}

// NewNotifier creates a notifier that reads credentials from source on every send and
// fills blank fields from fallback. source may be nil.
func NewNotifier(apiURL string, source settingsSource, fallback settings.Telegram, logger *slog.Logger) *Notifier {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Notifier{
		client:   &http.Client{Timeout: requestTimeout},
		apiURL:   strings.TrimRight(apiURL, "/"),
		source:   source,
		fallback: fallback,
		logger:   logger.With("component", "telegram_notifier"),
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (n *Notifier) Notify(ctx context.Context, msg notification.Message) error {
	creds := n.credentials(ctx)
	if !creds.IsConfigured() {
		return fmt.Errorf("telegram bot: %w", ports.ErrNotifierNotConfigured)
	}

	text, err := Render(msg)
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: creds.ChatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiURL, creds.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

func (n *Notifier) credentials(ctx context.Context) settings.Telegram {
	if n.source == nil {
		return n.fallback
	}
	stored, err := n.source.GetTelegram(ctx)
	if err != nil {
		n.logger.WarnContext(ctx, "Failed to load telegram settings, using configured fallback", "error", err)
		return n.fallback
	}
	return stored.Or(n.fallback)
}
