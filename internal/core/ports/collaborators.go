package ports

import (
	"context"
	"errors"

	"printshop/internal/core/application/notification"
)

// NotificationQueue hands a message to background delivery.
// Enqueue must not block on the delivery itself.
type NotificationQueue interface {
	Enqueue(ctx context.Context, msg notification.Message) error
}

// ErrNotifierNotConfigured is returned by a Notifier that has no credentials to
// deliver with. Queue workers count it as a skipped delivery.
var ErrNotifierNotConfigured = errors.New("notifier is not configured")

// Notifier delivers one message to staff. It is called by queue workers, never by
// command handlers.
type Notifier interface {
	Notify(ctx context.Context, msg notification.Message) error
}

// SpreadsheetSink replaces the content of an external spreadsheet with rows.
type SpreadsheetSink interface {
	ReplaceRows(ctx context.Context, rows [][]string) error
}
