// Package notifyqueue moves notification messages from the command handlers to the
// notifier outside of any transaction. Two transports are provided: a buffered
// in-process queue and a RabbitMQ queue.
package notifyqueue

import (
	"context"
	"errors"
	"log/slog"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/metrics"
)

const (
	resultSent    = "sent"
	resultSkipped = "skipped"
	resultFailed  = "failed"
)

// deliver hands msg to the notifier and records the outcome. A notifier without
// credentials counts as skipped. Errors are logged, never returned.
func deliver(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, msg notification.Message) string {
	err := notifier.Notify(ctx, msg)

	result := resultSent
	switch {
	case errors.Is(err, ports.ErrNotifierNotConfigured):
		result = resultSkipped
		logger.InfoContext(ctx, "Notification skipped, bot is not configured", "kind", msg.Kind)
	case err != nil:
		result = resultFailed
		logger.ErrorContext(ctx, "Failed to deliver notification", "kind", msg.Kind, "error", err)
	}

	metrics.NotificationsTotal.WithLabelValues(string(msg.Kind), result).Inc()
	return result
}
