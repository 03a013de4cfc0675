package commands

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

// displayNames resolves the responsible staff of items to their display names.
// Unknown members are simply absent from the result.
func displayNames(ctx context.Context, repo ports.StaffRepository, items []*order.Item) (map[string]string, error) {
	seen := make(map[string]struct{})
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		id := item.ResponsibleID()
		if id == nil {
			continue
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		ids = append(ids, *id)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	members, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID().String()] = m.DisplayName()
	}
	return names, nil
}

func responsibleName(names map[string]string, item *order.Item) string {
	id := item.ResponsibleID()
	if id == nil {
		return "-"
	}
	if name, ok := names[id.String()]; ok {
		return name
	}
	return "-"
}

// enqueue hands msg to the queue after the transaction committed.
// A failure is logged and swallowed: the write it follows has already succeeded.
func enqueue(ctx context.Context, queue ports.NotificationQueue, log *slog.Logger, msg notification.Message) {
	if queue == nil {
		return
	}
	if err := queue.Enqueue(ctx, msg); err != nil {
		log.Warn("notification not enqueued", "kind", msg.Kind, "error", err)
	}
}
