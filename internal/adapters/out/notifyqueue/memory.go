package notifyqueue

import (
	"context"
	"errors"
	"log/slog"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

var ErrQueueFull = errors.New("notification queue is full")

// MemoryQueue is a bounded in-process queue drained by a fixed number of workers.
// Messages still buffered when the process stops are lost.
type MemoryQueue struct {
	messages chan notification.Message
	workers  int
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewMemoryQueue(capacity, workers int, notifier ports.Notifier, logger *slog.Logger) *MemoryQueue {
	if capacity < 1 {
		capacity = 1
	}
	if workers < 1 {
		workers = 1
	}
	return &MemoryQueue{
		messages: make(chan notification.Message, capacity),
		workers:  workers,
		notifier: notifier,
		logger:   logger.With("component", "memory_notification_queue"),
	}
}

// Enqueue never blocks: a full buffer returns ErrQueueFull.
func (q *MemoryQueue) Enqueue(_ context.Context, msg notification.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	select {
	case q.messages <- msg:
		metrics.NotificationQueueDepth.Inc()
		return nil
	default:
		return ErrQueueFull
	}
}

// Run drains the queue until ctx is cancelled.
func (q *MemoryQueue) Run(ctx context.Context) error {
	q.logger.InfoContext(ctx, "Notification workers started", "workers", q.workers)

	g, gctx := errgroup.WithContext(ctx)
	for range q.workers {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case msg := <-q.messages:
					metrics.NotificationQueueDepth.Dec()
					deliver(gctx, q.notifier, q.logger, msg)
				}
			}
		})
	}

	err := g.Wait()
	q.logger.InfoContext(context.Background(), "Notification workers stopped")
	return err
}
