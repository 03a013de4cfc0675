package notifyqueue

import (
	"context"
	"fmt"
	"log/slog"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/ports"

	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

// RabbitClient owns the AMQP connection and channel.
type RabbitClient struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// DialRabbit connects to url and opens a channel.
func DialRabbit(url string) (*RabbitClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	return &RabbitClient{conn: conn, channel: channel}, nil
}

// DeclareQueue declares a durable queue.
func (c *RabbitClient) DeclareQueue(name string) (amqp.Queue, error) {
	return c.channel.QueueDeclare(name, true, false, false, false, nil)
}

// Channel returns the underlying AMQP channel.
func (c *RabbitClient) Channel() *amqp.Channel {
	return c.channel
}

// Close closes the channel and connection for graceful shutdown.
func (c *RabbitClient) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			return err
		}
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitPublisher puts messages on a queue through the default exchange.
type RabbitPublisher struct {
	channel publisher
	queue   string
}

func NewRabbitPublisher(channel publisher, queue string) *RabbitPublisher {
	return &RabbitPublisher{channel: channel, queue: queue}
}

func (p *RabbitPublisher) Enqueue(_ context.Context, msg notification.Message) error {
	body, err := notification.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(msg.Kind),
		Body:         body,
	})
}

type consumer interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// RabbitConsumer reads the queue and hands every message to the notifier.
// Undecodable payloads are dropped, everything else is acknowledged after delivery.
type RabbitConsumer struct {
	channel  consumer
	queue    string
	workers  int
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewRabbitConsumer(channel consumer, queue string, workers int, notifier ports.Notifier, logger *slog.Logger) *RabbitConsumer {
	if workers < 1 {
		workers = 1
	}
	return &RabbitConsumer{
		channel:  channel,
		queue:    queue,
		workers:  workers,
		notifier: notifier,
		logger:   logger.With("component", "rabbitmq_notification_consumer"),
	}
}

// Run consumes with one goroutine per worker until ctx is cancelled or the channel
// closes. The prefetch count matches the worker count.
func (c *RabbitConsumer) Run(ctx context.Context) error {
	if err := c.channel.Qos(c.workers, 0, false); err != nil {
		return fmt.Errorf("set rabbitmq prefetch: %w", err)
	}

	deliveries, err := c.channel.Consume(c.queue, "printshop-notifier", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	c.logger.InfoContext(ctx, "Consumer started", "queue", c.queue, "workers", c.workers)
	g, gctx := errgroup.WithContext(ctx)
	for range c.workers {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case d, ok := <-deliveries:
					if !ok {
						return nil
					}
					c.process(gctx, d.Body, d)
				}
			}
		})
	}

	err = g.Wait()
	if ctx.Err() == nil {
		c.logger.WarnContext(ctx, "Delivery channel closed")
	}
	c.logger.InfoContext(context.Background(), "Consumer stopped")
	return err
}

func (c *RabbitConsumer) process(ctx context.Context, body []byte, ack acknowledger) {
	msg, err := notification.Unmarshal(body)
	if err != nil {
		c.logger.ErrorContext(ctx, "Dropping undecodable notification", "error", err)
		if err := ack.Nack(false, false); err != nil {
			c.logger.ErrorContext(ctx, "Failed to nack message", "error", err)
		}
		return
	}

	deliver(ctx, c.notifier, c.logger, msg)
	if err := ack.Ack(false); err != nil {
		c.logger.ErrorContext(ctx, "Failed to ack message", "error", err)
	}
}
