package notifyqueue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/ports"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, msg notification.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

type MockAcknowledger struct {
	mock.Mock
}

func (m *MockAcknowledger) Ack(multiple bool) error {
	return m.Called(multiple).Error(0)
}

func (m *MockAcknowledger) Nack(multiple, requeue bool) error {
	return m.Called(multiple, requeue).Error(0)
}

type MockConsumer struct {
	mock.Mock
}

func (m *MockConsumer) Qos(prefetchCount, prefetchSize int, global bool) error {
	return m.Called(prefetchCount, prefetchSize, global).Error(0)
}

func (m *MockConsumer) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	called := m.Called(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
	return called.Get(0).(chan amqp.Delivery), called.Error(1)
}

// tagAcknowledger counts acknowledged deliveries.
type tagAcknowledger struct {
	acked atomic.Int32
}

func (a *tagAcknowledger) Ack(uint64, bool) error        { a.acked.Add(1); return nil }
func (a *tagAcknowledger) Nack(uint64, bool, bool) error { return nil }
func (a *tagAcknowledger) Reject(uint64, bool) error     { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func reminder() notification.Message {
	return notification.NewDeadlineReminder(notification.DeadlineReminder{
		Date:  "2026-03-15",
		Items: []notification.DueItem{{OrderID: "1", Client: "Acme", Name: "Posters", Quantity: 1}},
	})
}

func TestDeliver_Results(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sent", nil, resultSent},
		{"not configured", ports.ErrNotifierNotConfigured, resultSkipped},
		{"not configured, wrapped", fmt.Errorf("telegram bot: %w", ports.ErrNotifierNotConfigured), resultSkipped},
		{"failure", errors.New("timeout"), resultFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := new(MockNotifier)
			notifier.On("Notify", mock.Anything, reminder()).Return(tt.err).Once()

			got := deliver(t.Context(), notifier, discardLogger(), reminder())

			assert.Equal(t, tt.want, got)
			notifier.AssertExpectations(t)
		})
	}
}

func TestMemoryQueue_EnqueueRejectsInvalidAndFull(t *testing.T) {
	// Given
	queue := NewMemoryQueue(1, 1, new(MockNotifier), discardLogger())

	// When / Then
	assert.Error(t, queue.Enqueue(t.Context(), notification.Message{Kind: "unknown"}))
	require.NoError(t, queue.Enqueue(t.Context(), reminder()))
	assert.ErrorIs(t, queue.Enqueue(t.Context(), reminder()), ErrQueueFull)
}

func TestMemoryQueue_WorkersDeliverUntilCancelled(t *testing.T) {
	// Given
	var delivered atomic.Int32
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { delivered.Add(1) }).
		Return(nil)

	queue := NewMemoryQueue(10, 3, notifier, discardLogger())
	for range 5 {
		require.NoError(t, queue.Enqueue(t.Context(), reminder()))
	}

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)

	// When
	go func() { done <- queue.Run(ctx) }()

	// Then
	assert.Eventually(t, func() bool { return delivered.Load() == 5 }, time.Second, 10*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestRabbitPublisher_PublishesJSON(t *testing.T) {
	// Given
	channel := new(MockPublisher)
	body, err := notification.Marshal(reminder())
	require.NoError(t, err)
	channel.On("Publish", "", "notifications", false, false, mock.MatchedBy(func(p amqp.Publishing) bool {
		return string(p.Body) == string(body) &&
			p.DeliveryMode == amqp.Persistent &&
			p.Type == string(notification.KindDeadlineReminder)
	})).Return(nil).Once()

	// When
	err = NewRabbitPublisher(channel, "notifications").Enqueue(t.Context(), reminder())

	// Then
	require.NoError(t, err)
	channel.AssertExpectations(t)
}

func TestRabbitConsumer_AcksDelivered(t *testing.T) {
	// Given
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, reminder()).Return(errors.New("telegram down")).Once()
	ack := new(MockAcknowledger)
	ack.On("Ack", false).Return(nil).Once()
	body, err := notification.Marshal(reminder())
	require.NoError(t, err)

	consumer := NewRabbitConsumer(nil, "notifications", 1, notifier, discardLogger())

	// When
	consumer.process(t.Context(), body, ack)

	// Then
	notifier.AssertExpectations(t)
	ack.AssertExpectations(t)
}

func TestRabbitConsumer_DropsUndecodable(t *testing.T) {
	// Given
	notifier := new(MockNotifier)
	ack := new(MockAcknowledger)
	ack.On("Nack", false, false).Return(nil).Once()

	consumer := NewRabbitConsumer(nil, "notifications", 1, notifier, discardLogger())

	// When
	consumer.process(t.Context(), []byte("{"), ack)

	// Then
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	ack.AssertExpectations(t)
}

func TestRabbitConsumer_WorkersDeliverConcurrently(t *testing.T) {
	// Given
	body, err := notification.Marshal(reminder())
	require.NoError(t, err)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, reminder()).
		Run(func(mock.Arguments) {
			started <- struct{}{}
			<-release
		}).
		Return(nil)

	acks := &tagAcknowledger{}
	deliveries := make(chan amqp.Delivery, 2)
	for tag := range uint64(2) {
		deliveries <- amqp.Delivery{Acknowledger: acks, DeliveryTag: tag + 1, Body: body}
	}

	channel := new(MockConsumer)
	channel.On("Qos", 2, 0, false).Return(nil).Once()
	channel.On("Consume", "notifications", "printshop-notifier", false, false, false, false, amqp.Table(nil)).
		Return(deliveries, nil).Once()

	consumer := NewRabbitConsumer(channel, "notifications", 2, notifier, discardLogger())
	done := make(chan error, 1)

	// When
	go func() { done <- consumer.Run(t.Context()) }()

	// Then
	for range 2 {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("deliveries were not handled in parallel")
		}
	}
	close(release)
	assert.Eventually(t, func() bool { return acks.acked.Load() == 2 }, time.Second, 10*time.Millisecond)

	close(deliveries)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	channel.AssertExpectations(t)
}
