// Package notification defines the plain-data messages the core hands to background
// delivery after a transaction commits. Messages carry only values, never domain objects,
// so they can cross a queue.
package notification

import (
	"encoding/json"
	"fmt"
)

// Kind selects the payload of a Message.
type Kind string

const (
	KindOrderCreated     Kind = "order_created"
	KindDeadlineReminder Kind = "deadline_reminder"
)

// Message is the envelope put on the notification queue.
type Message struct {
	Kind             Kind              `json:"kind"`
	OrderCreated     *OrderCreated     `json:"order_created,omitempty"`
	DeadlineReminder *DeadlineReminder `json:"deadline_reminder,omitempty"`
}

// ItemSummary is one already-formatted item line.
type ItemSummary struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Deadline    string `json:"deadline"`
	Responsible string `json:"responsible"`
	Comment     string `json:"comment"`
}

// OrderCreated announces a new order.
type OrderCreated struct {
	OrderID string        `json:"order_id"`
	Client  string        `json:"client"`
	Items   []ItemSummary `json:"items"`
}

// DeadlineReminder lists the items due on Date that are not ready yet.
type DeadlineReminder struct {
	Date  string    `json:"date"`
	Items []DueItem `json:"items"`
}

// DueItem is an item line of a reminder.
type DueItem struct {
	OrderID     string `json:"order_id"`
	Client      string `json:"client"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	Responsible string `json:"responsible"`
}

func NewOrderCreated(payload OrderCreated) Message {
	return Message{Kind: KindOrderCreated, OrderCreated: &payload}
}

func NewDeadlineReminder(payload DeadlineReminder) Message {
	return Message{Kind: KindDeadlineReminder, DeadlineReminder: &payload}
}

// Validate checks that the payload matches the kind.
func (m Message) Validate() error {
	switch m.Kind {
	case KindOrderCreated:
		if m.OrderCreated == nil {
			return fmt.Errorf("%s message without payload", m.Kind)
		}
	case KindDeadlineReminder:
		if m.DeadlineReminder == nil {
			return fmt.Errorf("%s message without payload", m.Kind)
		}
	default:
		return fmt.Errorf("unknown message kind %q", m.Kind)
	}
	return nil
}

// Marshal encodes the message for a broker.
func Marshal(m Message) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// Unmarshal decodes and validates a broker payload.
func Unmarshal(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("decode notification: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	return m, nil
}
