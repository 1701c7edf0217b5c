package service

import (
	"context"

	"github.com/google/uuid"
)

// Order event types carried on the bus.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is published after an order write commits. The push worker turns
// it into notifications for the store owner's devices.
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	OrderID    uuid.UUID `json:"order_id"`
	StoreID    uuid.UUID `json:"store_id"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"total_price"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
