package events

import (
	"context"
	"time"

	"github.com/plateful/takeaway/internal/domain/model"
)

// OrderEvent is the message published to external consumers on order
// creation and on every status change.
type OrderEvent struct {
	Kind        string            `json:"kind"` // order.created | order.status_changed
	OrderID     int64             `json:"order_id"`
	OrderNumber string            `json:"order_number"`
	Status      model.OrderStatus `json:"status"`
	PickupTime  time.Time         `json:"pickup_time,omitempty"`
	TotalAmount float64           `json:"total_amount,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

const (
	KindOrderCreated  = "order.created"
	KindStatusChanged = "order.status_changed"
)

// Publisher emits order events. Failures are logged, never surfaced to
// the user: the order itself is already persisted.
type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, OrderEvent) error { return nil }
func (NoopPublisher) Close() error                              { return nil }
