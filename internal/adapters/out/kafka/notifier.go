// Package kafka publishes order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of kafka.Writer the notifier needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// StatusChangedEvent is the wire shape of one status change. The
// cancellation fields are only present for a transition into cancelled.
type StatusChangedEvent struct {
	Number             string     `json:"number"`
	Status             string     `json:"status"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	OccurredAt         time.Time  `json:"occurredAt"`
}

// OrderStatusNotifier implements commands.StatusNotifier on top of a Kafka
// writer. Messages are keyed by order number so all changes of one order
// land on the same partition, in order.
type OrderStatusNotifier struct {
	writer messageWriter
}

// NewOrderStatusNotifier creates a notifier writing to the given topic.
func NewOrderStatusNotifier(brokers []string, topic string) *OrderStatusNotifier {
	return &OrderStatusNotifier{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
		},
	}
}

// OrderStatusChanged publishes the order's current status.
func (n *OrderStatusNotifier) OrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	event := StatusChangedEvent{
		Number:             aggregate.Number().String(),
		Status:             aggregate.Status().String(),
		CancelledAt:        aggregate.CancelledAt(),
		CancellationReason: aggregate.CancellationReason(),
		OccurredAt:         time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	return n.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.Number),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (n *OrderStatusNotifier) Close() error {
	return n.writer.Close()
}
