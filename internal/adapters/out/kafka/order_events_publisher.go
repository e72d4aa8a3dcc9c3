package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kds/internal/core/domain/model/order"

	"github.com/Shopify/sarama"
)

// EventTypeOrderStatusChanged is the event_type of every published message.
const EventTypeOrderStatusChanged = "order_status_changed"

// OrderStatusChangedMessage is the JSON body written to the topic.
type OrderStatusChangedMessage struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	HubID      string    `json:"hub_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventsPublisher implements ports.EventPublisher on a sarama producer.
// Messages are keyed by order id so the changes of one order stay in one
// partition and keep their order.
type OrderEventsPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewOrderEventsPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *OrderEventsPublisher {
	return &OrderEventsPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "order_events_publisher"),
	}
}

// Publish sends every event; a failed event does not stop the rest.
func (p *OrderEventsPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	var errList []error
	for _, event := range events {
		if err := p.publish(ctx, event); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

func (p *OrderEventsPublisher) publish(ctx context.Context, event order.StatusChanged) error {
	body, err := json.Marshal(NewOrderStatusChangedMessage(event))
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}

	key := event.OrderID.String()
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("failed to publish order %s event: %w", key, err)
	}

	p.logger.DebugContext(ctx, "Order event published",
		"order_id", key,
		"to", event.To.String(),
		"partition", partition,
		"offset", offset)
	return nil
}

// Close releases the producer.
func (p *OrderEventsPublisher) Close() error {
	return p.producer.Close()
}

func NewOrderStatusChangedMessage(event order.StatusChanged) OrderStatusChangedMessage {
	return OrderStatusChangedMessage{
		EventType:  EventTypeOrderStatusChanged,
		OrderID:    event.OrderID.String(),
		HubID:      event.HubID.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...order.StatusChanged) error {
	return nil
}
