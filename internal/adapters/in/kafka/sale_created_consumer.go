// Package kafka consumes point-of-sale events and turns them into kitchen orders.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kds/internal/core/application/usecases/commands"
	"kds/internal/pkg/errs"

	"github.com/Shopify/sarama"
)

// OrderCreator is the ingestion use case.
type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
}

// SaleCreatedConsumer reads the sale-created topic in a consumer group.
//
// Messages that can never succeed (bad JSON, invalid sale) are logged and
// committed. Any other failure is retried in place with backoff; the claim
// does not move past the message until it succeeds or the session ends, in
// which case the offset stays uncommitted and the message is delivered again.
type SaleCreatedConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	creator OrderCreator
	logger  *slog.Logger

	retryBackoff    time.Duration
	maxRetryBackoff time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewConsumerGroup joins groupID, starting from the oldest offset on first join.
func NewConsumerGroup(brokers []string, groupID string) (sarama.ConsumerGroup, error) {
	config := sarama.NewConfig()
	config.Consumer.Return.Errors = true
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}
	return group, nil
}

func NewSaleCreatedConsumer(
	group sarama.ConsumerGroup,
	topic string,
	creator OrderCreator,
	logger *slog.Logger,
) *SaleCreatedConsumer {
	return &SaleCreatedConsumer{
		group:   group,
		topic:   topic,
		creator: creator,
		logger:  logger.With("component", "sale_created_consumer"),

		retryBackoff:    500 * time.Millisecond,
		maxRetryBackoff: 30 * time.Second,
	}
}

// Start consumes in the background until Stop is called.
func (c *SaleCreatedConsumer) Start() error {
	if c.topic == "" {
		return errors.New("sale created topic is not configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, c); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				c.logger.ErrorContext(ctx, "Kafka consume failed", "error", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
	go func() {
		defer c.wg.Done()
		for {
			select {
			case err, ok := <-c.group.Errors():
				if !ok {
					return
				}
				c.logger.ErrorContext(ctx, "Kafka consumer group error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	c.logger.InfoContext(ctx, "Sale created consumer started", "topic", c.topic)
	return nil
}

// Stop leaves the group and waits for the current message to finish.
func (c *SaleCreatedConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	return c.group.Close()
}

func (c *SaleCreatedConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *SaleCreatedConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *SaleCreatedConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if !c.handleWithRetry(session.Context(), msg) {
				return nil
			}
			session.MarkMessage(msg, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handleWithRetry reports false when ctx ended before msg was handled.
func (c *SaleCreatedConsumer) handleWithRetry(ctx context.Context, msg *sarama.ConsumerMessage) bool {
	backoff := c.retryBackoff
	for attempt := 1; ; attempt++ {
		err := c.HandleMessage(ctx, msg)
		if err == nil {
			return true
		}

		c.logger.ErrorContext(ctx, "Sale created message will be retried",
			"error", err,
			"attempt", attempt,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"backoff", backoff)

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return false
		}

		if backoff *= 2; backoff > c.maxRetryBackoff {
			backoff = c.maxRetryBackoff
		}
	}
}

// HandleMessage creates the order described by msg. It returns an error only
// for failures worth retrying.
func (c *SaleCreatedConsumer) HandleMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var sale SaleCreatedMessage
	if err := json.Unmarshal(msg.Value, &sale); err != nil {
		c.logger.WarnContext(ctx, "Dropping malformed sale created message",
			"error", err,
			"offset", msg.Offset)
		return nil
	}

	cmd, err := sale.toCommand()
	if err != nil {
		c.logger.WarnContext(ctx, "Dropping invalid sale",
			"error", err,
			"sale_id", sale.SaleID)
		return nil
	}

	result, err := c.creator.Handle(ctx, cmd)
	if err != nil {
		if isPermanent(err) {
			c.logger.WarnContext(ctx, "Sale rejected", "error", err, "sale_id", sale.SaleID)
			return nil
		}
		return err
	}

	c.logger.InfoContext(ctx, "Order created from sale",
		"sale_id", sale.SaleID,
		"order_id", result.OrderID.String(),
		"status", result.Status.String())
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
