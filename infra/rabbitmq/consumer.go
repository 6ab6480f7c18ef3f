package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"inventory/pkg/events"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	headerTraceID       = "x-trace-id"
	headerCorrelationID = "x-correlation-id"
	headerService       = "x-service"

	defaultPrefetch = 10
	processTimeout  = 30 * time.Second
)

// EventHandler processes one decoded event. A returned error dead-letters
// the message.
type EventHandler func(ctx context.Context, event *events.Event) error

type ConsumerConfig struct {
	Exchange      string
	QueueName     string
	RoutingKeys   []string
	ServiceName   string
	PrefetchCount int
}

func (c ConsumerConfig) deadLetterExchange() string {
	return c.Exchange + ".dlx"
}

func (c ConsumerConfig) deadLetterQueue() string {
	return c.QueueName + ".dlq"
}

func (c ConsumerConfig) prefetch() int {
	if c.PrefetchCount <= 0 {
		return defaultPrefetch
	}
	return c.PrefetchCount
}

type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  ConsumerConfig
}

func NewConsumer(url string, config ConsumerConfig) (*Consumer, error) {
	conn, err := dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel, config); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	zap.L().Info("RabbitMQ consumer created",
		zap.String("queue", config.QueueName),
		zap.String("exchange", config.Exchange),
		zap.Strings("routingKeys", config.RoutingKeys),
	)

	return &Consumer{
		conn:    conn,
		channel: channel,
		config:  config,
	}, nil
}

// declareTopology sets up the exchange, the queue and its dead letter pair.
func declareTopology(ch *amqp.Channel, config ConsumerConfig) error {
	if err := ch.Qos(config.prefetch(), 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := declareTopicExchange(ch, config.Exchange); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	dlx := config.deadLetterExchange()
	if err := declareTopicExchange(ch, dlx); err != nil {
		return fmt.Errorf("failed to declare DLX: %w", err)
	}

	queue, err := ch.QueueDeclare(
		config.QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		amqp.Table{"x-dead-letter-exchange": dlx},
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	dlq := config.deadLetterQueue()
	if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ: %w", err)
	}

	for _, routingKey := range config.RoutingKeys {
		if err := ch.QueueBind(dlq, routingKey, dlx, false, nil); err != nil {
			return fmt.Errorf("failed to bind DLQ: %w", err)
		}
		if err := ch.QueueBind(queue.Name, routingKey, config.Exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue: %w", err)
		}
	}

	return nil
}

// Consume delivers messages to handler until ctx is cancelled or the broker
// closes the channel.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	msgs, err := c.channel.Consume(
		c.config.QueueName,
		c.config.ServiceName, // consumer tag
		false,                // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	zap.L().Info("Started consuming messages", zap.String("queue", c.config.QueueName))

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Consumer context cancelled, stopping...")
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("message channel closed")
			}
			handleDelivery(ctx, msg, handler)
		}
	}
}

// handleDelivery acks a processed message and nacks without requeue, which
// routes it to the dead letter queue, when decoding or processing fails.
func handleDelivery(ctx context.Context, msg amqp.Delivery, handler EventHandler) {
	traceID, _ := msg.Headers[headerTraceID].(string)
	source, _ := msg.Headers[headerService].(string)

	logger := zap.L().With(
		zap.String("routingKey", msg.RoutingKey),
		zap.String("traceId", traceID),
		zap.String("sourceService", source),
	)

	var event events.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("Failed to unmarshal event", zap.Error(err))
		_ = msg.Nack(false, false)
		return
	}

	processCtx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	if err := handler(processCtx, &event); err != nil {
		logger.Error("Failed to process event", zap.String("event", event.Event), zap.Error(err))
		_ = msg.Nack(false, false)
		return
	}

	if err := msg.Ack(false); err != nil {
		logger.Error("Failed to acknowledge message", zap.Error(err))
		return
	}

	logger.Info("Processed event", zap.String("event", event.Event))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			zap.L().Error("Failed to close channel", zap.Error(err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			zap.L().Error("Failed to close connection", zap.Error(err))
			return err
		}
	}
	zap.L().Info("RabbitMQ consumer closed")
	return nil
}
