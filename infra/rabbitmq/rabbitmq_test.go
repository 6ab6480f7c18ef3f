package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"inventory/pkg/events"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func delivery(t *testing.T, ack *fakeAcknowledger, body []byte) amqp.Delivery {
	t.Helper()

	return amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  1,
		RoutingKey:   "stock.adjusted.v1",
		Headers:      amqp.Table{headerTraceID: "trace-1"},
		Body:         body,
	}
}

func stockEventBody(t *testing.T) []byte {
	t.Helper()

	qty := 4
	event, err := events.NewEvent(events.StockAdjustedEvent, events.EventVersionV1,
		events.StockAdjustedPayload{ProductID: "p1", StockQty: &qty}, events.NewHeaders("warehouse"))
	require.NoError(t, err)

	body, err := event.ToJSON()
	require.NoError(t, err)
	return body
}

func TestHandleDelivery(t *testing.T) {
	ctx := context.Background()

	t.Run("acks a processed event", func(t *testing.T) {
		ack := &fakeAcknowledger{}

		var got *events.Event
		handleDelivery(ctx, delivery(t, ack, stockEventBody(t)), func(ctx context.Context, event *events.Event) error {
			got = event
			return nil
		})

		require.NotNil(t, got)
		assert.Equal(t, events.StockAdjustedEvent, got.Event)
		assert.True(t, ack.acked)
		assert.False(t, ack.nacked)
	})

	t.Run("dead-letters a handler failure", func(t *testing.T) {
		ack := &fakeAcknowledger{}

		handleDelivery(ctx, delivery(t, ack, stockEventBody(t)), func(ctx context.Context, event *events.Event) error {
			return errors.New("product missing")
		})

		assert.False(t, ack.acked)
		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue)
	})

	t.Run("dead-letters malformed bodies without calling the handler", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		called := false

		handleDelivery(ctx, delivery(t, ack, []byte("{not json")), func(ctx context.Context, event *events.Event) error {
			called = true
			return nil
		})

		assert.False(t, called)
		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue)
	})
}

func TestNewPublishing(t *testing.T) {
	headers := events.Headers{TraceID: "t1", CorrelationID: "c1"}
	event, err := events.NewEvent(events.ProductCreatedEvent, events.EventVersionV1, map[string]string{"id": "p1"}, headers)
	require.NoError(t, err)

	msg, err := newPublishing(event, headers, "inventory")
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "c1", msg.MessageId)
	assert.Equal(t, "t1", msg.Headers[headerTraceID])
	assert.Equal(t, "inventory", msg.Headers[headerService])

	var decoded events.Event
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "product.created.v1", decoded.GetRoutingKey())
}

func TestConsumerConfig(t *testing.T) {
	config := ConsumerConfig{Exchange: events.StockExchange, QueueName: "inventory.stock.adjusted.v1"}

	assert.Equal(t, "inventory.stock.dlx", config.deadLetterExchange())
	assert.Equal(t, "inventory.stock.adjusted.v1.dlq", config.deadLetterQueue())
	assert.Equal(t, defaultPrefetch, config.prefetch())

	config.PrefetchCount = 3
	assert.Equal(t, 3, config.prefetch())
}
