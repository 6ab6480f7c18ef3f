package main

import (
	"context"
	"errors"
	"fmt"
	"inventory/app/product"
	"inventory/infra/mongo"
	"inventory/infra/rabbitmq"
	"inventory/infra/redis"
	"inventory/internal/consumers"
	"inventory/pkg/config"
	"inventory/pkg/events"
	"inventory/pkg/logger"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()

	log, err := logger.Init(appConfig.LogLevel, appConfig.LogEncoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.L().Info("Inventory worker starting...", zap.String("serviceName", appConfig.ServiceName))

	if appConfig.RabbitMQURL == "" {
		zap.L().Fatal("RABBITMQ_URL is required for the worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := mongo.NewRepository(ctx, appConfig.MongoURI, appConfig.MongoDatabase, appConfig.MongoTimeout())
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer repository.Close(context.Background())

	publisher, err := rabbitmq.NewPublisher(appConfig.RabbitMQURL, appConfig.ServiceName)
	if err != nil {
		zap.L().Fatal("Failed to create publisher", zap.Error(err))
	}
	defer publisher.Close()

	var cache product.Cache
	if appConfig.RedisAddr != "" {
		redisCache, err := redis.Open(ctx, appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
		if err != nil {
			zap.L().Warn("Redis unavailable, dashboard entries expire by TTL only", zap.Error(err))
		} else {
			cache = redisCache
		}
	}

	updateStock := product.NewUpdateStockHandler(repository, publisher, cache)
	stockHandler := consumers.NewStockEventHandler(updateStock)

	stockConsumer, err := rabbitmq.NewConsumer(appConfig.RabbitMQURL, rabbitmq.ConsumerConfig{
		Exchange:      events.StockExchange,
		QueueName:     "inventory.stock.adjusted.v1",
		RoutingKeys:   []string{events.StockAdjustedEvent + "." + events.EventVersionV1},
		ServiceName:   appConfig.ServiceName,
		PrefetchCount: 10,
	})
	if err != nil {
		zap.L().Fatal("Failed to create stock consumer", zap.Error(err))
	}
	defer stockConsumer.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	zap.L().Info("Consuming stock events", zap.String("exchange", events.StockExchange))
	done := startConsuming(ctx, func(ctx context.Context) error {
		return stockConsumer.Consume(ctx, stockHandler.HandleEvent)
	})

	select {
	case <-sigChan:
		zap.L().Info("Shutdown signal received, stopping worker...")
	case <-done:
		zap.L().Warn("Stock consumer exited, stopping worker...")
	}

	cancel()
	// An in-flight delivery finishes before the deferred closes run.
	<-done
	zap.L().Info("Worker stopped")
}

// startConsuming runs consume in the background. The returned channel is
// closed once consume has returned.
func startConsuming(ctx context.Context, consume func(context.Context) error) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consume(ctx); err != nil && !errors.Is(err, context.Canceled) {
			zap.L().Error("Stock consumer stopped", zap.Error(err))
		}
	}()
	return done
}
