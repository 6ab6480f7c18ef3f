package main

import (
	"context"
	"fmt"
	"inventory/app/product"
	"inventory/infra/mongo"
	"inventory/infra/rabbitmq"
	"inventory/infra/redis"
	"inventory/infra/rest"
	"inventory/pkg/config"
	"inventory/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
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

	zap.L().Info("Inventory API starting...",
		zap.String("port", appConfig.Port),
		zap.String("mongoDatabase", appConfig.MongoDatabase),
	)

	ctx := context.Background()

	repository, err := mongo.NewRepository(ctx, appConfig.MongoURI, appConfig.MongoDatabase, appConfig.MongoTimeout())
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer repository.Close(context.Background())

	deps := rest.Dependencies{
		Categories:        repository,
		Products:          repository,
		DashboardCacheTTL: appConfig.DashboardCacheTTL(),
		Store:             repository,
	}

	if appConfig.RabbitMQURL != "" {
		publisher, err := rabbitmq.NewPublisher(appConfig.RabbitMQURL, appConfig.ServiceName)
		if err != nil {
			zap.L().Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
		deps.Publisher = publisher
	} else {
		zap.L().Info("RABBITMQ_URL not set, domain events are disabled")
	}

	deps.Cache = dashboardCache(ctx, appConfig)

	app := rest.NewApp(deps)

	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(app)
}

// dashboardCache connects to Redis when configured. The service runs without
// a cache when Redis is not configured or not reachable.
func dashboardCache(ctx context.Context, appConfig *config.AppConfig) product.Cache {
	if appConfig.RedisAddr == "" {
		zap.L().Info("REDIS_ADDR not set, dashboard cache is disabled")
		return nil
	}

	cache, err := redis.Open(ctx, appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
	if err != nil {
		zap.L().Warn("Redis unavailable, dashboard cache is disabled", zap.Error(err))
		return nil
	}

	return cache
}

func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}
