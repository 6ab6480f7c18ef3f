package main

import (
	"context"
	"fmt"
	"inventory/infra/grpc"
	"inventory/infra/mongo"
	"inventory/pkg/config"
	"inventory/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const healthCheckInterval = 10 * time.Second

func main() {
	appConfig := config.Read()

	log, err := logger.Init(appConfig.LogLevel, appConfig.LogEncoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.L().Info("Inventory gRPC health service starting...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := mongo.NewRepository(ctx, appConfig.MongoURI, appConfig.MongoDatabase, appConfig.MongoTimeout())
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer repository.Close(context.Background())

	grpcServer, err := grpc.NewServer(appConfig.GRPCPort)
	if err != nil {
		zap.L().Fatal("Failed to create gRPC server", zap.Error(err))
	}

	watcher := grpc.NewHealthWatcher(repository, grpcServer.Health(), appConfig.ServiceName, healthCheckInterval)
	go watcher.Run(ctx)

	go func() {
		if err := grpcServer.Start(); err != nil {
			zap.L().Error("Failed to start gRPC server", zap.Error(err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down gRPC server...")
	cancel()
	grpcServer.GracefulStop()
	zap.L().Info("gRPC server gracefully stopped")
}
