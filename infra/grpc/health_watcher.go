package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusSetter is the part of health.Server the watcher drives.
type StatusSetter interface {
	SetServingStatus(service string, status grpc_health_v1.HealthCheckResponse_ServingStatus)
}

// HealthWatcher mirrors store reachability into the gRPC health status of
// the overall server and of the named service.
type HealthWatcher struct {
	store    Pinger
	health   StatusSetter
	service  string
	interval time.Duration
	timeout  time.Duration
}

func NewHealthWatcher(store Pinger, health StatusSetter, service string, interval time.Duration) *HealthWatcher {
	return &HealthWatcher{
		store:    store,
		health:   health,
		service:  service,
		interval: interval,
		timeout:  interval / 2,
	}
}

// Run checks once immediately and then on every tick until ctx is done.
func (w *HealthWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

func (w *HealthWatcher) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := w.store.Ping(pingCtx); err != nil {
		zap.L().Warn("Store ping failed", zap.Error(err))
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	w.health.SetServingStatus("", status)
	w.health.SetServingStatus(w.service, status)
	return status
}
