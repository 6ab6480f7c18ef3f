package product

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const DashboardCacheKey = "dashboard:products"

type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// invalidateDashboard drops the cached dashboard after a product write.
func invalidateDashboard(ctx context.Context, cache Cache) {
	if cache == nil {
		return
	}

	if err := cache.Delete(ctx, DashboardCacheKey); err != nil {
		zap.L().Warn("Failed to invalidate dashboard cache", zap.Error(err))
	}
}
