package product

import (
	"context"
	"inventory/domain"
	"inventory/pkg/httperror"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	repository Repository
	cache      Cache
	cacheTTL   time.Duration
}

func NewDashboardHandler(repository Repository, cache Cache, cacheTTL time.Duration) *DashboardHandler {
	return &DashboardHandler{
		repository: repository,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

type DashboardRequest struct{}

type DashboardResponse struct {
	TotalProducts       int64                  `json:"totalProducts"`
	TotalInventoryValue decimal.Decimal        `json:"totalInventoryValue"`
	LowStockItems       []ProductResponse      `json:"lowStockItems"`
	CountByCategory     []domain.CategoryCount `json:"countByCategory"`
}

// Handle combines four independent reads. They are not isolated from each
// other, so concurrent writes can make the figures disagree slightly.
func (h DashboardHandler) Handle(ctx context.Context, _ *DashboardRequest) (*DashboardResponse, error) {
	if cached, ok := h.cached(ctx); ok {
		return cached, nil
	}

	totalProducts, err := h.repository.CountProducts(ctx)
	if err != nil {
		return nil, dashboardFailed("count", err)
	}

	totalValue, err := h.repository.TotalInventoryValue(ctx)
	if err != nil {
		return nil, dashboardFailed("inventory_value", err)
	}

	lowStock, err := h.repository.LowStockProducts(ctx, domain.LowStockThreshold)
	if err != nil {
		return nil, dashboardFailed("low_stock", err)
	}

	byCategory, err := h.repository.CountByCategory(ctx)
	if err != nil {
		return nil, dashboardFailed("count_by_category", err)
	}
	if byCategory == nil {
		byCategory = make([]domain.CategoryCount, 0)
	}

	res := &DashboardResponse{
		TotalProducts:       totalProducts,
		TotalInventoryValue: totalValue,
		LowStockItems:       toProductResponses(lowStock),
		CountByCategory:     byCategory,
	}

	h.store(ctx, res)

	return res, nil
}

func (h DashboardHandler) cached(ctx context.Context) (*DashboardResponse, bool) {
	if h.cache == nil {
		return nil, false
	}

	var res DashboardResponse
	if err := h.cache.Get(ctx, DashboardCacheKey, &res); err != nil {
		return nil, false
	}

	return &res, true
}

func (h DashboardHandler) store(ctx context.Context, res *DashboardResponse) {
	if h.cache == nil || h.cacheTTL <= 0 {
		return
	}

	if err := h.cache.Set(ctx, DashboardCacheKey, res, h.cacheTTL); err != nil {
		zap.L().Warn("Failed to cache dashboard", zap.Error(err))
	}
}

func dashboardFailed(step string, err error) error {
	zap.L().Error("Failed to build dashboard", zap.String("step", step), zap.Error(err))
	return httperror.InternalServerError(
		"product.dashboard."+step+"_failed",
		"Failed to build the dashboard",
		nil,
	)
}
