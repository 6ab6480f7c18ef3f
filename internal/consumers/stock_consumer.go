package consumers

import (
	"context"
	"errors"
	"fmt"
	"inventory/app/product"
	"inventory/pkg/events"

	"go.uber.org/zap"
)

// StockUpdater applies a stock level to a product.
type StockUpdater interface {
	Handle(ctx context.Context, req *product.UpdateStockRequest) (*product.UpdateStockResponse, error)
}

var errMalformedPayload = errors.New("malformed payload")

// StockEventHandler applies stock levels reported by other services, such as
// a warehouse system, through the same path as PATCH /api/products/:id/stock.
type StockEventHandler struct {
	updater StockUpdater
}

func NewStockEventHandler(updater StockUpdater) *StockEventHandler {
	return &StockEventHandler{updater: updater}
}

func (h *StockEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	switch event.Event {
	case events.StockAdjustedEvent:
		return h.handleStockAdjusted(ctx, event)
	default:
		zap.L().Warn("Unknown stock event type", zap.String("event", event.Event))
		return nil
	}
}

func (h *StockEventHandler) handleStockAdjusted(ctx context.Context, event *events.Event) error {
	var payload events.StockAdjustedPayload
	if err := event.DecodePayload(&payload); err != nil {
		return fmt.Errorf("%w: %v", errMalformedPayload, err)
	}

	if payload.ProductID == "" {
		return fmt.Errorf("%w: productId missing", errMalformedPayload)
	}
	if payload.StockQty == nil {
		return fmt.Errorf("%w: stockQty missing", errMalformedPayload)
	}

	zap.L().Info("Processing stock.adjusted event",
		zap.String("productId", payload.ProductID),
		zap.Int("stockQty", *payload.StockQty),
		zap.String("traceId", event.TraceID),
	)

	_, err := h.updater.Handle(ctx, &product.UpdateStockRequest{
		ID:       payload.ProductID,
		StockQty: payload.StockQty,
	})
	if err != nil {
		return fmt.Errorf("failed to update stock of product %s: %w", payload.ProductID, err)
	}

	return nil
}
