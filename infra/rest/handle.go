package rest

import (
	"context"
	"errors"
	"inventory/internal/middleware"
	"inventory/pkg/httperror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

// defaulter is implemented by requests whose optional fields have non-zero
// defaults. Defaults are applied before parsing so that present values win.
type defaulter interface {
	SetDefaults()
}

// statusCoder lets a response choose its success status. 204 responses are
// sent without a body.
type statusCoder interface {
	StatusCode() int
}

func handle[R Request, Res Response](handler HandlerInterface[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if d, ok := any(&req).(defaulter); ok {
			d.SetDefaults()
		}

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return writeError(c, httperror.BadRequest(
				"request.invalid_body",
				"Invalid body",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.QueryParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_query_params",
				"Invalid query params",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.ReqHeaderParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_headers",
				"Invalid headers",
				fiber.Map{"error": err.Error()},
			))
		}

		// Path params bind last so the route id cannot be overridden.
		if err := c.ParamsParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_path_params",
				"Invalid path params",
				fiber.Map{"error": err.Error()},
			))
		}

		res, err := handler.Handle(c.UserContext(), &req)
		if err != nil {
			return writeError(c, err)
		}

		status := fiber.StatusOK
		if sc, ok := any(res).(statusCoder); ok {
			status = sc.StatusCode()
		}

		if status == fiber.StatusNoContent {
			return c.SendStatus(status)
		}

		return c.Status(status).JSON(res)
	}
}

func writeError(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		payload := fiber.Map{
			"code":    httpErr.Code,
			"message": httpErr.Message,
		}

		if httpErr.Details != nil {
			payload["details"] = httpErr.Details
		}

		fields := []zap.Field{
			zap.String("code", httpErr.Code),
			zap.String("requestId", middleware.RequestID(c.UserContext())),
			zap.Error(httpErr),
		}
		if httpErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("Handler returned server error", fields...)
		} else {
			zap.L().Warn("Handler returned client error", fields...)
		}

		return c.Status(httpErr.Status).JSON(payload)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		zap.L().Warn("Fiber error", zap.String("message", fiberErr.Message), zap.Error(err))
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"code":    "request.invalid",
			"message": fiberErr.Message,
		})
	}

	zap.L().Error("Unhandled error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "internal_server_error",
		"message": "Internal server error.",
	})
}
