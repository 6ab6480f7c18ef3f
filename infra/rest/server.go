package rest

import (
	"context"
	"inventory/app/category"
	"inventory/app/product"
	"inventory/internal/middleware"
	"inventory/pkg/events"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Categories category.Repository
	Products   product.Repository

	// Optional collaborators. Leave nil to disable.
	Publisher         events.Publisher
	Cache             product.Cache
	DashboardCacheTTL time.Duration
	Store             Pinger
}

func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
		ErrorHandler: writeError,
	})

	app.Use(middleware.NewRequestIDMiddleware(), middleware.NewRequestLoggerMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/health/ready", readiness(deps.Store))

	api := app.Group("/api")
	registerCategoryRoutes(api.Group("/categories"), deps)
	registerProductRoutes(api.Group("/products"), deps)

	return app
}

func registerCategoryRoutes(r fiber.Router, deps Dependencies) {
	listHandler := category.NewListCategoriesHandler(deps.Categories)
	getHandler := category.NewGetCategoryHandler(deps.Categories)
	createHandler := category.NewCreateCategoryHandler(deps.Categories, deps.Publisher)
	updateHandler := category.NewUpdateCategoryHandler(deps.Categories, deps.Publisher)
	deleteHandler := category.NewDeleteCategoryHandler(deps.Categories, deps.Publisher)

	r.Get("/", handle[category.ListCategoriesRequest, category.ListCategoriesResponse](listHandler))
	r.Get("/:id", handle[category.GetCategoryRequest, category.GetCategoryResponse](getHandler))
	r.Post("/", handle[category.CreateCategoryRequest, category.CreateCategoryResponse](createHandler))
	r.Put("/:id", handle[category.UpdateCategoryRequest, category.UpdateCategoryResponse](updateHandler))
	r.Delete("/:id", handle[category.DeleteCategoryRequest, category.DeleteCategoryResponse](deleteHandler))
}

func registerProductRoutes(r fiber.Router, deps Dependencies) {
	listHandler := product.NewListProductsHandler(deps.Products)
	getHandler := product.NewGetProductHandler(deps.Products)
	createHandler := product.NewCreateProductHandler(deps.Products, deps.Categories, deps.Publisher, deps.Cache)
	updateHandler := product.NewUpdateProductHandler(deps.Products, deps.Categories, deps.Publisher, deps.Cache)
	deleteHandler := product.NewDeleteProductHandler(deps.Products, deps.Publisher, deps.Cache)
	stockHandler := product.NewUpdateStockHandler(deps.Products, deps.Publisher, deps.Cache)
	dashboardHandler := product.NewDashboardHandler(deps.Products, deps.Cache, deps.DashboardCacheTTL)

	r.Get("/", handle[product.ListProductsRequest, product.ListProductsResponse](listHandler))
	// Registered before /:id so "dashboard" is not taken for an id.
	r.Get("/dashboard", handle[product.DashboardRequest, product.DashboardResponse](dashboardHandler))
	r.Get("/:id", handle[product.GetProductRequest, product.GetProductResponse](getHandler))
	r.Post("/", handle[product.CreateProductRequest, product.CreateProductResponse](createHandler))
	r.Put("/:id", handle[product.UpdateProductRequest, product.UpdateProductResponse](updateHandler))
	r.Patch("/:id/stock", handle[product.UpdateStockRequest, product.UpdateStockResponse](stockHandler))
	r.Delete("/:id", handle[product.DeleteProductRequest, product.DeleteProductResponse](deleteHandler))
}

func readiness(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil {
			return c.JSON(fiber.Map{"status": "ok"})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"error":  err.Error(),
			})
		}

		return c.JSON(fiber.Map{"status": "ok"})
	}
}
