package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"transaction-management/docs"
	"transaction-management/internal/api/handlers"
	"transaction-management/internal/dto"
)

func SetupRouter(txnHandler *handlers.TransactionHandler, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled request error", zap.Error(err))
				return c.Status(code).JSON(dto.Error(code, "Internal server error"))
			}
			return c.Status(code).JSON(dto.Error(code, err.Error()))
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.SuccessMessage("OK"))
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.Post("", txnHandler.Create)
	transactions.Get("", txnHandler.List)
	transactions.Get("/reference/:reference", txnHandler.GetByReference)
	transactions.Delete("/reference/:reference", txnHandler.DeleteByReference)
	transactions.Get("/:id", txnHandler.GetByID)
	transactions.Put("/:id", txnHandler.Update)
	transactions.Delete("/:id", txnHandler.Delete)

	v1.Post("/cache/clear", txnHandler.ClearCache)

	return app
}
