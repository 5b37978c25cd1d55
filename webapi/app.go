// Package webapi exposes the ledger over HTTP with Fiber. Handlers parse
// requests and delegate to the services; all validation failures and
// domain errors surface through the central error handler.
package webapi

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/service"
	"github.com/meucofre/meucofre/pkg/validation"
)

// Services bundles the application services the API serves.
type Services struct {
	Accounts     *service.AccountService
	Transactions *service.TransactionService
	Installments *service.InstallmentService
	Investments  *service.InvestmentService
	Points       *service.PointsService
	Ai           *service.AiService
}

// New builds the Fiber app with rate limiting, panic recovery and all
// routes registered.
func New(cfg *config.App, svcs Services, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg, log),
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})
	app.Get("/health", Health(cfg.Env))

	AccountRoutes(app, svcs.Accounts, cfg)
	TransactionRoutes(app, svcs.Transactions, cfg)
	InstallmentRoutes(app, svcs.Installments, cfg)
	InvestmentRoutes(app, svcs.Investments, cfg)
	PointsRoutes(app, svcs.Points, cfg)
	AiRoutes(app, svcs.Ai, cfg)

	return app
}

// Health reports liveness with process uptime in seconds and the
// running environment.
func Health(env string) fiber.Handler {
	start := time.Now()
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"environment": env,
			"uptime":      time.Since(start).Seconds(),
			"timestamp":   time.Now().UnixMilli(),
		})
	}
}

// errorHandler converts service errors into problem-details responses.
// Validation failures carry their per-field reasons; unexpected errors
// hide their detail outside development.
func errorHandler(cfg *config.App, log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Validation failed", verr.Fields)
		}

		status := ErrorToStatusCode(err)
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		detail := err.Error()
		if status == fiber.StatusInternalServerError {
			log.Error("unhandled error", "path", c.OriginalURL(), "error", err)
			if cfg.Env == "production" {
				detail = "An internal error occurred"
			}
		}
		return ErrorResponseJSON(c, status, statusTitle(status), detail)
	}
}

func statusTitle(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusServiceUnavailable:
		return "Service Unavailable"
	case fiber.StatusBadRequest:
		return "Bad Request"
	default:
		return "Internal Server Error"
	}
}
