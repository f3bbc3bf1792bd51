package router

import (
	"time"

	apiv1 "github.com/enternet/portal/internal/api/v1"
	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiterConfig()))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer(repository.GetGlobalFactory().GetRepositories())
	apiv1.RegisterHandlers(v1, apiServer)
}

// limiterConfig shares rate limits across instances through redis when a
// cache is configured
func limiterConfig() limiter.Config {
	cfg := limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
	}
	if storage := session.NewRedisStorage(2); storage != nil {
		cfg.Storage = storage
	}
	return cfg
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
