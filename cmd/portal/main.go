package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/cache"
	"github.com/enternet/portal/internal/pkg/database"
	"github.com/enternet/portal/internal/pkg/env"
	"github.com/enternet/portal/internal/pkg/logger"
	"github.com/enternet/portal/internal/pkg/middleware"
	"github.com/enternet/portal/internal/pkg/router"
)

func main() {
	app := NewApplication()
	addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000"))
	if err := app.Listen(addr); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	logger.Setup(logger.Config{
		Level:  env.GetEnv("LOG_LEVEL", "info"),
		Format: env.GetEnv("LOG_FORMAT", "text"),
	})

	if database.UsesDatabase() {
		database.SetupDatabase()
		repository.InitializeFactory(database.GetDB())
	} else {
		repository.InitializeFactory(nil)
	}
	cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/portal to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	engine.Reload(env.IsDev())

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    1 << 20,
	})

	// recovery and logging
	app.Use(recover.New(), fiberlogger.New())

	// fiber metrics, behind basic auth once credentials are configured
	metrics := []fiber.Handler{monitor.New(monitor.Config{Title: "Enternet Portal Metrics"})}
	if user := env.GetEnv("METRICS_USER", ""); user != "" {
		auth := basicauth.New(basicauth.Config{
			Users: map[string]string{user: env.GetEnv("METRICS_PASSWORD", "")},
		})
		metrics = append([]fiber.Handler{auth}, metrics...)
	}
	app.Get("/metrics", metrics...)

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
		Title:    "Enternet Portal API",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	slog.Info("Portal configured",
		"record_store", env.GetEnv("RECORD_STORE", "memory"),
		"cache", cache.Enabled(),
		"dev", env.IsDev(),
	)
	return app
}
