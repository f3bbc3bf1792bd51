package router

import (
	"github.com/enternet/portal/app/controllers"
	"github.com/enternet/portal/internal/pkg/middleware"
	"github.com/enternet/portal/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize portal controller with repositories
	controllers.InitializePortalController()

	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
