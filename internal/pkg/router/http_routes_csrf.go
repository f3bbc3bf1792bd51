package router

import (
	"strings"
	"time"

	"github.com/enternet/portal/app/controllers"
	"github.com/enternet/portal/internal/pkg/env"
	"github.com/enternet/portal/internal/pkg/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:" + controllers.CSRFFormKey,
		ContextKey:     controllers.CSRFContextKey,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}
	if storage := session.NewRedisStorage(3); storage != nil {
		csrfConf.Storage = storage
	}

	group := app.Group("", csrf.New(csrfConf))
	group.Get("/", controllers.HandlePortal)

	// export must be registered before the :id deep link
	group.Get("/invoices/export.csv", controllers.HandleExportInvoices)
	group.Get("/invoices/:id", controllers.HandleInvoiceRedirect)
	group.Get("/tickets/:id", controllers.HandleTicketRedirect)

	group.Post("/support/tickets", controllers.HandleCreateTicket)
	group.Post("/tickets/:id/comments", controllers.HandleTicketComment)
}
