package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enternet/portal/internal/pkg/env"
	"github.com/enternet/portal/internal/pkg/session"
	"github.com/enternet/portal/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the customer context for every request.
// The name comes from the visitor's session, then PORTAL_CUSTOMER_NAME, then
// the placeholder.
func UserContextMiddleware(c *fiber.Ctx) error {
	name := session.GetSessionValue(c, usercontext.KeyCustomerName)
	if name == "" {
		name = env.GetEnv("PORTAL_CUSTOMER_NAME", usercontext.DefaultCustomerName)
	}

	usercontext.SetUserContext(c, usercontext.UserContext{CustomerName: name})
	return c.Next()
}
