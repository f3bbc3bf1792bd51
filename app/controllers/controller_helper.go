package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// CSRF token lookup shared with the router's csrf middleware
const (
	CSRFFormKey    = "_csrf"
	CSRFContextKey = "csrf"
)

// csrfToken returns the token the csrf middleware stored for this request,
// or "" when the route is not protected
func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(CSRFContextKey).(string); ok {
		return token
	}
	return ""
}
