package usercontext

import "github.com/gofiber/fiber/v2"

// UserContext represents the customer viewing the portal. The identity
// provider is not wired, so the name comes from configuration or the session.
type UserContext struct {
	CustomerName string `json:"customer_name"`
}

// GetUserContext retrieves the user context from fiber context
// Returns the placeholder customer if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(LocalsKey).(UserContext); ok {
		return ctx
	}
	return UserContext{CustomerName: DefaultCustomerName}
}

// SetUserContext stores the user context for the rest of the request
func SetUserContext(c *fiber.Ctx, uc UserContext) {
	c.Locals(LocalsKey, uc)
}

// GetCustomerName returns the display name of the current customer
func GetCustomerName(c *fiber.Ctx) string {
	return GetUserContext(c).CustomerName
}
