package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Liveness check
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// List invoices
	// (GET /invoices)
	ListInvoices(c *fiber.Ctx, params ListParams) error
	// Get an invoice
	// (GET /invoices/{id})
	GetInvoice(c *fiber.Ctx, id string) error
	// List support tickets
	// (GET /tickets)
	ListTickets(c *fiber.Ctx, params ListParams) error
	// Get a support ticket
	// (GET /tickets/{id})
	GetTicket(c *fiber.Ctx, id string) error
	// Dashboard summary
	// (GET /summary)
	GetSummary(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetPing operation middleware
func (siw *ServerInterfaceWrapper) GetPing(c *fiber.Ctx) error {
	return siw.Handler.GetPing(c)
}

// ListInvoices operation middleware
func (siw *ServerInterfaceWrapper) ListInvoices(c *fiber.Ctx) error {
	var params ListParams
	if err := c.QueryParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters: "+err.Error())
	}
	return siw.Handler.ListInvoices(c, params)
}

// GetInvoice operation middleware
func (siw *ServerInterfaceWrapper) GetInvoice(c *fiber.Ctx) error {
	return siw.Handler.GetInvoice(c, c.Params("id"))
}

// ListTickets operation middleware
func (siw *ServerInterfaceWrapper) ListTickets(c *fiber.Ctx) error {
	var params ListParams
	if err := c.QueryParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters: "+err.Error())
	}
	return siw.Handler.ListTickets(c, params)
}

// GetTicket operation middleware
func (siw *ServerInterfaceWrapper) GetTicket(c *fiber.Ctx) error {
	return siw.Handler.GetTicket(c, c.Params("id"))
}

// GetSummary operation middleware
func (siw *ServerInterfaceWrapper) GetSummary(c *fiber.Ctx) error {
	return siw.Handler.GetSummary(c)
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.Get("/ping", wrapper.GetPing)
	router.Get("/invoices", wrapper.ListInvoices)
	router.Get("/invoices/:id", wrapper.GetInvoice)
	router.Get("/tickets", wrapper.ListTickets)
	router.Get("/tickets/:id", wrapper.GetTicket)
	router.Get("/summary", wrapper.GetSummary)
}
