package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/metrics/counter"
	"github.com/enternet/portal/internal/pkg/support"
)

// Global portal controller instance
var portalController *PortalController

// InitializePortalController initializes the global portal controller with
// the global repositories and a logging support desk that counts accepted
// requests in the cache
func InitializePortalController() {
	repos := repository.GetGlobalFactory().GetRepositories()
	desk := support.NewCountingDesk(support.NewLogDesk(nil), counter.Add)
	portalController = NewPortalController(repos, desk)
}

// SetPortalController replaces the global portal controller instance
func SetPortalController(pc *PortalController) {
	portalController = pc
}

// GetPortalController returns the global portal controller instance
func GetPortalController() *PortalController {
	if portalController == nil {
		InitializePortalController()
	}
	return portalController
}

// Adapter functions to maintain compatibility with existing router

// HandlePortal - Adapter for the portal page
func HandlePortal(c *fiber.Ctx) error {
	return GetPortalController().HandlePortal(c)
}

// HandleInvoiceRedirect - Adapter for invoice deep links
func HandleInvoiceRedirect(c *fiber.Ctx) error {
	return GetPortalController().HandleInvoiceRedirect(c)
}

// HandleTicketRedirect - Adapter for ticket deep links
func HandleTicketRedirect(c *fiber.Ctx) error {
	return GetPortalController().HandleTicketRedirect(c)
}

// HandleExportInvoices - Adapter for the invoice CSV export
func HandleExportInvoices(c *fiber.Ctx) error {
	return GetPortalController().HandleExportInvoices(c)
}

// HandleCreateTicket - Adapter for the new-ticket form
func HandleCreateTicket(c *fiber.Ctx) error {
	return GetPortalController().HandleCreateTicket(c)
}

// HandleTicketComment - Adapter for ticket replies
func HandleTicketComment(c *fiber.Ctx) error {
	return GetPortalController().HandleTicketComment(c)
}
