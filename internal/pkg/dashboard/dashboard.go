// Package dashboard derives the overview counters shown above the portal tabs.
// Summaries are recomputed from the record store on every request.
package dashboard

import (
	"context"
	"fmt"

	"github.com/enternet/portal/app/models"
	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/billing"
	"github.com/enternet/portal/internal/pkg/support"
)

// Summary holds every overview counter
type Summary struct {
	Outstanding    billing.Outstanding  `json:"outstanding"`
	Tickets        support.TicketCounts `json:"tickets"`
	ActiveProducts []string             `json:"active_products"`
	ServiceStatus  string               `json:"service_status"`
}

// ServiceStatusActive is reported while every product is operational
const ServiceStatusActive = "Activo"

// Build computes the summary from complete invoice and ticket collections
func Build(invoices []models.Invoice, tickets []models.Ticket, rate float64) Summary {
	return Summary{
		Outstanding:    billing.ComputeOutstanding(invoices, rate),
		Tickets:        support.CountTickets(tickets),
		ActiveProducts: models.Products(),
		ServiceStatus:  ServiceStatusActive,
	}
}

// Load reads both collections from the repositories and builds the summary
func Load(ctx context.Context, repos *repository.Repositories, rate float64) (Summary, error) {
	invoices, err := repos.Invoice.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load invoices: %w", err)
	}
	tickets, err := repos.Ticket.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load tickets: %w", err)
	}
	return Build(invoices, tickets, rate), nil
}
