package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/cache"
	"github.com/enternet/portal/internal/pkg/currency"
	"github.com/enternet/portal/internal/pkg/dashboard"
	"github.com/enternet/portal/internal/pkg/metrics/counter"
	"github.com/enternet/portal/internal/pkg/query"
)

// APIServer implements the ServerInterface on the record store
type APIServer struct {
	repos     *repository.Repositories
	formatter currency.Formatter
}

// NewAPIServer creates a new API server instance
func NewAPIServer(repos *repository.Repositories) *APIServer {
	return &APIServer{repos: repos, formatter: currency.New()}
}

func criteria(params ListParams) query.Criteria {
	var status, term string
	if params.Status != nil {
		status = *params.Status
	}
	if params.Q != nil {
		term = *params.Q
	}
	return query.NewCriteria(status, term)
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping:  "pong",
		Cache: "disabled",
	}
	if cache.GetClient() != nil {
		response.Cache = "ok"
		if err := cache.Ping(c.UserContext()); err != nil {
			response.Cache = "unavailable"
		} else if intake, err := counter.Snapshot(c.UserContext()); err == nil && len(intake) > 0 {
			response.Intake = intake
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// ListInvoices returns the invoices matching ?status= and ?q= in seed order
func (s *APIServer) ListInvoices(c *fiber.Ctx, params ListParams) error {
	invoices, err := s.repos.Invoice.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}

	visible := query.Invoices(invoices, criteria(params))
	out := InvoiceList{Items: make([]Invoice, 0, len(visible)), Count: len(visible)}
	for _, inv := range visible {
		out.Items = append(out.Items, newInvoice(inv, s.formatter))
	}
	return c.JSON(out)
}

// GetInvoice returns a single invoice
func (s *APIServer) GetInvoice(c *fiber.Ctx, id string) error {
	inv, err := s.repos.Invoice.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(newInvoice(*inv, s.formatter))
}

// ListTickets returns the tickets matching ?status= and ?q= in seed order
func (s *APIServer) ListTickets(c *fiber.Ctx, params ListParams) error {
	tickets, err := s.repos.Ticket.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("list tickets: %w", err)
	}

	visible := query.Tickets(tickets, criteria(params))
	out := TicketList{Items: make([]Ticket, 0, len(visible)), Count: len(visible)}
	for _, t := range visible {
		out.Items = append(out.Items, newTicket(t, false))
	}
	return c.JSON(out)
}

// GetTicket returns a single ticket with its conversation
func (s *APIServer) GetTicket(c *fiber.Ctx, id string) error {
	t, err := s.repos.Ticket.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(newTicket(*t, true))
}

// GetSummary returns the dashboard counters computed from the full collections
func (s *APIServer) GetSummary(c *fiber.Ctx) error {
	summary, err := dashboard.Load(c.UserContext(), s.repos, s.formatter.Rate)
	if err != nil {
		return err
	}
	return c.JSON(Summary{
		Summary:          summary,
		OutstandingTotal: s.formatter.FormatTotal(summary.Outstanding.TotalCLP),
		UFRate:           s.formatter.Rate,
	})
}
