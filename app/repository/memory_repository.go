package repository

import (
	"context"
	"slices"

	"github.com/enternet/portal/app/models"
)

// memoryInvoiceRepository serves a fixed invoice collection held in memory
type memoryInvoiceRepository struct {
	invoices []models.Invoice
}

// NewMemoryInvoiceRepository creates an invoice repository over a private copy of invoices
func NewMemoryInvoiceRepository(invoices []models.Invoice) InvoiceRepository {
	return &memoryInvoiceRepository{invoices: slices.Clone(invoices)}
}

// List returns a copy of all invoices so callers cannot mutate the collection
func (r *memoryInvoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	_ = ctx
	return slices.Clone(r.invoices), nil
}

// GetByID retrieves an invoice by its identifier
func (r *memoryInvoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	_ = ctx
	for _, invoice := range r.invoices {
		if invoice.ID == id {
			found := invoice
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// memoryTicketRepository serves a fixed ticket collection held in memory
type memoryTicketRepository struct {
	tickets []models.Ticket
}

// NewMemoryTicketRepository creates a ticket repository over a private copy of tickets
func NewMemoryTicketRepository(tickets []models.Ticket) TicketRepository {
	return &memoryTicketRepository{tickets: slices.Clone(tickets)}
}

// List returns a copy of all tickets so callers cannot mutate the collection
func (r *memoryTicketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	_ = ctx
	return slices.Clone(r.tickets), nil
}

// GetByID retrieves a ticket by its identifier
func (r *memoryTicketRepository) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	_ = ctx
	for _, ticket := range r.tickets {
		if ticket.ID == id {
			found := ticket
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
