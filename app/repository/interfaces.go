package repository

import (
	"context"
	"errors"

	"github.com/enternet/portal/app/models"
)

// ErrNotFound is returned when a record with the requested ID does not exist
var ErrNotFound = errors.New("record not found")

// InvoiceRepository defines the read access to the invoice collection.
// List returns invoices in their authoritative order.
type InvoiceRepository interface {
	List(ctx context.Context) ([]models.Invoice, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
}

// TicketRepository defines the read access to the ticket collection.
// List returns tickets in their authoritative order.
type TicketRepository interface {
	List(ctx context.Context) ([]models.Ticket, error)
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
}
