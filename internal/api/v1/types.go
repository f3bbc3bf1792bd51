package apiv1

import (
	"github.com/enternet/portal/app/models"
	"github.com/enternet/portal/internal/pkg/badge"
	"github.com/enternet/portal/internal/pkg/currency"
	"github.com/enternet/portal/internal/pkg/dashboard"
	"github.com/enternet/portal/internal/pkg/support"
)

// Pong defines model for Pong.
type Pong struct {
	Ping  string `json:"ping"`
	Cache string `json:"cache"`
	// Intake counts support requests accepted since the cache was created
	Intake map[string]int64 `json:"intake,omitempty"`
}

// Invoice defines model for Invoice.
type Invoice struct {
	models.Invoice
	StatusLabel string  `json:"status_label"`
	AmountCLP   float64 `json:"amount_clp"`
	Display     string  `json:"display"`
}

// Ticket defines model for Ticket.
type Ticket struct {
	models.Ticket
	StatusLabel   string            `json:"status_label"`
	PriorityLabel string            `json:"priority_label"`
	Conversation  []support.Message `json:"conversation,omitempty"`
}

// InvoiceList defines model for InvoiceList.
type InvoiceList struct {
	Items []Invoice `json:"items"`
	Count int       `json:"count"`
}

// TicketList defines model for TicketList.
type TicketList struct {
	Items []Ticket `json:"items"`
	Count int      `json:"count"`
}

// Summary defines model for Summary.
type Summary struct {
	dashboard.Summary
	OutstandingTotal string  `json:"outstanding_total"`
	UFRate           float64 `json:"uf_rate"`
}

// ListParams defines parameters for ListInvoices and ListTickets.
type ListParams struct {
	Status *string `query:"status"`
	Q      *string `query:"q"`
}

func newInvoice(inv models.Invoice, f currency.Formatter) Invoice {
	return Invoice{
		Invoice:     inv,
		StatusLabel: badge.InvoiceStatus(inv.Status).Label,
		AmountCLP:   f.ToCLP(inv.UFValue),
		Display:     f.FormatUF(inv.UFValue),
	}
}

func newTicket(t models.Ticket, withConversation bool) Ticket {
	out := Ticket{
		Ticket:        t,
		StatusLabel:   badge.TicketStatus(t.Status).Label,
		PriorityLabel: badge.Priority(t.Priority).Label,
	}
	if withConversation {
		out.Conversation = support.Conversation(t)
	}
	return out
}
