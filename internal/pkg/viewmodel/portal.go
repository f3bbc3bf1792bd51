package viewmodel

import (
	"fmt"
	"strings"

	"github.com/enternet/portal/app/models"
	"github.com/enternet/portal/internal/pkg/badge"
	"github.com/enternet/portal/internal/pkg/billing"
	"github.com/enternet/portal/internal/pkg/currency"
	"github.com/enternet/portal/internal/pkg/dashboard"
	"github.com/enternet/portal/internal/pkg/query"
	"github.com/enternet/portal/internal/pkg/support"
)

// Routes the portal page links to
const (
	PortalPath       = "/"
	ExportPath       = "/invoices/export.csv"
	NewTicketPath    = "/support/tickets"
	commentPathFmt   = "/tickets/%s/comments"
	invoiceAnchorPfx = "invoice-"
	ticketAnchorPfx  = "ticket-"
)

// SummaryCards are the four overview cards above the tabs
type SummaryCards struct {
	OutstandingCount  int
	OutstandingTotal  string
	OpenTickets       int
	InProgressTickets int
	ProductCount      int
	Products          string
	ServiceStatus     string
}

// InvoiceRow is one line of the invoice table together with its detail dialog
type InvoiceRow struct {
	ID          string
	Anchor      string
	Date        string
	Product     string
	Description string
	DueDate     string
	AmountCLP   string
	AmountUF    string
	Status      badge.Badge
	Overdue     bool
	Payable     bool
	Transfer    *billing.TransferDetails
	DetailHref  string
	CloseHref   string
	Open        bool
}

// TicketCard is one ticket of the support list together with its detail dialog
type TicketCard struct {
	ID            string
	Anchor        string
	Title         string
	Description   string
	Product       string
	Created       string
	LastUpdate    string
	Status        badge.Badge
	Priority      badge.Badge
	Conversation  []support.Message
	DetailHref    string
	CloseHref     string
	CommentAction string
	Comment       CommentForm
	CSRF          string
	Open          bool
}

// CommentForm carries a rejected reply back into its dialog
type CommentForm struct {
	Body   string
	Errors map[string]string
}

// NewTicketForm is the create-ticket dialog
type NewTicketForm struct {
	Open            bool
	Action          string
	CSRF            string
	Values          support.TicketRequest
	Errors          map[string]string
	ProductOptions  []badge.Option
	PriorityOptions []badge.Option
}

// PortalPage is everything the portal template renders
type PortalPage struct {
	Layout
	State                PortalState
	Summary              SummaryCards
	Invoices             []InvoiceRow
	Tickets              []TicketCard
	InvoiceFilterOptions []badge.Option
	TicketFilterOptions  []badge.Option
	NewTicket            NewTicketForm
	IsInvoicesTab        bool
	IsSupportTab         bool
	TabInvoicesHref      string
	TabSupportHref       string
	ExportHref           string
	NewTicketHref        string
	CloseHref            string
	TotalInvoices        int
	TotalTickets         int
}

// PortalInput is what the page builder needs from a request
type PortalInput struct {
	Layout    Layout
	State     PortalState
	Invoices  []models.Invoice
	Tickets   []models.Ticket
	Summary   dashboard.Summary
	Formatter currency.Formatter

	// set when a submitted form is re-rendered with errors
	NewTicketValues support.TicketRequest
	NewTicketErrors map[string]string
	CommentTicketID string
	CommentForm     CommentForm
}

// BuildPortalPage filters the collections for the current state and turns
// them into display rows
func BuildPortalPage(in PortalInput) PortalPage {
	s := in.State
	f := in.Formatter

	page := PortalPage{
		Layout:               in.Layout,
		State:                s,
		Summary:              buildSummary(in.Summary, f),
		InvoiceFilterOptions: badge.InvoiceFilterOptions(),
		TicketFilterOptions:  badge.TicketFilterOptions(),
		IsInvoicesTab:        s.Tab != TabSupport,
		IsSupportTab:         s.Tab == TabSupport,
		TabInvoicesHref:      s.WithTab(TabInvoices).Href(PortalPath),
		TabSupportHref:       s.WithTab(TabSupport).Href(PortalPath),
		ExportHref:           s.WithoutDialogs().Href(ExportPath),
		NewTicketHref:        s.WithNewTicket().Href(PortalPath),
		CloseHref:            s.WithoutDialogs().Href(PortalPath),
		TotalInvoices:        len(in.Invoices),
		TotalTickets:         len(in.Tickets),
		NewTicket: NewTicketForm{
			Open:            s.NewTicketOpen,
			Action:          s.WithTab(TabSupport).Href(NewTicketPath),
			CSRF:            in.Layout.CSRF,
			Values:          in.NewTicketValues,
			Errors:          in.NewTicketErrors,
			ProductOptions:  badge.ProductOptions(),
			PriorityOptions: badge.PriorityOptions(),
		},
	}

	for _, inv := range query.Invoices(in.Invoices, s.InvoiceCriteria()) {
		page.Invoices = append(page.Invoices, buildInvoiceRow(inv, s, f))
	}
	for _, t := range query.Tickets(in.Tickets, s.TicketCriteria()) {
		card := buildTicketCard(t, s)
		card.CSRF = in.Layout.CSRF
		if t.ID == in.CommentTicketID {
			card.Comment = in.CommentForm
		}
		page.Tickets = append(page.Tickets, card)
	}
	return page
}

func buildSummary(s dashboard.Summary, f currency.Formatter) SummaryCards {
	return SummaryCards{
		OutstandingCount:  s.Outstanding.Count,
		OutstandingTotal:  f.FormatTotal(s.Outstanding.TotalCLP),
		OpenTickets:       s.Tickets.Open,
		InProgressTickets: s.Tickets.InProgress,
		ProductCount:      len(s.ActiveProducts),
		Products:          strings.Join(s.ActiveProducts, ", "),
		ServiceStatus:     s.ServiceStatus,
	}
}

func buildInvoiceRow(inv models.Invoice, s PortalState, f currency.Formatter) InvoiceRow {
	row := InvoiceRow{
		ID:          inv.ID,
		Anchor:      invoiceAnchorPfx + inv.ID,
		Date:        inv.Date,
		Product:     inv.Product,
		Description: inv.Description,
		DueDate:     inv.DueDate,
		AmountCLP:   f.FormatCLP(inv.UFValue),
		AmountUF:    f.FormatUFAmount(inv.UFValue),
		Status:      badge.InvoiceStatus(inv.Status),
		Overdue:     inv.IsOverdue(),
		Payable:     !inv.IsPaid(),
		DetailHref:  s.WithInvoice(inv.ID).Href(PortalPath),
		CloseHref:   s.WithoutDialogs().Href(PortalPath),
		Open:        s.SelectedInvoice == inv.ID,
	}
	if row.Payable {
		transfer := billing.VendorTransferDetails()
		row.Transfer = &transfer
	}
	return row
}

func buildTicketCard(t models.Ticket, s PortalState) TicketCard {
	return TicketCard{
		ID:            t.ID,
		Anchor:        ticketAnchorPfx + t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Product:       t.Product,
		Created:       t.Created,
		LastUpdate:    t.LastUpdate,
		Status:        badge.TicketStatus(t.Status),
		Priority:      badge.Priority(t.Priority),
		Conversation:  support.Conversation(t),
		DetailHref:    s.WithTicket(t.ID).Href(PortalPath),
		CloseHref:     s.WithoutDialogs().Href(PortalPath),
		CommentAction: s.WithTab(TabSupport).Href(CommentPath(t.ID)),
		Open:          s.SelectedTicket == t.ID,
	}
}

// CommentPath is the reply endpoint of a ticket
func CommentPath(ticketID string) string {
	return fmt.Sprintf(commentPathFmt, ticketID)
}
