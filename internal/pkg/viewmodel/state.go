package viewmodel

import (
	"net/url"

	"github.com/enternet/portal/internal/pkg/query"
)

// Tabs of the portal page
const (
	TabInvoices = "invoices"
	TabSupport  = "support"
)

// Query string keys carrying the portal UI state
const (
	ParamTab           = "tab"
	ParamInvoiceStatus = "invoice_status"
	ParamTicketStatus  = "ticket_status"
	ParamSearch        = "q"
	ParamInvoice       = "invoice"
	ParamTicket        = "ticket"
	ParamNewTicket     = "new_ticket"
)

// PortalState is the UI state of one page view. It lives in the query string
// only, so a fresh load starts from the defaults. The search term is shared by
// both tabs and survives tab switches.
type PortalState struct {
	Tab             string
	InvoiceStatus   string
	TicketStatus    string
	Search          string
	SelectedInvoice string
	SelectedTicket  string
	NewTicketOpen   bool
}

// DefaultState is the state of a freshly loaded page
func DefaultState() PortalState {
	return PortalState{Tab: TabInvoices, InvoiceStatus: query.StatusAll, TicketStatus: query.StatusAll}
}

// ParseState reads the UI state through get, which returns "" for missing keys
func ParseState(get func(key string) string) PortalState {
	s := DefaultState()
	if get(ParamTab) == TabSupport {
		s.Tab = TabSupport
	}
	if v := get(ParamInvoiceStatus); v != "" {
		s.InvoiceStatus = v
	}
	if v := get(ParamTicketStatus); v != "" {
		s.TicketStatus = v
	}
	s.Search = get(ParamSearch)
	s.SelectedInvoice = get(ParamInvoice)
	s.SelectedTicket = get(ParamTicket)
	s.NewTicketOpen = get(ParamNewTicket) == "1"
	return s
}

// InvoiceCriteria is the query for the billing tab
func (s PortalState) InvoiceCriteria() query.Criteria {
	return query.NewCriteria(s.InvoiceStatus, s.Search)
}

// TicketCriteria is the query for the support tab
func (s PortalState) TicketCriteria() query.Criteria {
	return query.NewCriteria(s.TicketStatus, s.Search)
}

// Values encodes the state, omitting defaults
func (s PortalState) Values() url.Values {
	v := url.Values{}
	if s.Tab != "" && s.Tab != TabInvoices {
		v.Set(ParamTab, s.Tab)
	}
	if s.InvoiceStatus != "" && s.InvoiceStatus != query.StatusAll {
		v.Set(ParamInvoiceStatus, s.InvoiceStatus)
	}
	if s.TicketStatus != "" && s.TicketStatus != query.StatusAll {
		v.Set(ParamTicketStatus, s.TicketStatus)
	}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.SelectedInvoice != "" {
		v.Set(ParamInvoice, s.SelectedInvoice)
	}
	if s.SelectedTicket != "" {
		v.Set(ParamTicket, s.SelectedTicket)
	}
	if s.NewTicketOpen {
		v.Set(ParamNewTicket, "1")
	}
	return v
}

// Href returns the page URL at path reproducing this state
func (s PortalState) Href(path string) string {
	if encoded := s.Values().Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

// WithTab returns the state switched to another tab; filters and search are kept
func (s PortalState) WithTab(tab string) PortalState {
	s.Tab = tab
	return s.WithoutDialogs()
}

// WithoutDialogs returns the state with every dialog closed
func (s PortalState) WithoutDialogs() PortalState {
	s.SelectedInvoice = ""
	s.SelectedTicket = ""
	s.NewTicketOpen = false
	return s
}

// WithInvoice returns the state with the detail dialog of an invoice open
func (s PortalState) WithInvoice(id string) PortalState {
	s = s.WithoutDialogs()
	s.Tab = TabInvoices
	s.SelectedInvoice = id
	return s
}

// WithTicket returns the state with the detail dialog of a ticket open
func (s PortalState) WithTicket(id string) PortalState {
	s = s.WithoutDialogs()
	s.Tab = TabSupport
	s.SelectedTicket = id
	return s
}

// WithNewTicket returns the state with the new-ticket dialog open
func (s PortalState) WithNewTicket() PortalState {
	s = s.WithoutDialogs()
	s.Tab = TabSupport
	s.NewTicketOpen = true
	return s
}
