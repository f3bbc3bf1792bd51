// Package query selects the visible subset of a record collection from a
// status filter and a free-text search term.
package query

import (
	"strings"

	"github.com/enternet/portal/app/models"
)

// StatusAll is the status filter value that matches every record
const StatusAll = "all"

// Criteria is a status filter plus a search term.
// Status is compared exactly; Term is matched case-insensitively and is not trimmed.
type Criteria struct {
	Status string
	Term   string
}

// NewCriteria builds criteria, treating an empty status as StatusAll
func NewCriteria(status, term string) Criteria {
	if status == "" {
		status = StatusAll
	}
	return Criteria{Status: status, Term: term}
}

// MatchesStatus reports whether status passes the filter
func (c Criteria) MatchesStatus(status string) bool {
	return c.Status == StatusAll || c.Status == status
}

// MatchesText reports whether the term occurs in at least one field
func (c Criteria) MatchesText(fields ...string) bool {
	term := strings.ToLower(c.Term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Filter returns, in input order, the records matching both the status filter
// and the search term. The result is never nil.
func Filter[T any](records []T, c Criteria, statusOf func(T) string, searchable func(T) []string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.MatchesStatus(statusOf(r)) && c.MatchesText(searchable(r)...) {
			out = append(out, r)
		}
	}
	return out
}

// Invoices filters invoices, searching the ID and the description
func Invoices(invoices []models.Invoice, c Criteria) []models.Invoice {
	return Filter(invoices, c,
		func(i models.Invoice) string { return string(i.Status) },
		func(i models.Invoice) []string { return []string{i.ID, i.Description} },
	)
}

// Tickets filters tickets, searching the title and the description
func Tickets(tickets []models.Ticket, c Criteria) []models.Ticket {
	return Filter(tickets, c,
		func(t models.Ticket) string { return string(t.Status) },
		func(t models.Ticket) []string { return []string{t.Title, t.Description} },
	)
}
