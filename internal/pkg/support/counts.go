// Package support holds the ticket side of the portal: dashboard counters,
// the canned conversation shown in ticket details, and intake of new tickets
// and replies.
package support

import "github.com/enternet/portal/app/models"

// TicketCounts holds the number of open and in-progress tickets
type TicketCounts struct {
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
}

// CountTickets tallies open and in-progress tickets independently
func CountTickets(tickets []models.Ticket) TicketCounts {
	var counts TicketCounts
	for _, t := range tickets {
		switch t.Status {
		case models.TicketStatusOpen:
			counts.Open++
		case models.TicketStatusInProgress:
			counts.InProgress++
		}
	}
	return counts
}
