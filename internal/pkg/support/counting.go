package support

import (
	"context"
	"log/slog"
)

// Counter fields incremented for accepted requests
const (
	CounterTickets  = "tickets"
	CounterComments = "comments"
)

// CountingDesk counts accepted requests before handing back the receipt.
// Counter failures are logged and never reject a request.
type CountingDesk struct {
	next Desk
	add  func(ctx context.Context, field string) error
}

// NewCountingDesk wraps next, calling add once per accepted request
func NewCountingDesk(next Desk, add func(ctx context.Context, field string) error) *CountingDesk {
	return &CountingDesk{next: next, add: add}
}

func (d *CountingDesk) SubmitTicket(ctx context.Context, req TicketRequest) (Receipt, error) {
	receipt, err := d.next.SubmitTicket(ctx, req)
	if err != nil {
		return receipt, err
	}
	d.count(ctx, CounterTickets)
	d.count(ctx, CounterTickets+":"+req.normalizedProduct())
	return receipt, nil
}

func (d *CountingDesk) SubmitComment(ctx context.Context, req CommentRequest) (Receipt, error) {
	receipt, err := d.next.SubmitComment(ctx, req)
	if err != nil {
		return receipt, err
	}
	d.count(ctx, CounterComments)
	return receipt, nil
}

func (d *CountingDesk) count(ctx context.Context, field string) {
	if err := d.add(ctx, field); err != nil {
		slog.WarnContext(ctx, "Failed to count support request", "field", field, "error", err)
	}
}
