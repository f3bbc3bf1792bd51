package support

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/enternet/portal/internal/pkg/apperror"
)

// Receipt acknowledges a request accepted by the support desk
type Receipt struct {
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Desk accepts new tickets and replies on behalf of the support backend
type Desk interface {
	SubmitTicket(ctx context.Context, req TicketRequest) (Receipt, error)
	SubmitComment(ctx context.Context, req CommentRequest) (Receipt, error)
}

// LogDesk validates requests and records them in the log. It never changes
// the ticket collection; a real support backend takes over ticket creation.
type LogDesk struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewLogDesk creates a desk writing to logger, or to the default logger when nil
func NewLogDesk(logger *slog.Logger) *LogDesk {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDesk{logger: logger, now: time.Now}
}

// SubmitTicket validates and records a new ticket request
func (d *LogDesk) SubmitTicket(ctx context.Context, req TicketRequest) (Receipt, error) {
	req.Normalize()
	if fields := req.Validate(); fields != nil {
		return Receipt{}, apperror.NewValidationError("invalid ticket request", fields)
	}

	receipt := d.newReceipt()
	d.logger.InfoContext(ctx, "Support ticket submitted",
		"reference", receipt.Reference,
		"product", req.ProductName(),
		"priority", req.Priority,
		"title", req.Title,
	)
	return receipt, nil
}

// SubmitComment validates and records a reply to a ticket
func (d *LogDesk) SubmitComment(ctx context.Context, req CommentRequest) (Receipt, error) {
	req.Normalize()
	if fields := req.Validate(); fields != nil {
		return Receipt{}, apperror.NewValidationError("invalid comment", fields)
	}

	receipt := d.newReceipt()
	d.logger.InfoContext(ctx, "Support comment submitted",
		"reference", receipt.Reference,
		"ticket_id", req.TicketID,
		"length", len(req.Body),
	)
	return receipt, nil
}

func (d *LogDesk) newReceipt() Receipt {
	return Receipt{Reference: uuid.NewString(), SubmittedAt: d.now().UTC()}
}
