package support

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enternet/portal/app/models"
	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/apperror"
)

func TestCountTickets_SeedData(t *testing.T) {
	assert.Equal(t, TicketCounts{Open: 1, InProgress: 1}, CountTickets(repository.SeedTickets()))
}

func TestCountTickets(t *testing.T) {
	tickets := []models.Ticket{
		{Status: models.TicketStatusOpen},
		{Status: models.TicketStatusOpen},
		{Status: models.TicketStatusResolved},
		{Status: "escalated"},
		{Status: models.TicketStatusInProgress},
	}
	assert.Equal(t, TicketCounts{Open: 2, InProgress: 1}, CountTickets(tickets))
	assert.Equal(t, TicketCounts{}, CountTickets(nil))
}

func TestConversation(t *testing.T) {
	tkt := repository.SeedTickets()[0]

	msgs := Conversation(tkt)
	require.Len(t, msgs, 2)
	assert.Equal(t, AuthorCustomer, msgs[0].Author)
	assert.Equal(t, tkt.Created, msgs[0].Date)
	assert.Equal(t, tkt.Description, msgs[0].Body)
	assert.Equal(t, AuthorSupport, msgs[1].Author)
	assert.Equal(t, tkt.LastUpdate, msgs[1].Date)
	assert.Equal(t, AcknowledgementReply, msgs[1].Body)
}

func TestTicketRequest_Validate(t *testing.T) {
	valid := TicketRequest{Product: " Cobru ", Priority: "HIGH", Title: " No imprime ", Description: "La boleta no sale"}
	valid.Normalize()
	assert.Nil(t, valid.Validate())
	assert.Equal(t, "cobru", valid.Product)
	assert.Equal(t, "high", valid.Priority)
	assert.Equal(t, "No imprime", valid.Title)
	assert.Equal(t, models.ProductCobru, valid.ProductName())

	empty := TicketRequest{Title: "   "}
	empty.Normalize()
	fields := empty.Validate()
	assert.Equal(t, "Este campo es obligatorio", fields["product"])
	assert.Equal(t, "Este campo es obligatorio", fields["priority"])
	assert.Equal(t, "Este campo es obligatorio", fields["title"])
	assert.Equal(t, "Este campo es obligatorio", fields["description"])

	bad := TicketRequest{Product: "oracle", Priority: "urgent", Title: strings.Repeat("x", 121), Description: "d"}
	fields = bad.Validate()
	assert.Equal(t, "Selecciona una opción válida", fields["product"])
	assert.Equal(t, "Selecciona una opción válida", fields["priority"])
	assert.Equal(t, "Máximo 120 caracteres", fields["title"])
	assert.NotContains(t, fields, "description")
}

func TestNormalize_StripsMarkup(t *testing.T) {
	req := TicketRequest{
		Title:       "<b>Cobro</b> & pago",
		Description: `<script>alert(1)</script><p>Factura <a href="x">INV-2024-001</a></p>`,
	}
	req.Normalize()
	assert.Equal(t, "Cobro & pago", req.Title)
	assert.Equal(t, "Factura INV-2024-001", req.Description)

	comment := CommentRequest{TicketID: "TKT-2024-001", Body: "<img src=x onerror=alert(1)>"}
	comment.Normalize()
	assert.Equal(t, "Este campo es obligatorio", comment.Validate()["body"])
}

func TestCommentRequest_Validate(t *testing.T) {
	req := CommentRequest{TicketID: "TKT-2024-001", Body: "  \n "}
	req.Normalize()
	assert.Equal(t, "Este campo es obligatorio", req.Validate()["body"])

	req.Body = "Adjunto más detalles"
	assert.Nil(t, req.Validate())
}

func TestLogDesk_SubmitTicket(t *testing.T) {
	var buf bytes.Buffer
	desk := NewLogDesk(slog.New(slog.NewTextHandler(&buf, nil)))
	desk.now = func() time.Time { return time.Date(2024, 12, 22, 10, 0, 0, 0, time.UTC) }

	receipt, err := desk.SubmitTicket(context.Background(), TicketRequest{
		Product: "prowi", Priority: "medium", Title: "Reporte vacío", Description: "No hay datos",
	})
	require.NoError(t, err)

	_, perr := uuid.Parse(receipt.Reference)
	assert.NoError(t, perr)
	assert.Equal(t, 2024, receipt.SubmittedAt.Year())
	assert.Contains(t, buf.String(), receipt.Reference)
	assert.Contains(t, buf.String(), "product=Prowi")
}

func TestLogDesk_RejectsInvalidRequests(t *testing.T) {
	desk := NewLogDesk(nil)

	_, err := desk.SubmitTicket(context.Background(), TicketRequest{Product: "prowi"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Fields, "title")

	_, err = desk.SubmitComment(context.Background(), CommentRequest{TicketID: "TKT-2024-001"})
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Fields, "body")
}

func TestLogDesk_SubmitComment(t *testing.T) {
	desk := NewLogDesk(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	first, err := desk.SubmitComment(context.Background(), CommentRequest{TicketID: "TKT-2024-001", Body: "Gracias"})
	require.NoError(t, err)
	second, err := desk.SubmitComment(context.Background(), CommentRequest{TicketID: "TKT-2024-001", Body: "Gracias"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestCountingDesk(t *testing.T) {
	var fields []string
	add := func(_ context.Context, field string) error {
		fields = append(fields, field)
		return nil
	}
	desk := NewCountingDesk(NewLogDesk(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))), add)

	_, err := desk.SubmitTicket(context.Background(), TicketRequest{
		Product: " Cobru ", Priority: "high", Title: "Cobro duplicado", Description: "Se cobró dos veces",
	})
	require.NoError(t, err)
	_, err = desk.SubmitComment(context.Background(), CommentRequest{TicketID: "TKT-2024-002", Body: "Adjunto comprobante"})
	require.NoError(t, err)

	// rejected requests are not counted
	_, err = desk.SubmitTicket(context.Background(), TicketRequest{Product: "prowi"})
	require.Error(t, err)

	assert.Equal(t, []string{CounterTickets, "tickets:cobru", CounterComments}, fields)
}

func TestCountingDesk_CounterFailureKeepsReceipt(t *testing.T) {
	add := func(context.Context, string) error { return errors.New("cache down") }
	desk := NewCountingDesk(NewLogDesk(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))), add)

	receipt, err := desk.SubmitComment(context.Background(), CommentRequest{TicketID: "TKT-2024-001", Body: "Gracias"})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.Reference)
}
