package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enternet/portal/app/models"
)

func TestInvoiceStatus(t *testing.T) {
	tests := []struct {
		in   models.InvoiceStatus
		want Badge
	}{
		{in: "paid", want: Badge{Label: "Pagada", Category: CategorySuccess}},
		{in: "unpaid", want: Badge{Label: "Pendiente", Category: CategoryWarning}},
		{in: "overdue", want: Badge{Label: "Vencida", Category: CategoryDanger}},
		{in: "cancelled", want: Badge{Label: "cancelled", Category: CategorySecondary}},
		{in: "PAID", want: Badge{Label: "PAID", Category: CategorySecondary}},
		{in: "", want: Badge{Label: "", Category: CategorySecondary}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InvoiceStatus(tt.in), "InvoiceStatus(%q)", tt.in)
	}
}

func TestTicketStatus(t *testing.T) {
	assert.Equal(t, "Abierto", TicketStatus(models.TicketStatusOpen).Label)
	assert.Equal(t, "En Progreso", TicketStatus(models.TicketStatusInProgress).Label)
	assert.Equal(t, "Resuelto", TicketStatus(models.TicketStatusResolved).Label)

	unknown := TicketStatus("escalated")
	assert.Contains(t, unknown.Label, "escalated")
	assert.Equal(t, CategorySecondary, unknown.Category)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, Badge{Label: "Alta", Category: CategoryDanger}, Priority(models.TicketPriorityHigh))
	assert.Equal(t, Badge{Label: "Media", Category: CategoryWarning}, Priority(models.TicketPriorityMedium))
	assert.Equal(t, Badge{Label: "Baja", Category: CategoryNeutral}, Priority(models.TicketPriorityLow))
	assert.Equal(t, "urgent", Priority("urgent").Label)
}

func TestEveryKnownValueHasADedicatedBadge(t *testing.T) {
	for _, s := range models.InvoiceStatuses() {
		assert.NotEqual(t, CategorySecondary, InvoiceStatus(s).Category, "invoice status %s", s)
	}
	for _, s := range models.TicketStatuses() {
		assert.NotEqual(t, CategorySecondary, TicketStatus(s).Category, "ticket status %s", s)
	}
	for _, p := range models.TicketPriorities() {
		assert.NotEqual(t, CategorySecondary, Priority(p).Category, "priority %s", p)
	}
}

func TestOptions(t *testing.T) {
	assert.Equal(t, "all", InvoiceFilterOptions()[0].Value)
	assert.Len(t, InvoiceFilterOptions(), 4)
	assert.Len(t, TicketFilterOptions(), 4)

	assert.Equal(t, []Option{
		{Value: "low", Label: "Baja"},
		{Value: "medium", Label: "Media"},
		{Value: "high", Label: "Alta"},
	}, PriorityOptions())

	assert.Equal(t, []Option{
		{Value: "enterfact", Label: "Enterfact"},
		{Value: "andespos", Label: "AndesPOS"},
		{Value: "prowi", Label: "Prowi"},
		{Value: "cobru", Label: "Cobrú"},
	}, ProductOptions())
}
