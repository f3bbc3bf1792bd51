// Package badge maps invoice and ticket enumerations to display labels.
// Every lookup falls back to a neutral badge echoing the raw value, so a
// status added upstream renders instead of failing.
package badge

import "github.com/enternet/portal/app/models"

// Category selects the visual style of a badge
type Category string

const (
	CategorySuccess   Category = "success"
	CategoryWarning   Category = "warning"
	CategoryDanger    Category = "danger"
	CategoryInfo      Category = "info"
	CategoryProgress  Category = "progress"
	CategoryNeutral   Category = "neutral"
	CategorySecondary Category = "secondary"
)

// Badge is a display label with its visual category
type Badge struct {
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// Option is one entry of a status select box
type Option struct {
	Value string
	Label string
}

var invoiceStatusBadges = map[models.InvoiceStatus]Badge{
	models.InvoiceStatusPaid:    {Label: "Pagada", Category: CategorySuccess},
	models.InvoiceStatusUnpaid:  {Label: "Pendiente", Category: CategoryWarning},
	models.InvoiceStatusOverdue: {Label: "Vencida", Category: CategoryDanger},
}

var ticketStatusBadges = map[models.TicketStatus]Badge{
	models.TicketStatusOpen:       {Label: "Abierto", Category: CategoryInfo},
	models.TicketStatusInProgress: {Label: "En Progreso", Category: CategoryProgress},
	models.TicketStatusResolved:   {Label: "Resuelto", Category: CategorySuccess},
}

var priorityBadges = map[models.TicketPriority]Badge{
	models.TicketPriorityHigh:   {Label: "Alta", Category: CategoryDanger},
	models.TicketPriorityMedium: {Label: "Media", Category: CategoryWarning},
	models.TicketPriorityLow:    {Label: "Baja", Category: CategoryNeutral},
}

func fallback(raw string) Badge {
	return Badge{Label: raw, Category: CategorySecondary}
}

// InvoiceStatus returns the badge for an invoice status
func InvoiceStatus(status models.InvoiceStatus) Badge {
	if b, ok := invoiceStatusBadges[status]; ok {
		return b
	}
	return fallback(string(status))
}

// TicketStatus returns the badge for a ticket status
func TicketStatus(status models.TicketStatus) Badge {
	if b, ok := ticketStatusBadges[status]; ok {
		return b
	}
	return fallback(string(status))
}

// Priority returns the badge for a ticket priority
func Priority(priority models.TicketPriority) Badge {
	if b, ok := priorityBadges[priority]; ok {
		return b
	}
	return fallback(string(priority))
}

// InvoiceFilterOptions lists the invoice status filter choices, "all" first
func InvoiceFilterOptions() []Option {
	return []Option{
		{Value: "all", Label: "Todos los estados"},
		{Value: string(models.InvoiceStatusPaid), Label: "Pagadas"},
		{Value: string(models.InvoiceStatusUnpaid), Label: "Pendientes"},
		{Value: string(models.InvoiceStatusOverdue), Label: "Vencidas"},
	}
}

// TicketFilterOptions lists the ticket status filter choices, "all" first
func TicketFilterOptions() []Option {
	return []Option{
		{Value: "all", Label: "Todos los estados"},
		{Value: string(models.TicketStatusOpen), Label: "Abiertos"},
		{Value: string(models.TicketStatusInProgress), Label: "En Progreso"},
		{Value: string(models.TicketStatusResolved), Label: "Resueltos"},
	}
}

// PriorityOptions lists the priorities offered when creating a ticket
func PriorityOptions() []Option {
	options := make([]Option, 0, len(priorityBadges))
	for _, p := range models.TicketPriorities() {
		options = append(options, Option{Value: string(p), Label: Priority(p).Label})
	}
	return options
}

// ProductOptions lists the products offered when creating a ticket
func ProductOptions() []Option {
	products := models.Products()
	options := make([]Option, 0, len(products))
	for _, name := range products {
		options = append(options, Option{Value: models.ProductKey(name), Label: name})
	}
	return options
}
