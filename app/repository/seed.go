package repository

import "github.com/enternet/portal/app/models"

// SeedInvoices returns a fresh copy of the sample invoice collection
func SeedInvoices() []models.Invoice {
	return []models.Invoice{
		{
			ID:          "INV-2024-001",
			Position:    1,
			Date:        "2024-12-15",
			Amount:      1250.0,
			UFValue:     3,
			Status:      models.InvoiceStatusUnpaid,
			DueDate:     "2024-12-30",
			Product:     models.ProductEnterfact,
			Description: "Licencia mensual Enterfact Pro",
		},
		{
			ID:          "INV-2024-002",
			Position:    2,
			Date:        "2024-11-15",
			Amount:      850.0,
			UFValue:     2,
			Status:      models.InvoiceStatusPaid,
			DueDate:     "2024-11-30",
			Product:     models.ProductAndesPOS,
			Description: "Licencia mensual AndesPOS",
		},
		{
			ID:          "INV-2024-003",
			Position:    3,
			Date:        "2024-10-15",
			Amount:      2100.0,
			UFValue:     1.5,
			Status:      models.InvoiceStatusOverdue,
			DueDate:     "2024-10-30",
			Product:     models.ProductProwi,
			Description: "Licencia anual Prowi Enterprise",
		},
		{
			ID:          "INV-2024-004",
			Position:    4,
			Date:        "2024-09-15",
			Amount:      650.0,
			UFValue:     2.5,
			Status:      models.InvoiceStatusPaid,
			DueDate:     "2024-09-30",
			Product:     models.ProductCobru,
			Description: "Licencia mensual Cobrú",
		},
	}
}

// SeedTickets returns a fresh copy of the sample ticket collection
func SeedTickets() []models.Ticket {
	return []models.Ticket{
		{
			ID:          "TKT-2024-001",
			Position:    1,
			Title:       "Error en sincronización de inventario",
			Status:      models.TicketStatusOpen,
			Priority:    models.TicketPriorityHigh,
			Product:     models.ProductAndesPOS,
			Created:     "2024-12-20",
			LastUpdate:  "2024-12-21",
			Description: "El inventario no se sincroniza correctamente entre sucursales",
		},
		{
			ID:          "TKT-2024-002",
			Position:    2,
			Title:       "Consulta sobre facturación electrónica",
			Status:      models.TicketStatusResolved,
			Priority:    models.TicketPriorityMedium,
			Product:     models.ProductEnterfact,
			Created:     "2024-12-18",
			LastUpdate:  "2024-12-19",
			Description: "Necesito información sobre configuración de facturación electrónica",
		},
		{
			ID:          "TKT-2024-003",
			Position:    3,
			Title:       "Problema con reportes de ventas",
			Status:      models.TicketStatusInProgress,
			Priority:    models.TicketPriorityMedium,
			Product:     models.ProductProwi,
			Created:     "2024-12-17",
			LastUpdate:  "2024-12-20",
			Description: "Los reportes de ventas no muestran datos actualizados",
		},
	}
}
