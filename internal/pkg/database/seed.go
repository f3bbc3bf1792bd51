package database

import (
	"fmt"

	"github.com/enternet/portal/app/models"
	"github.com/enternet/portal/app/repository"
	"gorm.io/gorm"
)

// Seed inserts the sample invoices and tickets into empty tables.
// Tables that already hold rows are left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count invoices: %w", err)
	}
	if count == 0 {
		invoices := repository.SeedInvoices()
		if err := db.Create(&invoices).Error; err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
	}

	if err := db.Model(&models.Ticket{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tickets: %w", err)
	}
	if count == 0 {
		tickets := repository.SeedTickets()
		if err := db.Create(&tickets).Error; err != nil {
			return fmt.Errorf("seed tickets: %w", err)
		}
	}
	return nil
}
