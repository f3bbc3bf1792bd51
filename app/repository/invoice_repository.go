package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/enternet/portal/app/models"
	"gorm.io/gorm"
)

// invoiceRepository implements the InvoiceRepository interface on GORM
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new GORM-backed invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// List retrieves all invoices in seed order
func (r *invoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// GetByID retrieves an invoice by its identifier
func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice %s: %w", id, err)
	}
	return &invoice, nil
}
