package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/enternet/portal/app/models"
	"gorm.io/gorm"
)

// ticketRepository implements the TicketRepository interface on GORM
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new GORM-backed ticket repository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// List retrieves all tickets in seed order
func (r *ticketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// GetByID retrieves a ticket by its identifier
func (r *ticketRepository) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ticket %s: %w", id, err)
	}
	return &ticket, nil
}
