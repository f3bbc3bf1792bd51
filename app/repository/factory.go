package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories groups the record stores used by the portal
type Repositories struct {
	Invoice InvoiceRepository
	Ticket  TicketRepository
}

// NewRepositories creates GORM-backed repositories, or in-memory seed
// repositories when db is nil
func NewRepositories(db *gorm.DB) *Repositories {
	if db == nil {
		return &Repositories{
			Invoice: NewMemoryInvoiceRepository(SeedInvoices()),
			Ticket:  NewMemoryTicketRepository(SeedTickets()),
		}
	}
	return &Repositories{
		Invoice: NewInvoiceRepository(db),
		Ticket:  NewTicketRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory. A nil db selects the in-memory store.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetInvoiceRepository returns the invoice repository instance
func (f *Factory) GetInvoiceRepository() InvoiceRepository {
	return f.GetRepositories().Invoice
}

// GetTicketRepository returns the ticket repository instance
func (f *Factory) GetTicketRepository() TicketRepository {
	return f.GetRepositories().Ticket
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global factory, falling back to the in-memory store
func GetGlobalFactory() *Factory {
	InitializeFactory(nil)
	return globalFactory
}
