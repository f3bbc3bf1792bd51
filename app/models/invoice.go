package models

// InvoiceStatus is the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceStatuses lists every known invoice status in display order
func InvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{InvoiceStatusPaid, InvoiceStatusUnpaid, InvoiceStatusOverdue}
}

// Invoice represents a customer invoice issued for one product.
// Amount is expressed in the fractional currency unit (CLP) and UFValue in
// the indexed unit of account.
type Invoice struct {
	ID          string        `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Position    int           `gorm:"index" json:"-"`
	Date        string        `gorm:"type:varchar(10)" json:"date"`
	Amount      float64       `json:"amount"`
	UFValue     float64       `gorm:"column:uf_value" json:"uf_value"`
	Status      InvoiceStatus `gorm:"type:varchar(16);index" json:"status"`
	DueDate     string        `gorm:"type:varchar(10)" json:"due_date"`
	Product     string        `gorm:"type:varchar(64)" json:"product"`
	Description string        `gorm:"type:varchar(255)" json:"description"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// IsPaid reports whether no payment is pending for the invoice
func (i Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// IsOutstanding reports whether the invoice still awaits payment (unpaid or overdue)
func (i Invoice) IsOutstanding() bool {
	return i.Status == InvoiceStatusUnpaid || i.Status == InvoiceStatusOverdue
}

// IsOverdue reports whether the invoice is past its due date
func (i Invoice) IsOverdue() bool {
	return i.Status == InvoiceStatusOverdue
}
