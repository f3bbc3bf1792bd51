package models

// TicketStatus is the lifecycle state of a support ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// TicketStatuses lists every known ticket status in display order
func TicketStatuses() []TicketStatus {
	return []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved}
}

// TicketPriority is the urgency assigned to a support ticket
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// TicketPriorities lists every known priority from lowest to highest
func TicketPriorities() []TicketPriority {
	return []TicketPriority{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh}
}

// Ticket represents a support request raised by the customer
type Ticket struct {
	ID          string         `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Position    int            `gorm:"index" json:"-"`
	Title       string         `gorm:"type:varchar(255)" json:"title"`
	Status      TicketStatus   `gorm:"type:varchar(16);index" json:"status"`
	Priority    TicketPriority `gorm:"type:varchar(16)" json:"priority"`
	Product     string         `gorm:"type:varchar(64)" json:"product"`
	Created     string         `gorm:"type:varchar(10)" json:"created"`
	LastUpdate  string         `gorm:"column:last_update;type:varchar(10)" json:"last_update"`
	Description string         `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}
