package support

import "github.com/enternet/portal/app/models"

// Author identifies who wrote a conversation message
type Author string

const (
	AuthorCustomer Author = "customer"
	AuthorSupport  Author = "support"
)

// Message is one entry in a ticket conversation
type Message struct {
	Author     Author `json:"author"`
	AuthorName string `json:"author_name"`
	Date       string `json:"date"`
	Body       string `json:"body"`
}

// AcknowledgementReply is the standard first answer from the support team
const AcknowledgementReply = "Hemos recibido tu consulta y estamos trabajando en una solución. " +
	"Te contactaremos en las próximas 24 horas con más información."

// Conversation returns the message history of a ticket: the customer's
// original description followed by the support acknowledgement
func Conversation(t models.Ticket) []Message {
	return []Message{
		{Author: AuthorCustomer, AuthorName: "Cliente", Date: t.Created, Body: t.Description},
		{Author: AuthorSupport, AuthorName: "Soporte Técnico", Date: t.LastUpdate, Body: AcknowledgementReply},
	}
}
