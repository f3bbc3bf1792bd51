package support

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/enternet/portal/app/models"
)

var (
	validate  = newValidator()
	plainText = bluemonday.StrictPolicy()
)

// stripMarkup reduces free text to plain text; the support backend gets no HTML
func stripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}

func newValidator() *validator.Validate {
	v := validator.New()
	// report form field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// TicketRequest is the new-ticket form
type TicketRequest struct {
	Product     string `form:"product" json:"product" validate:"required,oneof=enterfact andespos prowi cobru"`
	Priority    string `form:"priority" json:"priority" validate:"required,oneof=low medium high"`
	Title       string `form:"title" json:"title" validate:"required,max=120"`
	Description string `form:"description" json:"description" validate:"required,max=5000"`
}

// Normalize trims all fields, strips markup from the free text and lower-cases
// the select values
func (r *TicketRequest) Normalize() {
	r.Product = strings.ToLower(strings.TrimSpace(r.Product))
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))
	r.Title = stripMarkup(r.Title)
	r.Description = stripMarkup(r.Description)
}

// Validate returns per-field messages, or nil when the request is valid
func (r TicketRequest) Validate() map[string]string {
	return fieldErrors(validate.Struct(r))
}

// ProductName resolves the selected product key to its display name
func (r TicketRequest) ProductName() string {
	if name, ok := models.ProductByKey(r.Product); ok {
		return name
	}
	return r.Product
}

func (r TicketRequest) normalizedProduct() string {
	r.Normalize()
	return r.Product
}

// CommentRequest is a reply added to an existing ticket
type CommentRequest struct {
	TicketID string `form:"-" json:"ticket_id" validate:"required"`
	Body     string `form:"body" json:"body" validate:"required,max=5000"`
}

// Normalize trims the reply body and strips its markup
func (r *CommentRequest) Normalize() {
	r.TicketID = strings.TrimSpace(r.TicketID)
	r.Body = stripMarkup(r.Body)
}

// Validate returns per-field messages, or nil when the request is valid
func (r CommentRequest) Validate() map[string]string {
	return fieldErrors(validate.Struct(r))
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "oneof":
		return "Selecciona una opción válida"
	case "max":
		return fmt.Sprintf("Máximo %s caracteres", fe.Param())
	default:
		return "Valor inválido"
	}
}
