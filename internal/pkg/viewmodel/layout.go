package viewmodel

import "github.com/gofiber/fiber/v2"

type Layout struct {
	Page         string
	Title        string
	CustomerName string
	IsDev        bool
	Msg          fiber.Map
	CSRF         string
}

// ErrorPage is rendered for failed page requests
type ErrorPage struct {
	Layout
	Code    int
	Message string
}

// ErrorMessage is the customer-facing text for an HTTP status
func ErrorMessage(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "La página o el documento solicitado no existe."
	case fiber.StatusTooManyRequests:
		return "Demasiadas solicitudes. Intenta nuevamente en unos minutos."
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return "La solicitud no es válida."
	default:
		return "Ocurrió un error inesperado. Intenta nuevamente más tarde."
	}
}
