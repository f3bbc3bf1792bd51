package controllers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/enternet/portal/app/models"
	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/apperror"
	"github.com/enternet/portal/internal/pkg/badge"
	"github.com/enternet/portal/internal/pkg/currency"
	"github.com/enternet/portal/internal/pkg/dashboard"
	"github.com/enternet/portal/internal/pkg/env"
	"github.com/enternet/portal/internal/pkg/query"
	"github.com/enternet/portal/internal/pkg/support"
	"github.com/enternet/portal/internal/pkg/usercontext"
	"github.com/enternet/portal/internal/pkg/viewmodel"
)

// ============================================================================
// PORTAL CONTROLLER - Repository Pattern
// ============================================================================

const portalTitle = "Portal de Clientes"

// PortalController serves the billing and support tabs
type PortalController struct {
	repos     *repository.Repositories
	formatter currency.Formatter
	desk      support.Desk
}

// NewPortalController creates a new portal controller with repositories and a support desk
func NewPortalController(repos *repository.Repositories, desk support.Desk) *PortalController {
	return &PortalController{
		repos:     repos,
		formatter: currency.New(),
		desk:      desk,
	}
}

// pageOverrides carries a rejected form back into the re-rendered page
type pageOverrides func(in *viewmodel.PortalInput)

func (pc *PortalController) render(c *fiber.Ctx, status int, state viewmodel.PortalState, overrides ...pageOverrides) error {
	ctx := c.UserContext()
	invoices, err := pc.repos.Invoice.List(ctx)
	if err != nil {
		return fmt.Errorf("load invoices: %w", err)
	}
	tickets, err := pc.repos.Ticket.List(ctx)
	if err != nil {
		return fmt.Errorf("load tickets: %w", err)
	}

	in := viewmodel.PortalInput{
		Layout: viewmodel.Layout{
			Page:         "portal",
			Title:        portalTitle,
			CustomerName: usercontext.GetCustomerName(c),
			IsDev:        env.IsDev(),
			Msg:          flash.Get(c),
			CSRF:         csrfToken(c),
		},
		State:     state,
		Invoices:  invoices,
		Tickets:   tickets,
		Summary:   dashboard.Build(invoices, tickets, pc.formatter.Rate),
		Formatter: pc.formatter,
	}
	for _, o := range overrides {
		o(&in)
	}

	return c.Status(status).Render("portal", viewmodel.BuildPortalPage(in), "layouts/main")
}

func parseState(c *fiber.Ctx) viewmodel.PortalState {
	return viewmodel.ParseState(func(key string) string { return c.Query(key) })
}

// HandlePortal renders the portal page for the state in the query string
func (pc *PortalController) HandlePortal(c *fiber.Ctx) error {
	return pc.render(c, fiber.StatusOK, parseState(c))
}

// HandleInvoiceRedirect opens the detail dialog of an invoice
func (pc *PortalController) HandleInvoiceRedirect(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := pc.repos.Invoice.GetByID(c.UserContext(), id); err != nil {
		return err
	}
	return c.Redirect(parseState(c).WithInvoice(id).Href(viewmodel.PortalPath), fiber.StatusFound)
}

// HandleTicketRedirect opens the detail dialog of a ticket
func (pc *PortalController) HandleTicketRedirect(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := pc.repos.Ticket.GetByID(c.UserContext(), id); err != nil {
		return err
	}
	return c.Redirect(parseState(c).WithTicket(id).Href(viewmodel.PortalPath), fiber.StatusFound)
}

// HandleExportInvoices writes the currently filtered invoices as CSV
func (pc *PortalController) HandleExportInvoices(c *fiber.Ctx) error {
	invoices, err := pc.repos.Invoice.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("load invoices: %w", err)
	}
	visible := query.Invoices(invoices, parseState(c).InvoiceCriteria())

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="facturas.csv"`)

	w := csv.NewWriter(c.Response().BodyWriter())
	if err := w.Write([]string{"Número", "Fecha", "Producto", "Descripción", "Vencimiento", "Monto UF", "Monto CLP", "Estado"}); err != nil {
		return err
	}
	for _, inv := range visible {
		if err := w.Write(pc.invoiceRecord(inv)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (pc *PortalController) invoiceRecord(inv models.Invoice) []string {
	return []string{
		inv.ID,
		inv.Date,
		inv.Product,
		inv.Description,
		inv.DueDate,
		strconv.FormatFloat(inv.UFValue, 'f', -1, 64),
		strconv.FormatFloat(pc.formatter.ToCLP(inv.UFValue), 'f', -1, 64),
		badge.InvoiceStatus(inv.Status).Label,
	}
}

// HandleCreateTicket passes a new-ticket form to the support desk
func (pc *PortalController) HandleCreateTicket(c *fiber.Ctx) error {
	state := parseState(c)

	var req support.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewBadRequestError("invalid form", err.Error())
	}

	receipt, err := pc.desk.SubmitTicket(c.UserContext(), req)
	if err != nil {
		appErr, ok := apperror.As(err)
		if !ok || appErr.Type != apperror.ErrorTypeValidation {
			return err
		}
		return pc.render(c, fiber.StatusUnprocessableEntity, state.WithNewTicket(), func(in *viewmodel.PortalInput) {
			in.NewTicketValues = req
			in.NewTicketErrors = appErr.Fields
		})
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Tu ticket fue enviado al equipo de soporte. Referencia: " + receipt.Reference,
	}
	flash.WithSuccess(c, fm)
	return c.Redirect(state.WithTab(viewmodel.TabSupport).Href(viewmodel.PortalPath), fiber.StatusSeeOther)
}

// HandleTicketComment passes a reply to the support desk
func (pc *PortalController) HandleTicketComment(c *fiber.Ctx) error {
	state := parseState(c)
	id := c.Params("id")
	if _, err := pc.repos.Ticket.GetByID(c.UserContext(), id); err != nil {
		return err
	}

	var req support.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewBadRequestError("invalid form", err.Error())
	}
	req.TicketID = id

	receipt, err := pc.desk.SubmitComment(c.UserContext(), req)
	if err != nil {
		appErr, ok := apperror.As(err)
		if !ok || appErr.Type != apperror.ErrorTypeValidation {
			return err
		}
		return pc.render(c, fiber.StatusUnprocessableEntity, state.WithTicket(id), func(in *viewmodel.PortalInput) {
			in.CommentTicketID = id
			in.CommentForm = viewmodel.CommentForm{Body: req.Body, Errors: appErr.Fields}
		})
	}

	slog.DebugContext(c.UserContext(), "Comment accepted", "ticket_id", id, "reference", receipt.Reference)
	fm := fiber.Map{
		"type":    "success",
		"message": "Tu respuesta fue enviada. Referencia: " + receipt.Reference,
	}
	flash.WithSuccess(c, fm)
	return c.Redirect(state.WithTab(viewmodel.TabSupport).Href(viewmodel.PortalPath), fiber.StatusSeeOther)
}
