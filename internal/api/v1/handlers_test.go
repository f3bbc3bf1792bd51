package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/middleware"
)

const openAPIPath = "../../../public/docs/v1/openapi.yml"

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	RegisterHandlers(app.Group("/api/v1"), NewAPIServer(repository.NewRepositories(nil)))
	return app
}

func loadDoc(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromFile(openAPIPath)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	return doc
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

// checkSchema validates a response body against a component schema of the API document
func checkSchema(t *testing.T, doc *openapi3.T, name string, body []byte) {
	t.Helper()
	var decoded any
	require.NoError(t, json.Unmarshal(body, &decoded))
	ref, ok := doc.Components.Schemas[name]
	require.True(t, ok, "schema %s missing", name)
	assert.NoError(t, ref.Value.VisitJSON(decoded))
}

func TestOpenAPIDocument_CoversRoutes(t *testing.T) {
	doc := loadDoc(t)
	for _, path := range []string{"/ping", "/invoices", "/invoices/{id}", "/tickets", "/tickets/{id}", "/summary"} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s not documented", path)
	}
}

func TestGetPing(t *testing.T) {
	doc := loadDoc(t)
	status, body := get(t, newTestApp(), "/api/v1/ping")
	assert.Equal(t, fiber.StatusOK, status)
	checkSchema(t, doc, "Pong", body)
	assert.JSONEq(t, `{"ping":"pong","cache":"disabled"}`, string(body))
}

func TestListInvoices(t *testing.T) {
	doc := loadDoc(t)
	app := newTestApp()

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{"all", url.Values{}, []string{"INV-2024-001", "INV-2024-002", "INV-2024-003", "INV-2024-004"}},
		{"search product name", url.Values{"q": {"Enterfact"}}, []string{"INV-2024-001"}},
		{"search case-insensitive id", url.Values{"q": {"inv-2024-00"}}, []string{"INV-2024-001", "INV-2024-002", "INV-2024-003", "INV-2024-004"}},
		{"status paid", url.Values{"status": {"paid"}}, []string{"INV-2024-002", "INV-2024-004"}},
		{"status and search", url.Values{"status": {"paid"}, "q": {"cobrú"}}, []string{"INV-2024-004"}},
		{"unknown status", url.Values{"status": {"cancelled"}}, []string{}},
		{"status is case-sensitive", url.Values{"status": {"PAID"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, "/api/v1/invoices?"+tt.query.Encode())
			require.Equal(t, fiber.StatusOK, status)
			checkSchema(t, doc, "InvoiceList", body)

			var list InvoiceList
			require.NoError(t, json.Unmarshal(body, &list))
			ids := []string{}
			for _, inv := range list.Items {
				ids = append(ids, inv.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), list.Count)
		})
	}
}

func TestGetInvoice(t *testing.T) {
	doc := loadDoc(t)
	app := newTestApp()

	status, body := get(t, app, "/api/v1/invoices/INV-2024-001")
	require.Equal(t, fiber.StatusOK, status)
	checkSchema(t, doc, "Invoice", body)

	var inv map[string]any
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, "Pendiente", inv["status_label"])
	assert.Equal(t, 106260.0, inv["amount_clp"])
	assert.Equal(t, "3 UF (106.260 CLP)", inv["display"])
	assert.NotContains(t, inv, "position")

	status, body = get(t, app, "/api/v1/invoices/INV-1999-001")
	assert.Equal(t, fiber.StatusNotFound, status)
	checkSchema(t, doc, "Error", body)
}

func TestListTickets(t *testing.T) {
	app := newTestApp()

	status, body := get(t, app, "/api/v1/tickets?status=resolved")
	require.Equal(t, fiber.StatusOK, status)
	var list TicketList
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "TKT-2024-002", list.Items[0].ID)
	assert.Equal(t, "Resuelto", list.Items[0].StatusLabel)
	assert.Empty(t, list.Items[0].Conversation)

	_, body = get(t, app, "/api/v1/tickets?q="+url.QueryEscape("REPORTES"))
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "TKT-2024-003", list.Items[0].ID)
}

func TestGetTicket(t *testing.T) {
	doc := loadDoc(t)
	app := newTestApp()

	status, body := get(t, app, "/api/v1/tickets/TKT-2024-001")
	require.Equal(t, fiber.StatusOK, status)
	checkSchema(t, doc, "Ticket", body)

	var tkt Ticket
	require.NoError(t, json.Unmarshal(body, &tkt))
	assert.Equal(t, "Alta", tkt.PriorityLabel)
	require.Len(t, tkt.Conversation, 2)
	assert.Equal(t, "2024-12-20", tkt.Conversation[0].Date)
	assert.Equal(t, "2024-12-21", tkt.Conversation[1].Date)

	status, _ = get(t, app, "/api/v1/tickets/nope")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetSummary(t *testing.T) {
	doc := loadDoc(t)
	status, body := get(t, newTestApp(), "/api/v1/summary")
	require.Equal(t, fiber.StatusOK, status)
	checkSchema(t, doc, "Summary", body)

	var summary Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 2, summary.Outstanding.Count)
	assert.InDelta(t, 159390.0, summary.Outstanding.TotalCLP, 1e-6)
	assert.Equal(t, "$159.390", summary.OutstandingTotal)
	assert.Equal(t, 1, summary.Tickets.Open)
	assert.Equal(t, 1, summary.Tickets.InProgress)
	assert.Len(t, summary.ActiveProducts, 4)
	assert.Equal(t, "Activo", summary.ServiceStatus)
}
