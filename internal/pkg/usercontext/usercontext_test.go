package usercontext

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserContext(t *testing.T) {
	app := fiber.New()
	app.Get("/default", func(c *fiber.Ctx) error {
		return c.SendString(GetCustomerName(c))
	})
	app.Get("/named", func(c *fiber.Ctx) error {
		SetUserContext(c, UserContext{CustomerName: "Comercial Andes Ltda."})
		return c.SendString(GetCustomerName(c))
	})

	tests := []struct {
		path string
		want string
	}{
		{"/default", DefaultCustomerName},
		{"/named", "Comercial Andes Ltda."},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}
