package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Testes logam só em stdout, sem criar diretório de arquivos
	_ = Init(&LogConfig{Level: "info", Format: "text", Output: "stdout", LogPath: "."})
}

// captureRequestID roda um request pelo app e devolve o field request_id que
// WithRequest anexou na entry dentro do handler.
func captureRequestID(t *testing.T, app *fiber.App, headers map[string]string) (string, bool) {
	t.Helper()

	var captured interface{}
	var present bool
	app.Get("/ping", func(c fiber.Ctx) error {
		captured, present = WithRequest(c).Data["request_id"]
		return c.SendString("pong")
	})

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	if !present {
		return "", false
	}
	return captured.(string), true
}

func TestWithRequestID(t *testing.T) {
	t.Run("pega o ID gerado pelo middleware de request ID", func(t *testing.T) {
		app := fiber.New()
		app.Use(requestid.New(requestid.Config{Header: "X-Request-ID"}))

		id, ok := captureRequestID(t, app, nil)

		require.True(t, ok, "request_id deve estar presente quando o middleware está na cadeia")
		assert.NotEmpty(t, id)
	})

	t.Run("com middleware, o ID do log é o mesmo devolvido no header", func(t *testing.T) {
		app := fiber.New()
		app.Use(requestid.New(requestid.Config{Header: "X-Request-ID"}))

		var logged string
		app.Get("/eco", func(c fiber.Ctx) error {
			logged = WithRequest(c).Data["request_id"].(string)
			return c.SendString("ok")
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/eco", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, resp.Header.Get("X-Request-ID"), logged)
	})

	t.Run("sem middleware, cai no header enviado pelo cliente", func(t *testing.T) {
		app := fiber.New()

		id, ok := captureRequestID(t, app, map[string]string{"X-Request-ID": "cliente-42"})

		require.True(t, ok)
		assert.Equal(t, "cliente-42", id)
	})

	t.Run("sem middleware e sem header, o field fica de fora", func(t *testing.T) {
		app := fiber.New()

		_, ok := captureRequestID(t, app, nil)

		assert.False(t, ok)
	})
}

func TestWithModule(t *testing.T) {
	entry := WithModule("template")

	assert.Equal(t, "template", entry.Data["module"])
}
