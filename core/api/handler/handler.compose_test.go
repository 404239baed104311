package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zap_engage/core/api/handler"
	"zap_engage/core/api/router"
	"zap_engage/core/global"
	"zap_engage/core/template"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp monta um app Fiber mínimo com as rotas e um store em memória,
// sem os middlewares do servidor, para testar só a camada de handler.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.InitValidator()

	store := template.NewMemoryStore()
	store.Put(&template.PersonaRegionTemplate{
		PersonaID: "familia-economica",
		Region:    "sudeste",
		WhatsApp: &template.WhatsAppTemplate{
			Header: "Olá {{nome}}",
			Body:   "Economize {{economia_pct}}%",
			Footer: "Obrigado",
			CTA: &template.CTATemplate{
				Text:        "Ver oferta",
				URLTemplate: "https://x/{{id}}",
			},
		},
	})
	store.Put(&template.PersonaRegionTemplate{
		PersonaID: "familia-economica",
		Region:    "norte",
		SMS:       smsTemplate(strings.Repeat("a", 161)),
	})

	app := fiber.New()
	router.SetupRoutes(app, handler.NewComposeHandler(template.NewComposer(store)))
	return app
}

func smsTemplate(text string) *string {
	return &text
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any) (*http.Response, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	return resp, decoded
}

func TestHandleCompose(t *testing.T) {
	app := newTestApp(t)

	t.Run("composição válida responde 200 com envelope de sucesso", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/compose", map[string]any{
			"personaId": "familia-economica",
			"region":    "sudeste",
			"channel":   "whatsapp",
			"variables": map[string]string{"nome": "Maria", "economia_pct": "30", "id": "123"},
		})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "success", body["status"])

		data := body["data"].(map[string]any)
		rendered := data["rendered"].(map[string]any)
		whatsapp := rendered["whatsapp"].(map[string]any)
		assert.Equal(t, "Olá Maria", whatsapp["header"])
		assert.Equal(t, "Economize 30%", whatsapp["body"])

		compliance := data["compliance"].(map[string]any)
		assert.Equal(t, "pass", compliance["status"])
	})

	t.Run("falha de compliance ainda responde 200, com status fail no corpo", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/compose", map[string]any{
			"personaId": "familia-economica",
			"region":    "norte",
			"channel":   "sms",
		})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "success", body["status"])

		data := body["data"].(map[string]any)
		compliance := data["compliance"].(map[string]any)
		assert.Equal(t, "fail", compliance["status"])
		assert.NotEmpty(t, compliance["errors"])
	})

	t.Run("persona desconhecida responde 400 com código de lookup", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/compose", map[string]any{
			"personaId": "nao-existe",
			"region":    "sudeste",
			"channel":   "whatsapp",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "TPL_001", body["code"])
		assert.Equal(t, "Persona/região não encontrada", body["message"])
	})

	t.Run("canal sem template no bundle responde 400", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/compose", map[string]any{
			"personaId": "familia-economica",
			"region":    "sudeste",
			"channel":   "email",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "TPL_002", body["code"])
	})

	t.Run("canal inválido é barrado na validação de input", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/compose", map[string]any{
			"personaId": "familia-economica",
			"region":    "sudeste",
			"channel":   "fax",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VAL_001", body["code"])
	})

	t.Run("campo obrigatório ausente responde 400", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/compose", map[string]any{
			"region":  "sudeste",
			"channel": "whatsapp",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VAL_001", body["code"])
	})

	t.Run("body que não é JSON responde 400 de formato", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/templates/compose", strings.NewReader("{nope"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "VAL_002", body["code"])
	})
}

func TestHandlePreflight(t *testing.T) {
	app := newTestApp(t)

	t.Run("retorna só canal e compliance, sem conteúdo renderizado", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/preflight", map[string]any{
			"personaId": "familia-economica",
			"region":    "sudeste",
			"channel":   "whatsapp",
			"variables": map[string]string{"nome": "Maria", "economia_pct": "30", "id": "1"},
		})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		assert.Equal(t, "whatsapp", data["channel"])
		compliance := data["compliance"].(map[string]any)
		assert.Equal(t, "pass", compliance["status"])
		assert.NotContains(t, data, "rendered")
	})

	t.Run("propaga erro de lookup como 400", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/templates/preflight", map[string]any{
			"personaId": "nao-existe",
			"region":    "sudeste",
			"channel":   "whatsapp",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "TPL_001", body["code"])
	})
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
