package handler

import (
	"fmt"

	"zap_engage/core/api/dto"
	"zap_engage/core/common"
	"zap_engage/core/global"
	"zap_engage/core/logger"
	"zap_engage/core/template"

	"github.com/gofiber/fiber/v3"
)

// ComposeHandler expõe o motor de composição na API HTTP. A camada é fina de
// propósito: valida o input, delega ao composer e mapeia os dois desfechos.
// Erro de resolução vira 4xx; falha de compliance segue 200 com status "fail"
// no corpo (cabe ao chamador tratá-la como não-sucesso).
type ComposeHandler struct {
	composer *template.Composer
}

// NewComposeHandler cria o handler sobre o composer fornecido
func NewComposeHandler(composer *template.Composer) *ComposeHandler {
	return &ComposeHandler{composer: composer}
}

// bindAndValidate faz o bind do body e valida o input
func (h *ComposeHandler) bindAndValidate(c fiber.Ctx) (*dto.ComposeInput, error) {
	var input dto.ComposeInput
	if err := c.Bind().Body(&input); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Body não é um JSON válido: %v", err),
			common.StatusBadRequest,
			nil,
		)
	}

	if err := global.Validate.Struct(&input); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			err.Error(),
		)
	}

	return &input, nil
}

// HandleCompose trata POST /api/v1/templates/compose
func (h *ComposeHandler) HandleCompose(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input, err := h.bindAndValidate(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.composer.Compose(c.Context(), input.ToRequest())
		if err != nil {
			logger.WithRequest(c).WithError(err).Warn("Falha na composição")
			return HandleResponse(c, nil, err)
		}

		return HandleResponse(c, result, nil)
	})
}

// HandlePreflight trata POST /api/v1/templates/preflight: só o veredito de
// compliance, sem o conteúdo renderizado.
func (h *ComposeHandler) HandlePreflight(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input, err := h.bindAndValidate(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.composer.Preflight(c.Context(), input.ToRequest())
		if err != nil {
			logger.WithRequest(c).WithError(err).Warn("Falha no preflight")
			return HandleResponse(c, nil, err)
		}

		return HandleResponse(c, result, nil)
	})
}

// HandleHealth trata GET /health
func (h *ComposeHandler) HandleHealth(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status":  "ok",
		"service": "zap_engage",
	})
}
