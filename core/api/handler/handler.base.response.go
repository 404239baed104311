// Package handler contém os handlers HTTP da aplicação.
package handler

import (
	"errors"
	"fmt"
	"runtime/debug"

	"zap_engage/core/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse retorna uma resposta JSON com charset=utf-8, necessário para
// os textos em português saírem com encoding correto.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleResponse padroniza o formato das respostas da API. Erros *common.Error
// saem com o status e o código deles; qualquer outro erro vira 500.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
		}
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// SafeHandler embrulha um handler com recover, garantindo que o servidor
// sempre responde ao cliente mesmo quando há panic.
func SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			_ = HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Erro inesperado do sistema: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}
