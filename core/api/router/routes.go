// Package router registra as rotas da API.
package router

import (
	"zap_engage/core/api/handler"

	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registra todas as rotas da aplicação no app Fiber
func SetupRoutes(app *fiber.App, composeHandler *handler.ComposeHandler) {
	app.Get("/health", composeHandler.HandleHealth)

	v1 := app.Group("/api/v1")

	templates := v1.Group("/templates")
	templates.Post("/compose", composeHandler.HandleCompose)
	templates.Post("/preflight", composeHandler.HandlePreflight)
}
