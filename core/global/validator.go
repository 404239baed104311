package global

import (
	"github.com/go-playground/validator/v10"

	"zap_engage/core/template"
)

// InitValidator inicializa o validador e registra as validações customizadas
func InitValidator() {
	Validate = validator.New()

	// channel: valor precisa ser um canal de entrega suportado
	_ = Validate.RegisterValidation("channel", validateChannel)
}

// validateChannel valida se o campo é um canal suportado pelo motor
func validateChannel(fl validator.FieldLevel) bool {
	return template.Channel(fl.Field().String()).Valid()
}
