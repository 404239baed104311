package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// WithRequest retorna uma entry de log com o contexto do request Fiber
// (request id, método, path e IP).
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	// O middleware de request ID guarda o valor sob chave não exportada,
	// então a leitura é pelo accessor do próprio middleware; o header do
	// cliente é o fallback quando o middleware não está na cadeia.
	requestID := requestid.FromContext(c)
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	return entry
}

// WithModule retorna uma entry de log com o nome do módulo
// (ex: "template", "analytics", "store").
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithFields retorna uma entry de log com fields adicionais
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError retorna uma entry de log com o erro anexado
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}
