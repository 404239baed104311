// Package analytics implementa o emitter de eventos de ciclo de vida da
// composição (requested, rendered, compliance-failed). O transporte real dos
// eventos é um colaborador externo; aqui os eventos são estruturados e
// registrados via logging assíncrono, sem bloquear a composição.
package analytics

import (
	"time"

	"zap_engage/core/logger"
	"zap_engage/core/template"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Nomes dos eventos de ciclo de vida
const (
	EventTemplateRequested = "template.requested"
	EventTemplateRendered  = "template.rendered"
	EventComplianceFailed  = "template.compliance-failed"
)

// LogEmitter implementa template.AnalyticsEmitter sobre o logger da
// aplicação. Cada evento ganha um ID próprio para correlação a jusante. A
// escrita é fire-and-forget: o hook assíncrono do logger garante que a
// composição nunca espera pelo I/O.
type LogEmitter struct {
	log *logrus.Entry
}

// NewLogEmitter cria um LogEmitter sobre o logger da aplicação
func NewLogEmitter() *LogEmitter {
	return &LogEmitter{log: logger.WithModule("analytics")}
}

// entry monta a entry base de um evento
func (e *LogEmitter) entry(event string) *logrus.Entry {
	return e.log.WithFields(logrus.Fields{
		"event":    event,
		"event_id": uuid.NewString(),
		"emitted":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// TemplateRequested registra o pedido de composição recebido
func (e *LogEmitter) TemplateRequested(req template.ComposeRequest) {
	e.entry(EventTemplateRequested).WithFields(logrus.Fields{
		"persona_id": req.PersonaID,
		"region":     req.Region,
		"channel":    req.Channel,
		"marketing":  req.Marketing,
	}).Info("Composição solicitada")
}

// TemplateRendered registra o desfecho da renderização
func (e *LogEmitter) TemplateRendered(placeholdersResolved int, status template.ComplianceStatus) {
	e.entry(EventTemplateRendered).WithFields(logrus.Fields{
		"placeholders_resolved": placeholdersResolved,
		"compliance_status":     status,
	}).Info("Template renderizado")
}

// ComplianceFailed registra as violações de compliance de uma composição
func (e *LogEmitter) ComplianceFailed(result template.ComplianceResult) {
	e.entry(EventComplianceFailed).WithFields(logrus.Fields{
		"errors":      result.Errors,
		"error_count": len(result.Errors),
	}).Warn("Compliance reprovada")
}
