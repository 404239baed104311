package template

import (
	"context"
	"errors"
	"fmt"

	"zap_engage/core/common"

	"github.com/sirupsen/logrus"
)

// AnalyticsEmitter recebe os eventos de ciclo de vida da composição. O motor
// emite sem aguardar (fire-and-forget); o transporte dos eventos é de quem
// implementa a interface.
type AnalyticsEmitter interface {
	TemplateRequested(req ComposeRequest)
	TemplateRendered(placeholdersResolved int, status ComplianceStatus)
	ComplianceFailed(result ComplianceResult)
}

// noopEmitter descarta todos os eventos; é o emitter padrão do Composer
type noopEmitter struct{}

func (noopEmitter) TemplateRequested(ComposeRequest)       {}
func (noopEmitter) TemplateRendered(int, ComplianceStatus) {}
func (noopEmitter) ComplianceFailed(ComplianceResult)      {}

// Composer orquestra o pipeline de composição: lookup no store ->
// substituição -> renderização -> validação. É stateless: cada Compose é puro
// em relação aos seus inputs mais uma leitura do store, então chamadas
// concorrentes são seguras sem locking.
type Composer struct {
	store   PersonaTemplateStore
	emitter AnalyticsEmitter
	log     *logrus.Entry
}

// ComposerOption configura um Composer na construção
type ComposerOption func(*Composer)

// WithEmitter define o emitter de analytics do composer
func WithEmitter(emitter AnalyticsEmitter) ComposerOption {
	return func(c *Composer) {
		if emitter != nil {
			c.emitter = emitter
		}
	}
}

// WithLogger define a entry de log do composer
func WithLogger(log *logrus.Entry) ComposerOption {
	return func(c *Composer) {
		if log != nil {
			c.log = log
		}
	}
}

// NewComposer cria um Composer sobre o store fornecido
func NewComposer(store PersonaTemplateStore, opts ...ComposerOption) *Composer {
	c := &Composer{
		store:   store,
		emitter: noopEmitter{},
		log:     logrus.NewEntry(logrus.StandardLogger()).WithField("module", "template"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose executa o pipeline completo e retorna o resultado da composição.
//
// O pipeline é uma sequência explícita de transformações puras
// (raw -> substituído -> renderizado -> validado), cada estágio recebendo
// apenas a saída do anterior, então a ordem é estrutural.
//
// Dois desfechos distintos:
//   - erro de resolução (persona/região/canal sem template): a operação
//     aborta inteira com um *common.Error classe 4xx; nada é renderizado;
//   - falha de compliance: NÃO é erro. O resultado volta completo com
//     status "fail" e a lista inteira de violações, junto do preview
//     renderizado.
func (c *Composer) Compose(ctx context.Context, req ComposeRequest) (*ComposeResult, error) {
	c.emitter.TemplateRequested(req)

	if !req.Channel.Valid() {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgInvalidChannel, common.StatusBadRequest, string(req.Channel))
	}

	bundle, err := c.store.GetRegion(ctx, req.PersonaID, req.Region)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeTemplateLookup, common.MsgPersonaRegionNotFound, common.StatusBadRequest, map[string]any{
				"personaId": req.PersonaID,
				"region":    req.Region,
			})
		}
		return nil, fmt.Errorf("falha ao consultar template de persona/região: %w", err)
	}

	if !bundle.HasChannel(req.Channel) {
		return nil, common.NewError(common.ErrCodeTemplateChannel, common.MsgChannelNotConfigured, common.StatusBadRequest, map[string]any{
			"personaId": req.PersonaID,
			"region":    req.Region,
			"channel":   req.Channel,
		})
	}

	raw, used := substituteChannel(bundle, req.Channel, req.Variables)
	rendered := Render(raw, req.Marketing)
	compliance := ValidateCompliance(rendered, req.Marketing)

	c.emitter.TemplateRendered(len(used), compliance.Status)
	if compliance.Status == ComplianceFail {
		c.emitter.ComplianceFailed(compliance)
		c.log.WithFields(logrus.Fields{
			"personaId": req.PersonaID,
			"region":    req.Region,
			"channel":   req.Channel,
			"errors":    compliance.Errors,
		}).Warn("Composição reprovada na validação de compliance")
	}

	return &ComposeResult{
		Channel:          req.Channel,
		Raw:              raw,
		Rendered:         rendered,
		PlaceholdersUsed: used,
		Compliance:       compliance,
	}, nil
}

// Preflight executa o mesmo pipeline de Compose mas retorna apenas o
// veredito de compliance, para checagens pré-envio que não precisam do
// conteúdo renderizado.
func (c *Composer) Preflight(ctx context.Context, req ComposeRequest) (*PreflightResult, error) {
	result, err := c.Compose(ctx, req)
	if err != nil {
		return nil, err
	}
	return &PreflightResult{Channel: result.Channel, Compliance: result.Compliance}, nil
}
