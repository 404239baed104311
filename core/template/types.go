// Package template implementa o motor de composição e compliance de
// mensagens: resolve o template bruto de uma (persona, região), substitui as
// variáveis de runtime, aplica a normalização específica de cada canal e
// valida o resultado contra as regras regulatórias/da plataforma antes do
// envio.
package template

// Channel identifica o canal de entrega da mensagem. Cada canal tem formato,
// limites de tamanho e exigências de consentimento próprios.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
	ChannelEmail    Channel = "email"
	ChannelTelegram Channel = "telegram"
)

// AllChannels lista os canais suportados, na ordem canônica
var AllChannels = []Channel{ChannelWhatsApp, ChannelSMS, ChannelEmail, ChannelTelegram}

// Valid indica se o canal é um dos suportados
func (c Channel) Valid() bool {
	switch c {
	case ChannelWhatsApp, ChannelSMS, ChannelEmail, ChannelTelegram:
		return true
	}
	return false
}

// Region identifica o segmento geográfico que seleciona a variante do
// template (ex: macro-região brasileira: "sudeste", "nordeste").
type Region string

// CTATemplate é o call-to-action bruto de um template WhatsApp.
// URLTemplate pode conter placeholders {{...}}.
type CTATemplate struct {
	Text        string `json:"text" bson:"text"`
	URLTemplate string `json:"urlTemplate,omitempty" bson:"urlTemplate,omitempty"`
}

// WhatsAppTemplate é o template bruto do canal WhatsApp
type WhatsAppTemplate struct {
	Header string       `json:"header,omitempty" bson:"header,omitempty"`
	Body   string       `json:"body" bson:"body"`
	Footer string       `json:"footer,omitempty" bson:"footer,omitempty"`
	CTA    *CTATemplate `json:"cta,omitempty" bson:"cta,omitempty"`
}

// EmailTemplate é o template bruto do canal de email. Body é mantido apenas
// para o sistema de autoria; o motor compõe e valida só subject e preheader.
type EmailTemplate struct {
	Subject   string `json:"subject" bson:"subject"`
	Preheader string `json:"preheader,omitempty" bson:"preheader,omitempty"`
	Body      string `json:"body,omitempty" bson:"body,omitempty"`
}

// TelegramTemplate é o template bruto do canal Telegram.
// Keyboard é a lista ordenada de rótulos de botões.
type TelegramTemplate struct {
	Text     string   `json:"text" bson:"text"`
	Keyboard []string `json:"keyboard,omitempty" bson:"keyboard,omitempty"`
}

// PersonaRegionTemplate é o bundle de templates brutos de uma (persona,
// região), com no máximo um template por canal. É mantido por um sistema de
// autoria externo e somente lido pelo motor; a ausência do template do canal
// solicitado é uma falha dura de lookup.
type PersonaRegionTemplate struct {
	PersonaID string            `json:"personaId" bson:"personaId"`
	Region    Region            `json:"region" bson:"region"`
	ValueProp string            `json:"valueProp,omitempty" bson:"valueProp,omitempty"`
	WhatsApp  *WhatsAppTemplate `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	SMS       *string           `json:"sms,omitempty" bson:"sms,omitempty"`
	Email     *EmailTemplate    `json:"email,omitempty" bson:"email,omitempty"`
	Telegram  *TelegramTemplate `json:"telegram,omitempty" bson:"telegram,omitempty"`
}

// HasChannel indica se o bundle tem template para o canal
func (t *PersonaRegionTemplate) HasChannel(c Channel) bool {
	switch c {
	case ChannelWhatsApp:
		return t.WhatsApp != nil
	case ChannelSMS:
		return t.SMS != nil
	case ChannelEmail:
		return t.Email != nil
	case ChannelTelegram:
		return t.Telegram != nil
	}
	return false
}

// RenderedCTA é o call-to-action já substituído de um payload WhatsApp
type RenderedCTA struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// WhatsAppPayload é o payload do canal WhatsApp
type WhatsAppPayload struct {
	Header string       `json:"header,omitempty"`
	Body   string       `json:"body"`
	Footer string       `json:"footer,omitempty"`
	CTA    *RenderedCTA `json:"cta,omitempty"`
}

// SMSPayload é o payload do canal SMS
type SMSPayload struct {
	Text string `json:"text"`
}

// EmailPayload é o payload do canal de email
type EmailPayload struct {
	Subject   string `json:"subject"`
	Preheader string `json:"preheader,omitempty"`
}

// TelegramPayload é o payload do canal Telegram
type TelegramPayload struct {
	Text     string   `json:"text"`
	Keyboard []string `json:"keyboard,omitempty"`
}

// Payload é a união etiquetada dos payloads por canal. Exatamente um dos
// ponteiros é não-nil, conforme Channel. Renderer e validator fazem switch
// exaustivo sobre Channel, garantindo que todo canal é tratado em todo lugar.
type Payload struct {
	Channel  Channel          `json:"channel"`
	WhatsApp *WhatsAppPayload `json:"whatsapp,omitempty"`
	SMS      *SMSPayload      `json:"sms,omitempty"`
	Email    *EmailPayload    `json:"email,omitempty"`
	Telegram *TelegramPayload `json:"telegram,omitempty"`
}

// Clone retorna uma cópia profunda do payload. O renderer muta a cópia, assim
// o payload pós-substituição (raw) permanece intacto no resultado.
func (p Payload) Clone() Payload {
	out := Payload{Channel: p.Channel}
	if p.WhatsApp != nil {
		wa := *p.WhatsApp
		if p.WhatsApp.CTA != nil {
			cta := *p.WhatsApp.CTA
			wa.CTA = &cta
		}
		out.WhatsApp = &wa
	}
	if p.SMS != nil {
		sms := *p.SMS
		out.SMS = &sms
	}
	if p.Email != nil {
		email := *p.Email
		out.Email = &email
	}
	if p.Telegram != nil {
		tg := *p.Telegram
		tg.Keyboard = append([]string(nil), p.Telegram.Keyboard...)
		out.Telegram = &tg
	}
	return out
}

// ComplianceStatus é o veredito da validação de compliance
type ComplianceStatus string

const (
	CompliancePass ComplianceStatus = "pass"
	ComplianceFail ComplianceStatus = "fail"
)

// ComplianceResult é o resultado estruturado da validação. Invariante:
// Status == pass se e somente se Errors está vazio.
type ComplianceResult struct {
	Status ComplianceStatus `json:"status"`
	Errors []string         `json:"errors"`
}

// ComposeRequest é a requisição de composição de mensagem. As chaves de
// Variables correspondem aos tokens {{chave}} do template.
type ComposeRequest struct {
	PersonaID string            `json:"personaId"`
	Region    Region            `json:"region"`
	Channel   Channel           `json:"channel"`
	Variables map[string]string `json:"variables"`
	Marketing bool              `json:"marketing"`
}

// ComposeResult é o resultado completo de uma composição. Rendered é sempre
// preenchido, mesmo quando a compliance falha, para que o chamador possa
// inspecionar a renderização que falhou.
type ComposeResult struct {
	Channel          Channel          `json:"channel"`
	Raw              Payload          `json:"raw"`
	Rendered         Payload          `json:"rendered"`
	PlaceholdersUsed []string         `json:"placeholdersUsed"`
	Compliance       ComplianceResult `json:"compliance"`
}

// PreflightResult é a variante somente-validação de ComposeResult, usada em
// checagens pré-envio que não precisam do conteúdo renderizado.
type PreflightResult struct {
	Channel    Channel          `json:"channel"`
	Compliance ComplianceResult `json:"compliance"`
}
