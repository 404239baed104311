package template

import (
	"strings"
	"unicode/utf8"
)

// Mensagens de erro de compliance. Cada regra violada produz exatamente uma
// destas mensagens; uma resposta acumula todas as violações de uma vez.
const (
	MsgWhatsAppBodyTooLong    = "WhatsApp body > 1024 chars"
	MsgWhatsAppLinkNoBody     = "WhatsApp: link no body sem CTA URL"
	MsgWhatsAppNoOptOut       = "WhatsApp: marketing sem opt-out no footer"
	MsgSMSTooLong             = "SMS > 160 chars"
	MsgSMSNoOptOut            = "SMS: marketing sem opt-out"
	MsgEmailSubjectTooLong    = "Email: subject > 78 chars"
	MsgEmailPreheaderTooLong  = "Email: preheader > 110 chars"
	MsgTelegramTooManyButtons = "Telegram: >4 botões"
)

// Limites de compliance por canal
const (
	maxWhatsAppBodyLen  = 1024
	maxSMSLen           = 160
	maxTelegramKeyboard = 4
)

// Rule é uma regra de compliance pura: recebe o payload renderizado e a flag
// de marketing e retorna "" quando passa ou a mensagem da violação. Regras
// são independentes e unitariamente testáveis; o validator apenas executa
// todas as regras do canal e coleta os resultados não vazios.
type Rule func(payload Payload, marketing bool) string

// Regras do WhatsApp
func ruleWhatsAppBodyLength(p Payload, _ bool) string {
	if utf8.RuneCountInString(p.WhatsApp.Body) > maxWhatsAppBodyLen {
		return MsgWhatsAppBodyTooLong
	}
	return ""
}

// Política da plataforma: links pertencem ao CTA, não ao body. Um link solto
// no body só é aceito quando o CTA tem URL.
func ruleWhatsAppLinkInBody(p Payload, _ bool) string {
	body := p.WhatsApp.Body
	hasLink := strings.Contains(body, "http://") || strings.Contains(body, "https://")
	if !hasLink {
		return ""
	}
	if p.WhatsApp.CTA == nil || p.WhatsApp.CTA.URL == "" {
		return MsgWhatsAppLinkNoBody
	}
	return ""
}

// Checada pós-injeção do renderer, então normalmente passa; continua aqui de
// forma independente para pegar opt-outs ruins vindos do store.
func ruleWhatsAppOptOut(p Payload, marketing bool) string {
	if marketing && !ContainsOptOut(p.WhatsApp.Footer) {
		return MsgWhatsAppNoOptOut
	}
	return ""
}

// Regras do SMS
func ruleSMSLength(p Payload, _ bool) string {
	if utf8.RuneCountInString(p.SMS.Text) > maxSMSLen {
		return MsgSMSTooLong
	}
	return ""
}

func ruleSMSOptOut(p Payload, marketing bool) string {
	if marketing && !ContainsOptOut(p.SMS.Text) {
		return MsgSMSNoOptOut
	}
	return ""
}

// Regras de email: garantidas pelo truncamento do renderer, re-checadas aqui
// por defesa.
func ruleEmailSubjectLength(p Payload, _ bool) string {
	if utf8.RuneCountInString(p.Email.Subject) > maxEmailSubjectLen {
		return MsgEmailSubjectTooLong
	}
	return ""
}

func ruleEmailPreheaderLength(p Payload, _ bool) string {
	if utf8.RuneCountInString(p.Email.Preheader) > maxEmailPreheaderLen {
		return MsgEmailPreheaderTooLong
	}
	return ""
}

// Regra do Telegram
func ruleTelegramKeyboard(p Payload, _ bool) string {
	if len(p.Telegram.Keyboard) > maxTelegramKeyboard {
		return MsgTelegramTooManyButtons
	}
	return ""
}

// rulesByChannel é o conjunto fixo de regras de cada canal
var rulesByChannel = map[Channel][]Rule{
	ChannelWhatsApp: {ruleWhatsAppBodyLength, ruleWhatsAppLinkInBody, ruleWhatsAppOptOut},
	ChannelSMS:      {ruleSMSLength, ruleSMSOptOut},
	ChannelEmail:    {ruleEmailSubjectLength, ruleEmailPreheaderLength},
	ChannelTelegram: {ruleTelegramKeyboard},
}

// ValidateCompliance executa todas as regras do canal do payload e acumula
// as violações. Nenhuma regra interrompe as demais: o chamador recebe a lista
// completa de problemas em uma única passada, para que uma UI possa exibir a
// remediação inteira de uma vez.
func ValidateCompliance(payload Payload, marketing bool) ComplianceResult {
	errs := []string{}
	for _, rule := range rulesByChannel[payload.Channel] {
		if msg := rule(payload, marketing); msg != "" {
			errs = append(errs, msg)
		}
	}

	status := CompliancePass
	if len(errs) > 0 {
		status = ComplianceFail
	}
	return ComplianceResult{Status: status, Errors: errs}
}
