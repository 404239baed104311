package template

import (
	"strings"
)

// OptOutSuffix é o sufixo de opt-out injetado em mensagens de marketing de
// WhatsApp e SMS quando o template não traz frase de opt-out própria.
const OptOutSuffix = "SAIR p/ descad."

// optOutPhrases é a whitelist de frases aceitas como opt-out pré-existente.
// A checagem é por substring, não por igualdade: o conjunto exato de frases
// aceitas é uma decisão de negócio/jurídica, não uma gramática formal.
var optOutPhrases = []string{"SAIR", "PARE"}

// Limites de tamanho aplicados pelo renderer de email
const (
	maxEmailSubjectLen   = 78
	maxEmailPreheaderLen = 110
)

// ContainsOptOut indica se o texto já contém alguma frase de opt-out aceita
func ContainsOptOut(text string) bool {
	for _, phrase := range optOutPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// truncateWithEllipsis trunca o texto para max runas, substituindo a última
// por "…" quando há truncamento. Texto dentro do limite volta intacto.
func truncateWithEllipsis(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

// appendOptOut anexa o sufixo de opt-out ao texto, se ainda não houver frase
// de opt-out. Idempotente: compor duas vezes não duplica o sufixo.
func appendOptOut(text string) string {
	if ContainsOptOut(text) {
		return text
	}
	if text == "" {
		return OptOutSuffix
	}
	return text + " " + OptOutSuffix
}

// Render aplica a normalização mecânica específica do canal sobre o payload
// substituído e retorna o payload pronto para validação. A entrada não é
// mutada. Isto é normalização, não validação: conteúdo grande demais em
// WhatsApp/SMS segue intacto e vira falha de compliance, nunca truncamento
// silencioso; só o email trunca, por construção sempre dentro da regra.
func Render(payload Payload, marketing bool) Payload {
	rendered := payload.Clone()

	switch rendered.Channel {
	case ChannelWhatsApp:
		if marketing {
			rendered.WhatsApp.Footer = appendOptOut(rendered.WhatsApp.Footer)
		}

	case ChannelSMS:
		if marketing {
			rendered.SMS.Text = appendOptOut(rendered.SMS.Text)
		}

	case ChannelEmail:
		rendered.Email.Subject = truncateWithEllipsis(rendered.Email.Subject, maxEmailSubjectLen)
		rendered.Email.Preheader = truncateWithEllipsis(rendered.Email.Preheader, maxEmailPreheaderLen)

	case ChannelTelegram:
		// Telegram não sofre mutação: texto e botões passam direto e a
		// contagem de botões é decidida só pela validação.
	}

	return rendered
}
