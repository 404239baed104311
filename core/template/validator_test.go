package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWhatsApp(t *testing.T) {
	base := func() Payload {
		return Payload{
			Channel: ChannelWhatsApp,
			WhatsApp: &WhatsAppPayload{
				Header: "Olá",
				Body:   "Corpo curto",
				Footer: "Obrigado",
			},
		}
	}

	t.Run("payload dentro das regras passa", func(t *testing.T) {
		result := ValidateCompliance(base(), false)

		assert.Equal(t, CompliancePass, result.Status)
		assert.Empty(t, result.Errors)
	})

	t.Run("body com 1024 chars passa, 1025 falha", func(t *testing.T) {
		payload := base()
		payload.WhatsApp.Body = strings.Repeat("a", 1024)
		assert.Equal(t, CompliancePass, ValidateCompliance(payload, false).Status)

		payload.WhatsApp.Body = strings.Repeat("a", 1025)
		result := ValidateCompliance(payload, false)
		assert.Equal(t, ComplianceFail, result.Status)
		assert.Contains(t, result.Errors, MsgWhatsAppBodyTooLong)
	})

	t.Run("link no body sem CTA URL falha", func(t *testing.T) {
		payload := base()
		payload.WhatsApp.Body = "Acesse https://exemplo.com agora"

		result := ValidateCompliance(payload, false)

		assert.Equal(t, ComplianceFail, result.Status)
		assert.Contains(t, result.Errors, MsgWhatsAppLinkNoBody)
	})

	t.Run("link no body com CTA URL passa", func(t *testing.T) {
		payload := base()
		payload.WhatsApp.Body = "Acesse https://exemplo.com agora"
		payload.WhatsApp.CTA = &RenderedCTA{Text: "Ver", URL: "https://exemplo.com/oferta"}

		assert.Equal(t, CompliancePass, ValidateCompliance(payload, false).Status)
	})

	t.Run("marketing sem opt-out no footer falha mesmo pós-renderer", func(t *testing.T) {
		// Pega opt-outs ruins vindos do store, independente da injeção
		result := ValidateCompliance(base(), true)

		assert.Equal(t, ComplianceFail, result.Status)
		assert.Contains(t, result.Errors, MsgWhatsAppNoOptOut)
	})

	t.Run("violações acumulam, sem short-circuit", func(t *testing.T) {
		payload := base()
		payload.WhatsApp.Body = strings.Repeat("a", 1020) + " http://x"

		result := ValidateCompliance(payload, true)

		assert.Equal(t, ComplianceFail, result.Status)
		assert.Len(t, result.Errors, 3, "todas as regras violadas devem aparecer em uma passada")
		assert.Contains(t, result.Errors, MsgWhatsAppBodyTooLong)
		assert.Contains(t, result.Errors, MsgWhatsAppLinkNoBody)
		assert.Contains(t, result.Errors, MsgWhatsAppNoOptOut)
	})
}

func TestValidateSMS(t *testing.T) {
	smsPayload := func(text string) Payload {
		return Payload{Channel: ChannelSMS, SMS: &SMSPayload{Text: text}}
	}

	t.Run("exatamente 160 chars passa", func(t *testing.T) {
		result := ValidateCompliance(smsPayload(strings.Repeat("a", 160)), false)

		assert.Equal(t, CompliancePass, result.Status)
	})

	t.Run("161 chars falha com exatamente um erro", func(t *testing.T) {
		result := ValidateCompliance(smsPayload(strings.Repeat("a", 161)), false)

		assert.Equal(t, ComplianceFail, result.Status)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "SMS > 160 chars")
	})

	t.Run("marketing sem opt-out falha", func(t *testing.T) {
		result := ValidateCompliance(smsPayload("Promoção"), true)

		assert.Equal(t, ComplianceFail, result.Status)
		assert.Contains(t, result.Errors, MsgSMSNoOptOut)
	})

	t.Run("marketing com PARE passa", func(t *testing.T) {
		result := ValidateCompliance(smsPayload("Promoção! PARE p/ sair"), true)

		assert.Equal(t, CompliancePass, result.Status)
	})
}

func TestValidateEmail(t *testing.T) {
	emailPayload := func(subject, preheader string) Payload {
		return Payload{Channel: ChannelEmail, Email: &EmailPayload{Subject: subject, Preheader: preheader}}
	}

	t.Run("dentro dos limites passa", func(t *testing.T) {
		result := ValidateCompliance(emailPayload("Assunto", "Preheader"), true)

		assert.Equal(t, CompliancePass, result.Status)
	})

	t.Run("checagem defensiva pega payload que escapou do truncamento", func(t *testing.T) {
		result := ValidateCompliance(emailPayload(strings.Repeat("s", 79), strings.Repeat("p", 111)), false)

		assert.Equal(t, ComplianceFail, result.Status)
		assert.Contains(t, result.Errors, MsgEmailSubjectTooLong)
		assert.Contains(t, result.Errors, MsgEmailPreheaderTooLong)
	})
}

func TestValidateTelegram(t *testing.T) {
	telegramPayload := func(buttons int) Payload {
		keyboard := make([]string, buttons)
		for i := range keyboard {
			keyboard[i] = "Botão"
		}
		return Payload{Channel: ChannelTelegram, Telegram: &TelegramPayload{Text: "Oi", Keyboard: keyboard}}
	}

	t.Run("4 botões passa", func(t *testing.T) {
		result := ValidateCompliance(telegramPayload(4), false)

		assert.Equal(t, CompliancePass, result.Status)
	})

	t.Run("5 botões falha", func(t *testing.T) {
		result := ValidateCompliance(telegramPayload(5), false)

		assert.Equal(t, ComplianceFail, result.Status)
		assert.Contains(t, result.Errors, MsgTelegramTooManyButtons)
	})
}

func TestValidateIdempotence(t *testing.T) {
	payload := Payload{
		Channel: ChannelSMS,
		SMS:     &SMSPayload{Text: strings.Repeat("a", 200)},
	}

	first := ValidateCompliance(payload, true)
	second := ValidateCompliance(payload, true)

	assert.Equal(t, first, second, "validar duas vezes o mesmo payload deve dar o mesmo resultado")
}

func TestValidateStatusInvariant(t *testing.T) {
	// status == pass se e somente se a lista de erros está vazia
	pass := ValidateCompliance(Payload{Channel: ChannelSMS, SMS: &SMSPayload{Text: "ok"}}, false)
	assert.Equal(t, CompliancePass, pass.Status)
	assert.Empty(t, pass.Errors)

	fail := ValidateCompliance(Payload{Channel: ChannelSMS, SMS: &SMSPayload{Text: strings.Repeat("a", 161)}}, false)
	assert.Equal(t, ComplianceFail, fail.Status)
	assert.NotEmpty(t, fail.Errors)
}
