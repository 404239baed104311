package template

import (
	"regexp"
)

// placeholderRegex casa tokens {{identificador}}. O identificador é
// case-sensitive e deve bater exatamente com a chave do mapa de variáveis
// (sem trim de espaços dentro das chaves).
var placeholderRegex = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Substitution é o resultado da substituição de placeholders em um campo.
// Used contém as chaves resolvidas, deduplicadas, na ordem da primeira
// ocorrência no template.
type Substitution struct {
	Text string
	Used []string
}

// Substitute substitui os tokens {{chave}} de tpl pelos valores de vars.
// Tokens sem chave correspondente ficam intactos no texto de saída (sem
// erro), o que permite renderização parcial durante autoria/preview.
func Substitute(tpl string, vars map[string]string) Substitution {
	used := []string{}
	seen := map[string]bool{}

	text := placeholderRegex.ReplaceAllStringFunc(tpl, func(token string) string {
		key := token[2 : len(token)-2]
		value, ok := vars[key]
		if !ok {
			return token
		}
		if !seen[key] {
			seen[key] = true
			used = append(used, key)
		}
		return value
	})

	return Substitution{Text: text, Used: used}
}

// usedMerger acumula as chaves usadas pelas substituições de vários campos,
// mantendo deduplicação e ordem de primeira ocorrência no bundle.
type usedMerger struct {
	keys []string
	seen map[string]bool
}

func newUsedMerger() *usedMerger {
	return &usedMerger{keys: []string{}, seen: map[string]bool{}}
}

// apply substitui um campo e acumula as chaves usadas
func (m *usedMerger) apply(tpl string, vars map[string]string) string {
	sub := Substitute(tpl, vars)
	for _, key := range sub.Used {
		if !m.seen[key] {
			m.seen[key] = true
			m.keys = append(m.keys, key)
		}
	}
	return sub.Text
}

// substituteChannel aplica a substituição a TODOS os campos textuais do
// template do canal (header, body, footer, URL do CTA, texto do SMS, subject,
// preheader, texto do Telegram), nunca só ao body. Pré-condição: o bundle tem
// template para o canal (checado pelo composer).
func substituteChannel(bundle *PersonaRegionTemplate, channel Channel, vars map[string]string) (Payload, []string) {
	merger := newUsedMerger()
	payload := Payload{Channel: channel}

	switch channel {
	case ChannelWhatsApp:
		wa := &WhatsAppPayload{
			Header: merger.apply(bundle.WhatsApp.Header, vars),
			Body:   merger.apply(bundle.WhatsApp.Body, vars),
			Footer: merger.apply(bundle.WhatsApp.Footer, vars),
		}
		if bundle.WhatsApp.CTA != nil {
			wa.CTA = &RenderedCTA{
				Text: merger.apply(bundle.WhatsApp.CTA.Text, vars),
				URL:  merger.apply(bundle.WhatsApp.CTA.URLTemplate, vars),
			}
		}
		payload.WhatsApp = wa

	case ChannelSMS:
		payload.SMS = &SMSPayload{Text: merger.apply(*bundle.SMS, vars)}

	case ChannelEmail:
		payload.Email = &EmailPayload{
			Subject:   merger.apply(bundle.Email.Subject, vars),
			Preheader: merger.apply(bundle.Email.Preheader, vars),
		}

	case ChannelTelegram:
		payload.Telegram = &TelegramPayload{
			Text:     merger.apply(bundle.Telegram.Text, vars),
			Keyboard: append([]string(nil), bundle.Telegram.Keyboard...),
		}
	}

	return payload, merger.keys
}
