// Package dto define os objetos de transferência da API HTTP.
package dto

import (
	"zap_engage/core/template"
)

// ComposeInput é o body das requisições de composição e preflight
type ComposeInput struct {
	PersonaID string            `json:"personaId" validate:"required"`
	Region    string            `json:"region" validate:"required"`
	Channel   string            `json:"channel" validate:"required,channel"`
	Variables map[string]string `json:"variables"`
	Marketing bool              `json:"marketing"`
}

// ToRequest converte o input validado para a requisição do motor
func (in *ComposeInput) ToRequest() template.ComposeRequest {
	variables := in.Variables
	if variables == nil {
		variables = map[string]string{}
	}
	return template.ComposeRequest{
		PersonaID: in.PersonaID,
		Region:    template.Region(in.Region),
		Channel:   template.Channel(in.Channel),
		Variables: variables,
		Marketing: in.Marketing,
	}
}
