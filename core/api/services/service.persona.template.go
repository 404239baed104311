// Package services contém os services de acesso a dados da aplicação.
package services

import (
	"context"
	"fmt"

	"zap_engage/core/common"
	"zap_engage/core/global"
	"zap_engage/core/template"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PersonaTemplateService é o PersonaTemplateStore sobre o MongoDB. O motor
// trata o store como somente-leitura: a autoria dos bundles é de um sistema
// externo, então o service só expõe lookup.
type PersonaTemplateService struct {
	collection *mongo.Collection
}

// NewPersonaTemplateService cria o service buscando a collection no registry
func NewPersonaTemplateService() (*PersonaTemplateService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PersonaTemplates)
	if !exist {
		return nil, fmt.Errorf("collection persona_templates não registrada: %w", common.ErrNotFound)
	}

	return &PersonaTemplateService{collection: collection}, nil
}

// GetRegion implementa template.PersonaTemplateStore: busca o bundle da
// (persona, região). Par desconhecido vira common.ErrNotFound.
func (s *PersonaTemplateService) GetRegion(ctx context.Context, personaID string, region template.Region) (*template.PersonaRegionTemplate, error) {
	filter := bson.M{
		"personaId": personaID,
		"region":    region,
	}

	var bundle template.PersonaRegionTemplate
	if err := s.collection.FindOne(ctx, filter).Decode(&bundle); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return &bundle, nil
}
