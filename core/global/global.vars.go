package global

import (
	"zap_engage/config"
	"zap_engage/core/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName contém os nomes das collections do MongoDB
type MongoDB_CollectionName struct {
	PersonaTemplates string // Collection dos bundles de template por (persona, região)
}

// Variáveis globais da aplicação
var Validate *validator.Validate       // Validador de dados de entrada
var MongoDB_Session *mongo.Client      // Sessão de conexão com o MongoDB
var ServerConfig *config.Configuration // Configuração do servidor

// MongoDB_ColNames contém os nomes das collections usadas pela aplicação
var MongoDB_ColNames = MongoDB_CollectionName{PersonaTemplates: "persona_templates"}

// RegistryCollections contém as collections registradas na inicialização
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
