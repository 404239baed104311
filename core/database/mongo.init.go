// Package database cuida da conexão com o MongoDB e da preparação das
// collections usadas pela aplicação.
package database

import (
	"context"
	"fmt"
	"time"

	"zap_engage/core/global"
	"zap_engage/core/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre a conexão com o MongoDB e verifica com um ping.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("falha no ping ao MongoDB: %w", err)
	}

	logger.WithModule("database").Info("Conexão com o MongoDB estabelecida")
	return client, nil
}

// EnsureCollections garante que as collections necessárias existem e as
// registra no registry global, de onde os services as consomem.
func EnsureCollections(client *mongo.Client, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)
	collections := []string{global.MongoDB_ColNames.PersonaTemplates}

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("falha ao listar collections: %w", err)
	}

	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	log := logger.WithModule("database")
	for _, name := range collections {
		if !existingSet[name] {
			log.Infof("Collection %s não existe, criando", name)
			if err := db.CreateCollection(ctx, name); err != nil {
				return fmt.Errorf("falha ao criar collection %s: %w", name, err)
			}
		}

		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			return fmt.Errorf("falha ao registrar collection %s: %w", name, err)
		}
	}

	// Índice composto do lookup (personaId, region): é a única consulta do
	// motor e precisa ser única por par.
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "personaId", Value: 1}, {Key: "region", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	col := db.Collection(global.MongoDB_ColNames.PersonaTemplates)
	if _, err := col.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("falha ao criar índice de persona_templates: %w", err)
	}

	return nil
}
