package main

import (
	"zap_engage/config"
	"zap_engage/core/analytics"
	"zap_engage/core/api/services"
	"zap_engage/core/database"
	"zap_engage/core/global"
	"zap_engage/core/logger"
	"zap_engage/core/template"
)

// InitGlobal inicializa as variáveis globais da aplicação
func InitGlobal() {
	initConfig()    // Configuração do servidor
	initValidator() // Validador de input
	initMongoDB()   // Conexão com o banco (opcional)
}

// initConfig carrega a configuração do ambiente
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.GetAppLogger().WithError(err).Fatal("Falha ao carregar a configuração")
	}
	global.ServerConfig = cfg
}

// initValidator registra o validador e as validações customizadas
func initValidator() {
	global.InitValidator()
	logger.GetAppLogger().Info("Validador inicializado")
}

// initMongoDB conecta no MongoDB quando há URI configurada. Sem URI a
// aplicação roda com o store de templates em memória (modo desenvolvimento).
func initMongoDB() {
	uri := global.ServerConfig.MongoDB_ConnectionURI
	if uri == "" {
		logger.GetAppLogger().Warn("MONGODB_CONNECTION_URI vazio: usando store de templates em memória")
		return
	}

	client, err := database.Connect(uri)
	if err != nil {
		logger.GetAppLogger().WithError(err).Fatal("Falha ao conectar no MongoDB")
	}
	global.MongoDB_Session = client

	if err := database.EnsureCollections(client, global.ServerConfig.MongoDB_DBName); err != nil {
		logger.GetAppLogger().WithError(err).Fatal("Falha ao preparar as collections")
	}
}

// InitComposer monta o composer sobre o store disponível (MongoDB quando há
// conexão, memória caso contrário) com o emitter de analytics da aplicação.
func InitComposer() *template.Composer {
	var store template.PersonaTemplateStore

	if global.MongoDB_Session != nil {
		service, err := services.NewPersonaTemplateService()
		if err != nil {
			logger.GetAppLogger().WithError(err).Fatal("Falha ao criar o service de templates")
		}
		store = service
	} else {
		memory := template.NewMemoryStore()
		if global.ServerConfig.InitMode {
			seedTemplates(memory)
		}
		store = memory
	}

	return template.NewComposer(
		store,
		template.WithEmitter(analytics.NewLogEmitter()),
		template.WithLogger(logger.WithModule("template")),
	)
}

// seedTemplates carrega bundles de exemplo no store em memória (INITMODE)
func seedTemplates(store *template.MemoryStore) {
	smsEconomia := "Oi {{nome}}! Economize {{economia_pct}}% na sua conta de luz. Responda SIM para saber mais."

	store.Put(&template.PersonaRegionTemplate{
		PersonaID: "familia-economica",
		Region:    "sudeste",
		ValueProp: "Economia na conta de luz para famílias",
		WhatsApp: &template.WhatsAppTemplate{
			Header: "Olá {{nome}}",
			Body:   "Economize {{economia_pct}}% na sua conta de luz com energia solar por assinatura.",
			Footer: "Obrigado",
			CTA: &template.CTATemplate{
				Text:        "Ver oferta",
				URLTemplate: "https://zapengage.example/ofertas/{{oferta_id}}",
			},
		},
		SMS: &smsEconomia,
		Email: &template.EmailTemplate{
			Subject:   "{{nome}}, sua economia de {{economia_pct}}% chegou",
			Preheader: "Energia solar por assinatura sem obra e sem investimento inicial",
		},
		Telegram: &template.TelegramTemplate{
			Text:     "Oi {{nome}}! Quer economizar {{economia_pct}}% na conta de luz?",
			Keyboard: []string{"Quero saber mais", "Agora não"},
		},
	})

	logger.WithModule("seed").Info("Templates de exemplo carregados no store em memória")
}
