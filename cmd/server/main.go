package main

import (
	"fmt"

	"zap_engage/core/global"
	"zap_engage/core/logger"
)

// initLogger inicializa e configura o logger de toda a aplicação
func initLogger() {
	// O logger lê as variáveis de ambiente para se configurar
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Falha ao inicializar o logger: %v", err))
	}

	logger.GetAppLogger().Info("Sistema de logging inicializado")
}

// mainThread inicializa e roda o servidor Fiber
func mainThread() {
	composer := InitComposer()
	app := InitFiberApp(composer)

	log := logger.GetAppLogger()
	address := global.ServerConfig.Address
	log.Infof("Iniciando servidor Fiber em %s", address)

	if err := app.Listen(address); err != nil {
		log.WithError(err).Fatal("Servidor Fiber encerrou com erro")
	}
}

func main() {
	initLogger()
	InitGlobal()
	mainThread()
}
