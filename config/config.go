package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration contém a configuração estática necessária para rodar a
// aplicação. Os valores vêm do arquivo config/env/<GO_ENV>.env e podem ser
// sobrescritos por variáveis de ambiente.
type Configuration struct {
	InitMode bool   `env:"INITMODE" envDefault:"false"` // Semeia templates de exemplo na subida (apenas dev)
	Address  string `env:"ADDRESS" envDefault:":8080"`  // Endereço do servidor

	// MongoDB (opcional: URI vazia usa o store em memória)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI"`             // URI de conexão com o MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"zap_engage"` // Nome do banco de dados

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origins permitidas (separadas por vírgula, * = todas)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Permite envio de credentials

	// Rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Máximo de requests por janela (0 = desabilitado)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Janela em segundos
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Liga/desliga o rate limiting
}

// getEnvPath retorna o caminho do arquivo env conforme o ambiente (GO_ENV).
// Procura o diretório config/env subindo a partir do diretório atual.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig lê a configuração do arquivo env do ambiente atual. Se o arquivo
// não existir, usa apenas as variáveis de ambiente do processo.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("falha ao carregar arquivo env %s: %w", envPath, err)
			}
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao parsear configuração: %w", err)
	}

	return &cfg, nil
}
