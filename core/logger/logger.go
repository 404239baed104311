package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers guarda as instâncias de logger por nome
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config contém a configuração de logging em uso
	config *LogConfig
)

// Init inicializa o sistema de logging com a configuração fornecida.
// Com cfg == nil, usa DefaultConfig().
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Cria o diretório de logs se ainda não existir
	if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório de logs: %w", err)
	}

	return nil
}

// GetLogger retorna o logger pelo nome (app, error), criando sob demanda.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Se ainda não houve Init, inicializa com configuração padrão
	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("falha ao inicializar logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger

	return logger
}

// createLogger cria um logger novo com a configuração atual
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// Writers separados (arquivo com rotação + stdout), todos atrás de um
	// hook assíncrono para não bloquear o request handling quando o I/O de
	// arquivo estiver lento.
	var writers []io.Writer

	if config.Output == "file" || config.Output == "both" {
		fileWriter := &lumberjack.Logger{
			Filename:   getLogFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		writers = append(writers, fileWriter)
	}

	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	if len(writers) > 0 {
		asyncHook := NewAsyncHookWithWriters(writers, 1000)
		logger.AddHook(asyncHook)
		// Descarta o output direto: o hook é o único caminho de escrita,
		// senão as linhas saem duplicadas.
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)

	logger.WithFields(logrus.Fields{
		"log_file": getLogFilePath(name),
		"level":    logger.GetLevel().String(),
		"format":   config.Format,
		"output":   config.Output,
	}).Info("Logger inicializado")

	return logger
}

// getLogFilePath retorna o caminho do arquivo de log para o logger name
func getLogFilePath(name string) string {
	var filename string

	switch name {
	case "app":
		filename = config.AppFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}

	return filepath.Join(config.LogPath, filename)
}

// GetAppLogger retorna o logger principal da aplicação
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger retorna o logger dedicado a erros
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
