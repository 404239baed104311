package common

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Sucesso
	StatusCreated   = 201 // Criado com sucesso
	StatusNoContent = 204 // Sucesso sem conteúdo de resposta

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Requisição inválida
	StatusNotFound        = 404 // Recurso não encontrado
	StatusConflict        = 409 // Conflito de dados
	StatusTooManyRequests = 429 // Muitas requisições

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Erro interno do servidor
	StatusServiceUnavailable  = 503 // Serviço indisponível
)

// Response Messages
const (
	// Success Messages
	MsgSuccess = "Operação realizada com sucesso"

	// Error Messages
	MsgBadRequest      = "Requisição inválida"
	MsgNotFound        = "Recurso não encontrado"
	MsgInternalError   = "Erro interno do sistema"
	MsgTooManyRequests = "Muitas requisições, tente novamente mais tarde"

	// Validation Messages
	MsgValidationError = "Dados inválidos"
	MsgInvalidFormat   = "Formato de dados inválido"
	MsgDatabaseError   = "Erro ao acessar o banco de dados"

	// Template/Compose Messages
	MsgPersonaRegionNotFound = "Persona/região não encontrada"
	MsgChannelNotConfigured  = "Template não configurado para o canal solicitado"
	MsgInvalidChannel        = "Canal de entrega inválido"
)

// ErrorCode define um código de erro detalhado
type ErrorCode struct {
	Code        string // Código do erro (ex: TPL_001)
	Category    string // Categoria do erro (ex: Template)
	SubCategory string // Subcategoria (ex: Lookup)
	Description string // Descrição detalhada
}

// Códigos de erro organizados por categoria
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Erro interno do sistema",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Erro de validação de dados",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Dados de entrada inválidos",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Formato de dados inválido",
	}

	// Template Errors (TPL_xxx)
	ErrCodeTemplateLookup = ErrorCode{
		Code:        "TPL_001",
		Category:    "Template",
		SubCategory: "Lookup",
		Description: "Template de persona/região não encontrado",
	}

	ErrCodeTemplateChannel = ErrorCode{
		Code:        "TPL_002",
		Category:    "Template",
		SubCategory: "Channel",
		Description: "Canal sem template configurado no bundle",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Erro de banco de dados",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Erro de conexão com o banco de dados",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Erro de consulta ao banco de dados",
	}
)

// Error define a estrutura de erro detalhada da aplicação
type Error struct {
	Code       ErrorCode // Código de erro detalhado
	Message    string    // Mensagem de erro voltada ao cliente
	StatusCode int       // HTTP status code correspondente
	Details    any       // Informações adicionais sobre o erro
}

// Error retorna a mensagem do erro
func (e *Error) Error() string {
	return e.Message
}

// Is compara erros pelo código e status, para suportar errors.Is com sentinelas
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	var other *Error
	if errors.As(target, &other) {
		return e.Code.Code == other.Code.Code && e.StatusCode == other.StatusCode
	}
	return false
}

// NewError cria um novo *Error com código, mensagem e status HTTP
func NewError(code ErrorCode, message string, statusCode int, details any) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Erros sentinela compartilhados pela aplicação
var (
	ErrNotFound      = NewError(ErrCodeDatabaseQuery, "Dados não encontrados", StatusNotFound, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
)

// ConvertMongoError converte erros do driver MongoDB para erros da aplicação.
// mongo.ErrNoDocuments vira ErrNotFound para que as camadas acima possam usar
// errors.Is(err, common.ErrNotFound) sem conhecer o driver.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrCodeDatabaseQuery, "Registro duplicado", StatusConflict, err.Error())
	}

	if strings.Contains(err.Error(), "connection") {
		return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, err.Error())
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err.Error())
}
