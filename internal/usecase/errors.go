package usecase

import (
	"errors"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// Códigos usados na taxonomia de erro da aplicação.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeContactNotFound     = "CONTACT_NOT_FOUND"
	CodeContactWithoutEmail = "CONTACT_WITHOUT_EMAIL"
	CodeMailSendFailed      = "MAIL_SEND_FAILED"
	CodeSchemaMismatch      = "SCHEMA_MISMATCH"
	CodeBackendUnavailable  = "BACKEND_UNAVAILABLE"
	CodeBackendError        = "BACKEND_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// mapStoreError traduz erros do Record Store para a taxonomia da aplicação.
// Nenhum erro é engolido nem repetido aqui.
func mapStoreError(err error) error {
	var schemaErr *entity.SchemaError
	switch {
	case errors.Is(err, entity.ErrContactNotFound):
		return &DomainError{Code: CodeContactNotFound, Message: "contact not found"}
	case errors.As(err, &schemaErr):
		return &TechnicalError{Code: CodeSchemaMismatch, Message: schemaErr.Error()}
	case errors.Is(err, entity.ErrBackendUnavailable):
		return &TechnicalError{Code: CodeBackendUnavailable, Message: err.Error()}
	default:
		return &TechnicalError{Code: CodeBackendError, Message: err.Error()}
	}
}
