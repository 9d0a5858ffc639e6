package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/alexandria-crm/internal/infra/http/middleware"
	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeError converte a taxonomia de erro dos use cases em resposta HTTP.
// Erro técnico do backend também conta no contador de integração.
func writeError(w http.ResponseWriter, err error) {
	var dErr *usecase.DomainError
	var tErr *usecase.TechnicalError

	switch {
	case errors.As(err, &dErr):
		writeErrorResponse(w, statusForCode(dErr.Code), dErr.Code, dErr.Message)
	case errors.As(err, &tErr):
		middleware.RecordIntegrationError("sheets")
		writeErrorResponse(w, statusForCode(tErr.Code), tErr.Code, tErr.Message)
	default:
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeValidationError, usecase.CodeContactWithoutEmail:
		return http.StatusBadRequest
	case usecase.CodeContactNotFound:
		return http.StatusNotFound
	case usecase.CodeMailSendFailed, usecase.CodeSchemaMismatch:
		return http.StatusBadGateway
	case usecase.CodeBackendUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
