package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/alexandria-crm/internal/infra/http/middleware"
	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

type EmailHandler struct {
	SendUC *usecase.SendEmailUseCase
	LogUC  *usecase.ListEmailLogUseCase
}

func NewEmailHandler(sendUC *usecase.SendEmailUseCase, logUC *usecase.ListEmailLogUseCase) *EmailHandler {
	return &EmailHandler{SendUC: sendUC, LogUC: logUC}
}

// HandleSend dispara o envio e responde com a entrada de log do desfecho.
// Envio que falhou também tem entrada de log; a resposta é 502 com o
// motivo, e quem decide tentar de novo é o usuário.
func (h *EmailHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactId")

	var input usecase.SendEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	record, err := h.SendUC.Execute(r.Context(), contactID, input)
	if record != nil {
		middleware.RecordEmailSent(input.Account, record.Status)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *EmailHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactId")

	entries, err := h.LogUC.History(r.Context(), contactID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *EmailHandler) HandleLog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.LogUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
