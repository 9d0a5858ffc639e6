package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

type NoteHandler struct {
	AddUC  *usecase.AddNoteUseCase
	ListUC *usecase.ListNotesUseCase
}

func NewNoteHandler(addUC *usecase.AddNoteUseCase, listUC *usecase.ListNotesUseCase) *NoteHandler {
	return &NoteHandler{AddUC: addUC, ListUC: listUC}
}

func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactId")

	notes, err := h.ListUC.Execute(r.Context(), contactID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactId")

	var input usecase.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	note, err := h.AddUC.Execute(r.Context(), contactID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}
