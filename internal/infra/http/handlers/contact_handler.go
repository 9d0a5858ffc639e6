package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/alexandria-crm/internal/entity"
	"github.com/xavierca1/alexandria-crm/internal/infra/http/middleware"
	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

type ContactHandler struct {
	ListUC      *usecase.ListContactsUseCase
	CreateUC    *usecase.CreateContactUseCase
	UpdateUC    *usecase.UpdateContactUseCase
	rateLimiter *RateLimiter
}

func NewContactHandler(
	listUC *usecase.ListContactsUseCase,
	createUC *usecase.CreateContactUseCase,
	updateUC *usecase.UpdateContactUseCase,
) *ContactHandler {
	return &ContactHandler{
		ListUC:      listUC,
		CreateUC:    createUC,
		UpdateUC:    updateUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP no POST
	}
}

// filterFromQuery monta o ContactFilter a partir dos parâmetros da URL.
// Parâmetro ausente não restringe nada.
func filterFromQuery(r *http.Request) entity.ContactFilter {
	q := r.URL.Query()
	return entity.ContactFilter{
		Status:     q.Get("status"),
		Contractor: q.Get("contractor"),
		Industry:   q.Get("industry"),
		Query:      q.Get("q"),
	}
}

func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.ListUC.Execute(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED",
			"Too many requests. Please try again later.")
		return
	}

	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	contact, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordContactCreated()
	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contactId")

	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	contact, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}
