package handlers

import (
	"net/http"

	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

type PipelineHandler struct {
	PipelineUC *usecase.PipelineUseCase
}

func NewPipelineHandler(pipelineUC *usecase.PipelineUseCase) *PipelineHandler {
	return &PipelineHandler{PipelineUC: pipelineUC}
}

// Handle devolve os contatos agrupados pelos buckets fixos do pipeline.
// Os quatro buckets vêm sempre, mesmo vazios.
func (h *PipelineHandler) Handle(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.PipelineUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}
