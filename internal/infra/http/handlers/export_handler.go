package handlers

import (
	"net/http"

	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

type ExportHandler struct {
	ExportUC *usecase.ExportContactsUseCase
}

func NewExportHandler(exportUC *usecase.ExportContactsUseCase) *ExportHandler {
	return &ExportHandler{ExportUC: exportUC}
}

// Handle responde a visão filtrada atual como download CSV. Aceita os
// mesmos parâmetros de filtro da listagem.
func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.ExportUC.Execute(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="contacts.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
