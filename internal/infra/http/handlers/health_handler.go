package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/alexandria-crm/internal/config"
)

type HealthHandler struct {
	Cfg       *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Cfg:       cfg,
		StartTime: time.Now(),
	}
}

// Handle reporta a configuração dos colaboradores externos e o uptime.
// Não faz chamada real à planilha nem ao SMTP: o probe roda com frequência
// e não deve gastar quota dos backends.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Cfg.SpreadsheetID != "" {
		deps["sheets"] = "configured"
	} else {
		deps["sheets"] = "not configured"
	}

	if h.Cfg.SMTPHost != "" && len(h.Cfg.Senders) > 0 {
		deps["mail"] = "configured"
	} else {
		deps["mail"] = "not configured"
	}

	response := HealthResponse{
		Status:       "healthy",
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	writeJSON(w, http.StatusOK, response)
}
