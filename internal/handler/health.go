package handler

import (
	"net/http"
	"time"

	"github.com/mbastos/tarefas-api/pkg/respond"
)

type HealthHandler struct {
	version     string
	environment string
}

func NewHealthHandler(version, environment string) *HealthHandler {
	return &HealthHandler{version: version, environment: environment}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{
		"message": "Bem-vindo à API de Gerenciamento de Tarefas!",
	})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"version":     h.version,
		"environment": h.environment,
	})
}
