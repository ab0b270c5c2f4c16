package handlers

import (
	"net/http"
	"runtime"
	"time"

	"portfolio-frontend/services"
	"portfolio-frontend/utils"
)

var startTime = time.Now()

// HealthHandler gère l'endpoint de santé
type HealthHandler struct {
	environment string
	api         *services.PortfolioAPI
}

// NewHealthHandler crée un nouveau HealthHandler
func NewHealthHandler(environment string, api *services.PortfolioAPI) *HealthHandler {
	return &HealthHandler{environment: environment, api: api}
}

// Health retourne l'état de santé du serveur avec métriques
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(startTime).String()

	// Vérifier la disponibilité de l'API portfolio
	apiStatus := "ok"
	if err := h.api.Ping(r.Context()); err != nil {
		apiStatus = "error"
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"message":    "Le serveur fonctionne correctement",
		"env":        h.environment,
		"api_status": apiStatus,
		"uptime":     uptime,
		"go_version": runtime.Version(),
	})
}
