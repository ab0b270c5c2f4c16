package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-frontend/services"
)

// newTestRenderer charge les gabarits embarqués, fatal si l'un d'eux ne
// s'analyse pas
func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("chargement des gabarits: %v", err)
	}
	return renderer
}

// newTestAPI démarre un faux backend et retourne un client pointant dessus
func newTestAPI(t *testing.T, handler http.HandlerFunc) *services.PortfolioAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return services.NewPortfolioAPI(server.URL)
}

// brokenAPI retourne un client dont toutes les requêtes échouent en 500
func brokenAPI(t *testing.T) *services.PortfolioAPI {
	t.Helper()
	return newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"erreur interne"}`, http.StatusInternalServerError)
	})
}
