package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func adminRouter(handler *AdminProjectsHandler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/admin/projects", handler.List).Methods("GET")
	router.HandleFunc("/admin/projects", handler.Create).Methods("POST")
	router.HandleFunc("/admin/projects/{id}/edit", handler.Edit).Methods("GET")
	router.HandleFunc("/admin/projects/{id}", handler.Update).Methods("POST")
	router.HandleFunc("/admin/projects/{id}/delete", handler.ConfirmDelete).Methods("GET")
	router.HandleFunc("/admin/projects/{id}/delete", handler.Delete).Methods("POST")
	return router
}

func adminForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/projects", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAdminCreationSansCategorieEnvoieNull(t *testing.T) {
	var payload string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/projects/" && r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			payload = string(body)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`[]`))
	})

	router := adminRouter(NewAdminProjectsHandler(api, newTestRenderer(t)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminForm(url.Values{
		"title_fr":     {"Nouveau projet"},
		"title_en":     {"New project"},
		"category":     {""},
		"technologies": {"100", "101"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("statut = %d, attendu 303", rec.Code)
	}
	if !strings.Contains(payload, `"category":null`) {
		t.Errorf("une catégorie vide doit être sérialisée en null, payload: %s", payload)
	}

	var decoded struct {
		Technologies []int64 `json:"technologies"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("payload illisible: %v", err)
	}
	if len(decoded.Technologies) != 2 {
		t.Errorf("technologies = %v, attendu deux identifiants", decoded.Technologies)
	}
}

func TestAdminEditionPreRemplitLeFormulaire(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects/5/":
			w.Write([]byte(`{"id":5,"title_fr":"Projet existant","title_en":"Existing project","category":{"id":10,"name_fr":"Web","name_en":"Web"},"technologies":[{"id":100,"name":"Go"}]}`))
		case "/project-categories/":
			w.Write([]byte(`[{"id":10,"name_fr":"Web","name_en":"Web"}]`))
		case "/technologies/":
			w.Write([]byte(`[{"id":100,"name":"Go"},{"id":101,"name":"Swift"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})

	router := adminRouter(NewAdminProjectsHandler(api, newTestRenderer(t)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/projects/5/edit", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("statut = %d, attendu 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="Projet existant"`) {
		t.Error("le titre du projet devrait pré-remplir le formulaire")
	}
	if !strings.Contains(body, `action="/admin/projects/5"`) {
		t.Error("le formulaire devrait cibler la route de modification")
	}
}

func TestAdminSuppressionRedirigeAvecStatut(t *testing.T) {
	var deleted bool
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/projects/5/" && r.Method == http.MethodDelete {
			deleted = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`[]`))
	})

	router := adminRouter(NewAdminProjectsHandler(api, newTestRenderer(t)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/projects/5/delete", nil))

	if !deleted {
		t.Error("la suppression aurait dû atteindre le backend")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("statut = %d, attendu 303", rec.Code)
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "statut=supprime") {
		t.Errorf("Location = %q, le statut de suppression devrait être relayé", location)
	}
}

func TestAdminListeSignaleUnEchecDeChargement(t *testing.T) {
	router := adminRouter(NewAdminProjectsHandler(brokenAPI(t), newTestRenderer(t)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/projects", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("statut = %d, attendu 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Impossible de charger") {
		t.Error("l'échec de chargement devrait être signalé sur la page")
	}
}
