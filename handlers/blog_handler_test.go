package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

func TestBlogListeVedettesEnPremier(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[
			{"id":1,"title_fr":"Article ordinaire","title_en":"Regular article","featured":false},
			{"id":2,"title_fr":"Article vedette","title_en":"Featured article","featured":true}
		]`))
	})

	handler := NewBlogHandler(api, newTestRenderer(t))
	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/blog", nil))

	body := rec.Body.String()
	featured := strings.Index(body, "Article vedette")
	regular := strings.Index(body, "Article ordinaire")
	if featured == -1 || regular == -1 {
		t.Fatal("les deux articles devraient apparaître")
	}
	if featured > regular {
		t.Error("l'article vedette devrait apparaître avant l'article ordinaire")
	}
}

func TestBlogDetailIncrementeLesVues(t *testing.T) {
	incremented := make(chan struct{}, 1)
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/articles/7/" && r.Method == http.MethodGet:
			w.Write([]byte(`{"id":7,"title_fr":"Mon article","title_en":"My article","content_fr":"Contenu","content_en":"Content"}`))
		case r.URL.Path == "/articles/7/increment_views/" && r.Method == http.MethodPost:
			incremented <- struct{}{}
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	})

	router := mux.NewRouter()
	handler := NewBlogHandler(api, newTestRenderer(t))
	router.HandleFunc("/blog/{id}", handler.Detail).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("statut = %d, attendu 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Mon article") {
		t.Error("le titre de l'article devrait apparaître")
	}

	select {
	case <-incremented:
	case <-time.After(2 * time.Second):
		t.Error("le compteur de vues devrait être incrémenté en arrière-plan")
	}
}

func TestBlogDetailIntrouvable(t *testing.T) {
	router := mux.NewRouter()
	handler := NewBlogHandler(brokenAPI(t), newTestRenderer(t))
	router.HandleFunc("/blog/{id}", handler.Detail).Methods("GET")

	tests := []struct {
		nom string
		url string
	}{
		{"identifiant non numérique", "/blog/abc"},
		{"article inexistant", "/blog/999"},
	}

	for _, tt := range tests {
		t.Run(tt.nom, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != http.StatusNotFound {
				t.Errorf("statut = %d, attendu 404", rec.Code)
			}
		})
	}
}
