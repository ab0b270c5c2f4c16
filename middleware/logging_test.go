package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingRequestID(t *testing.T) {
	handler := Logging(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("chaque réponse devrait porter un X-Request-ID")
	}
}

func TestLoggingStatutCapture(t *testing.T) {
	// Un handler en erreur serveur ne doit pas paniquer sans service Slack
	handler := Logging(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest(http.MethodGet, "/mes-projects", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Errorf("Code = %v, attendu 502", rr.Code)
	}
}
