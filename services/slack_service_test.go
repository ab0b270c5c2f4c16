package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSlackServiceDesactive(t *testing.T) {
	svc := NewSlackService("")
	if svc.Enabled() {
		t.Error("le service sans webhook devrait être désactivé")
	}
	// L'envoi sur un service désactivé ne doit ni paniquer ni échouer
	if err := svc.SendCriticalError("GET", "/", "500", "test"); err != nil {
		t.Errorf("SendCriticalError() erreur = %v", err)
	}
}

func TestSendCriticalError(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewSlackService(server.URL)
	if err := svc.SendCriticalError("GET", "/mes-projects", "502", "Bad Gateway"); err != nil {
		t.Fatalf("SendCriticalError() erreur = %v", err)
	}

	for _, fragment := range []string{"/mes-projects", "502", "Bad Gateway"} {
		if !strings.Contains(received, fragment) {
			t.Errorf("le message Slack devrait contenir %q, obtenu %s", fragment, received)
		}
	}
}
