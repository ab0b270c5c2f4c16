package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-frontend/i18n"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		name        string
		cookieValue string
		hasCookie   bool
		defaultLang i18n.Lang
		want        i18n.Lang
	}{
		{"cookie fr", "fr", true, i18n.French, i18n.French},
		{"cookie en", "en", true, i18n.French, i18n.English},
		{"sans cookie", "", false, i18n.French, i18n.French},
		{"sans cookie avec défaut en", "", false, i18n.English, i18n.English},
		{"cookie invalide retombe sur le défaut", "klingon", true, i18n.French, i18n.French},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got i18n.Lang
			handler := Language(tt.defaultLang)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetLangFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.hasCookie {
				req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: tt.cookieValue})
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("langue résolue = %v, attendu %v", got, tt.want)
			}
		})
	}
}

func TestGetLangFromContextSansValeur(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if lang := GetLangFromContext(req.Context()); lang != i18n.French {
		t.Errorf("GetLangFromContext() = %v, attendu fr", lang)
	}
}
