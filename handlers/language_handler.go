package handlers

import (
	"net/http"
	"strings"

	"portfolio-frontend/i18n"
	"portfolio-frontend/middleware"
)

// LanguageHandler gère le changement de langue du site
type LanguageHandler struct{}

// NewLanguageHandler crée un nouveau LanguageHandler
func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// Toggle bascule la langue courante, la persiste dans le cookie et
// redirige vers la page d'origine. Le paramètre next est assaini pour
// n'autoriser que des chemins internes.
func (h *LanguageHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLangFromContext(r.Context())
	next := sanitizeNext(r.URL.Query().Get("next"))

	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    string(lang.Toggle()),
		Path:     "/",
		MaxAge:   i18n.CookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, next, http.StatusSeeOther)
}

// sanitizeNext refuse tout ce qui n'est pas un chemin interne au site
// (les "//host" relatifs au protocole compris)
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
