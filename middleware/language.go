package middleware

import (
	"context"
	"net/http"

	"portfolio-frontend/i18n"
)

type contextKey string

// LangContextKey est la clé du contexte portant la langue de la requête
const LangContextKey contextKey = "lang"

// Language résout la langue de la requête depuis le cookie persisté et
// la place dans le contexte. Cookie absent ou valeur inconnue : langue
// par défaut. Les handlers lisent la langue via GetLangFromContext, le
// seul chemin d'écriture est le handler de bascule.
func Language(defaultLang i18n.Lang) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := defaultLang
			if cookie, err := r.Cookie(i18n.CookieName); err == nil {
				lang = i18n.Parse(cookie.Value, defaultLang)
			}
			ctx := context.WithValue(r.Context(), LangContextKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLangFromContext récupère la langue depuis le contexte de la requête
func GetLangFromContext(ctx context.Context) i18n.Lang {
	if lang, ok := ctx.Value(LangContextKey).(i18n.Lang); ok {
		return lang
	}
	return i18n.French
}
