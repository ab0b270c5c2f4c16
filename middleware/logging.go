package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio-frontend/config"
	"portfolio-frontend/services"
)

// responseWriter wrapper pour capturer le code de statut
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging journalise chaque requête avec un identifiant unique et envoie
// une notification Slack pour les erreurs serveur (5xx). Les erreurs
// client (4xx) sont journalisées en avertissement seulement.
func Logging(slackService *services.SlackService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()

			rw := newResponseWriter(w)
			rw.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := rw.statusCode

			entry := config.Log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"uri":        r.RequestURI,
				"status":     statusCode,
				"latency_ms": duration.Milliseconds(),
			})

			switch {
			case statusCode >= http.StatusInternalServerError:
				entry.Error("Requête terminée en erreur serveur")
				if slackService != nil {
					// Meilleur effort : l'échec de la notification est déjà journalisé
					_ = slackService.SendCriticalError(r.Method, r.RequestURI, strconv.Itoa(statusCode), http.StatusText(statusCode))
				}
			case statusCode >= http.StatusBadRequest:
				entry.Warn("Requête terminée en erreur client")
			default:
				entry.Info("Requête traitée")
			}
		})
	}
}
