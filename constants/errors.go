package constants

// Messages d'erreur HTTP courants
const (
	ErrServerError = "Erreur serveur"
	ErrInvalidForm = "Formulaire invalide"
)

// En-têtes HTTP
const (
	HeaderContentType     = "Content-Type"
	HeaderApplicationJSON = "application/json"
)
