package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"portfolio-frontend/i18n"
	"portfolio-frontend/models"
)

// Vérification simple de la forme local@domaine.tld, identique côté
// backend : la validation client n'est qu'un raccourci d'expérience
// utilisateur, la réponse du serveur reste la référence
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinMessageLength est la longueur minimale du message de contact
// (caractères après suppression des espaces de début et de fin)
const MinMessageLength = 10

// ValidationError représente une erreur de validation localisée
type ValidationError struct {
	Field   string
	Message string
}

// Error implémente l'interface error
func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidateContactName valide le nom du formulaire de contact
func ValidateContactName(name string, lang i18n.Lang) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "name", Message: models.Localize("Le nom est requis", "Name is required", lang)}
	}
	return nil
}

// ValidateContactEmail valide l'email du formulaire de contact
func ValidateContactEmail(email string, lang i18n.Lang) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: models.Localize("L'email est requis", "Email is required", lang)}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: models.Localize("Email invalide", "Invalid email", lang)}
	}
	return nil
}

// ValidateContactSubject valide l'objet du formulaire de contact
func ValidateContactSubject(subject string, lang i18n.Lang) error {
	if strings.TrimSpace(subject) == "" {
		return ValidationError{Field: "subject", Message: models.Localize("L'objet est requis", "Subject is required", lang)}
	}
	return nil
}

// ValidateContactMessageBody valide le corps du message de contact
func ValidateContactMessageBody(message string, lang i18n.Lang) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ValidationError{Field: "message", Message: models.Localize("Le message est requis", "Message is required", lang)}
	}
	if utf8.RuneCountInString(trimmed) < MinMessageLength {
		return ValidationError{
			Field: "message",
			Message: models.Localize(
				"Le message doit contenir au moins 10 caractères",
				"Message must be at least 10 characters",
				lang,
			),
		}
	}
	return nil
}

// ValidateContactMessage valide l'ensemble du formulaire de contact et
// retourne les erreurs par champ dans la langue courante. Tant que la map
// n'est pas vide, aucun envoi réseau ne doit avoir lieu.
func ValidateContactMessage(msg *models.ContactMessage, lang i18n.Lang) map[string]string {
	errors := make(map[string]string)

	checks := []error{
		ValidateContactName(msg.Name, lang),
		ValidateContactEmail(msg.Email, lang),
		ValidateContactSubject(msg.Subject, lang),
		ValidateContactMessageBody(msg.Message, lang),
	}
	for _, err := range checks {
		var vErr ValidationError
		if err != nil {
			vErr = err.(ValidationError)
			errors[vErr.Field] = vErr.Message
		}
	}

	return errors
}
