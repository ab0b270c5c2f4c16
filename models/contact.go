package models

// ContactMessage est le corps envoyé à l'API pour un message de contact.
// Le champ honeypot est un leurre anti-spam : le front l'envoie toujours
// vide, le filtrage est fait côté backend.
type ContactMessage struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot"`
}
