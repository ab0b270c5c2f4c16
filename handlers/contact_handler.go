package handlers

import (
	"errors"
	"net/http"
	"strings"

	"portfolio-frontend/constants"
	"portfolio-frontend/i18n"
	"portfolio-frontend/middleware"
	"portfolio-frontend/models"
	"portfolio-frontend/services"
	"portfolio-frontend/utils"
)

// ContactHandler gère le formulaire de contact
type ContactHandler struct {
	api      *services.PortfolioAPI
	renderer *Renderer
}

// NewContactHandler crée un nouveau ContactHandler
func NewContactHandler(api *services.PortfolioAPI, renderer *Renderer) *ContactHandler {
	return &ContactHandler{api: api, renderer: renderer}
}

// ContactPageData est le modèle de rendu de la page contact
type ContactPageData struct {
	PageData
	Form          models.ContactMessage
	Errors        map[string]string
	StatusMessage string
	StatusType    string
}

// Show affiche le formulaire de contact vide
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLangFromContext(r.Context())

	data := ContactPageData{
		PageData: newPageData(r, models.Localize("Contact", "Contact", lang), nil),
	}

	h.renderer.Render(w, http.StatusOK, "contact", data)
}

// Submit valide puis envoie le message de contact. Un formulaire
// invalide est réaffiché avec les erreurs par champ sans aucun appel à
// l'API.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, constants.ErrInvalidForm, http.StatusBadRequest)
		return
	}

	form := models.ContactMessage{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Subject:  strings.TrimSpace(r.PostFormValue("subject")),
		Message:  strings.TrimSpace(r.PostFormValue("message")),
		Honeypot: r.PostFormValue("honeypot"),
	}

	data := ContactPageData{
		PageData: newPageData(r, models.Localize("Contact", "Contact", lang), nil),
		Form:     form,
	}

	// Champ piège rempli : on simule un succès sans rien envoyer
	if form.Honeypot != "" {
		data.Form = models.ContactMessage{}
		data.StatusMessage = successMessage(lang)
		data.StatusType = "success"
		h.renderer.Render(w, http.StatusOK, "contact", data)
		return
	}

	if fieldErrors := utils.ValidateContactMessage(&form, lang); len(fieldErrors) > 0 {
		data.Errors = fieldErrors
		h.renderer.Render(w, http.StatusOK, "contact", data)
		return
	}

	if err := h.api.SendContactMessage(ctx, &form); err != nil {
		data.StatusMessage = models.Localize(
			"L'envoi du message a échoué, veuillez réessayer plus tard.",
			"Sending the message failed, please try again later.",
			lang,
		)
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			if details := apiErr.FieldErrors(); details != "" {
				data.StatusMessage = details
			}
		}
		data.StatusType = "error"
		h.renderer.Render(w, http.StatusOK, "contact", data)
		return
	}

	data.Form = models.ContactMessage{}
	data.StatusMessage = successMessage(lang)
	data.StatusType = "success"
	h.renderer.Render(w, http.StatusOK, "contact", data)
}

func successMessage(lang i18n.Lang) string {
	return models.Localize(
		"Votre message a bien été envoyé, merci !",
		"Your message has been sent, thank you!",
		lang,
	)
}
