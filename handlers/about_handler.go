package handlers

import (
	"net/http"

	"portfolio-frontend/middleware"
	"portfolio-frontend/models"
	"portfolio-frontend/services"
)

// AboutHandler gère la page "À propos"
type AboutHandler struct {
	api      *services.PortfolioAPI
	renderer *Renderer
}

// NewAboutHandler crée un nouveau AboutHandler
func NewAboutHandler(api *services.PortfolioAPI, renderer *Renderer) *AboutHandler {
	return &AboutHandler{api: api, renderer: renderer}
}

// AboutPageData est le modèle de rendu de la page "À propos"
type AboutPageData struct {
	PageData
	SkillGroups  []models.SkillGroup
	Professional []models.Experience
	Academic     []models.Experience
}

// About affiche la page "À propos". Un échec de l'appel compétences ne
// doit jamais empêcher l'affichage de la section expériences, et
// réciproquement : chaque section se dégrade en silence.
func (h *AboutHandler) About(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	var settings *models.SiteSettings
	var skills []models.Skill
	var categories []models.SkillCategory
	var experiences []models.Experience

	services.FetchAll(
		func() {
			if s, err := h.api.GetSettings(ctx); err == nil {
				settings = s
			}
		},
		func() {
			if s, err := h.api.GetSkills(ctx); err == nil {
				skills = s
			}
		},
		func() {
			if c, err := h.api.GetSkillCategories(ctx); err == nil {
				categories = c
			}
		},
		func() {
			if e, err := h.api.GetExperiences(ctx); err == nil {
				experiences = e
			}
		},
	)

	professional, academic := models.SplitExperiences(experiences)
	groups := models.OrderSkillGroups(models.GroupSkillsByCategory(skills), categories)

	data := AboutPageData{
		PageData:     newPageData(r, models.Localize("À propos", "About", lang), settings),
		SkillGroups:  groups,
		Professional: professional,
		Academic:     academic,
	}

	h.renderer.Render(w, http.StatusOK, "about", data)
}
