package handlers

import (
	"net/http"

	"portfolio-frontend/middleware"
	"portfolio-frontend/models"
	"portfolio-frontend/services"
)

// HomeHandler gère la page d'accueil
type HomeHandler struct {
	api      *services.PortfolioAPI
	renderer *Renderer
}

// NewHomeHandler crée un nouveau HomeHandler
func NewHomeHandler(api *services.PortfolioAPI, renderer *Renderer) *HomeHandler {
	return &HomeHandler{api: api, renderer: renderer}
}

// HomeStats regroupe les compteurs affichés sur la page d'accueil
type HomeStats struct {
	Projects    int
	Skills      int
	Experiences int
}

// HomePageData est le modèle de rendu de la page d'accueil
type HomePageData struct {
	PageData
	OwnerName        string
	OwnerTitle       string
	OwnerBio         string
	OwnerPhotoURL    string
	CVFileURL        string
	Stats            HomeStats
	FeaturedProjects []models.Project
	FeaturedArticles []models.Article
}

// Home affiche la page d'accueil. Les cinq appels sont indépendants et
// lancés en parallèle ; chaque échec retombe sur une valeur vide sans
// empêcher le rendu des autres sections.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	var settings *models.SiteSettings
	var featured []models.Project
	var featuredArticles []models.Article
	var skills []models.Skill
	var experiences []models.Experience

	services.FetchAll(
		func() {
			if s, err := h.api.GetSettings(ctx); err == nil {
				settings = s
			}
		},
		func() {
			if p, err := h.api.GetFeaturedProjects(ctx); err == nil {
				featured = p
			}
		},
		func() {
			if s, err := h.api.GetSkills(ctx); err == nil {
				skills = s
			}
		},
		func() {
			if e, err := h.api.GetExperiences(ctx); err == nil {
				experiences = e
			}
		},
		func() {
			if a, err := h.api.GetFeaturedArticles(ctx); err == nil {
				featuredArticles = a
			}
		},
	)

	data := HomePageData{
		PageData: newPageData(r, models.Localize("Accueil", "Home", lang), settings),
		// Valeurs de repli si les paramètres du site sont indisponibles
		OwnerName:  "YvanCedric",
		OwnerTitle: models.Localize("Développeur Full Stack", "Full Stack Developer", lang),
		OwnerBio: models.Localize(
			"Passionné par le développement web et les technologies modernes. Je crée des applications web performantes et intuitives.",
			"Passionate about web development and modern technologies. I create performant and intuitive web applications.",
			lang,
		),
		Stats: HomeStats{
			Projects:    len(featured),
			Skills:      len(skills),
			Experiences: len(experiences),
		},
		FeaturedProjects: featured,
		FeaturedArticles: featuredArticles,
	}

	if settings != nil {
		if settings.OwnerName != "" {
			data.OwnerName = settings.OwnerName
		}
		if title := settings.OwnerTitle(lang); title != "" {
			data.OwnerTitle = title
		}
		if bio := settings.OwnerBio(lang); bio != "" {
			data.OwnerBio = bio
		}
		data.OwnerPhotoURL = settings.OwnerPhotoURL
		data.CVFileURL = settings.CVFileURL
	}

	h.renderer.Render(w, http.StatusOK, "home", data)
}
