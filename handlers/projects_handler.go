package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"portfolio-frontend/middleware"
	"portfolio-frontend/models"
	"portfolio-frontend/services"
)

// Paramètres de requête des filtres de la page projets
const (
	categoryParam   = "categorie"
	technologyParam = "technologie"
)

// ProjectsHandler gère la page des projets et son filtrage
type ProjectsHandler struct {
	api      *services.PortfolioAPI
	renderer *Renderer
}

// NewProjectsHandler crée un nouveau ProjectsHandler
func NewProjectsHandler(api *services.PortfolioAPI, renderer *Renderer) *ProjectsHandler {
	return &ProjectsHandler{api: api, renderer: renderer}
}

// FilterLink est un bouton de filtre de la page projets
type FilterLink struct {
	Name   string
	URL    string
	Active bool
}

// ProjectsPageData est le modèle de rendu de la page projets
type ProjectsPageData struct {
	PageData
	Projects          []models.Project
	CategoryFilters   []FilterLink
	TechnologyFilters []FilterLink
	NoFilter          bool
}

// Projects affiche la liste des projets filtrée par catégorie et/ou
// technologie. Le filtrage est purement local : changer de filtre ne
// déclenche aucun nouvel appel à l'API, la liste complète est refiltrée
// à chaque requête.
func (h *ProjectsHandler) Projects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	var projects []models.Project
	var categories []models.ProjectCategory
	var technologies []models.Technology

	services.FetchAll(
		func() {
			if p, err := h.api.GetProjects(ctx); err == nil {
				projects = p
			}
		},
		func() {
			if c, err := h.api.GetProjectCategories(ctx); err == nil {
				categories = c
			}
		},
		func() {
			if t, err := h.api.GetTechnologies(ctx); err == nil {
				technologies = t
			}
		},
	)

	selectedCategory := parseIDParam(r, categoryParam)
	selectedTechnology := parseIDParam(r, technologyParam)

	data := ProjectsPageData{
		PageData: newPageData(r, models.Localize("Projets", "Projects", lang), nil),
		Projects: models.FilterProjects(projects, selectedCategory, selectedTechnology),
		NoFilter: selectedCategory == 0 && selectedTechnology == 0,
	}

	for _, category := range categories {
		data.CategoryFilters = append(data.CategoryFilters, FilterLink{
			Name:   category.Name(lang),
			URL:    filterURL(category.ID, selectedCategory, selectedTechnology, true),
			Active: category.ID == selectedCategory,
		})
	}
	for _, technology := range technologies {
		data.TechnologyFilters = append(data.TechnologyFilters, FilterLink{
			Name:   technology.Name,
			URL:    filterURL(technology.ID, selectedCategory, selectedTechnology, false),
			Active: technology.ID == selectedTechnology,
		})
	}

	h.renderer.Render(w, http.StatusOK, "projects", data)
}

// parseIDParam lit un identifiant numérique dans la query string ;
// valeur absente ou invalide = pas de contrainte
func parseIDParam(r *http.Request, name string) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// filterURL construit le lien d'un bouton de filtre. Cliquer sur le
// filtre déjà actif le désélectionne, l'autre dimension de filtrage est
// conservée.
func filterURL(id, selectedCategory, selectedTechnology int64, isCategory bool) string {
	values := url.Values{}

	nextCategory := selectedCategory
	nextTechnology := selectedTechnology
	if isCategory {
		if id == selectedCategory {
			nextCategory = 0
		} else {
			nextCategory = id
		}
	} else {
		if id == selectedTechnology {
			nextTechnology = 0
		} else {
			nextTechnology = id
		}
	}

	if nextCategory != 0 {
		values.Set(categoryParam, strconv.FormatInt(nextCategory, 10))
	}
	if nextTechnology != 0 {
		values.Set(technologyParam, strconv.FormatInt(nextTechnology, 10))
	}

	if len(values) == 0 {
		return "/mes-projects"
	}
	return "/mes-projects?" + values.Encode()
}
