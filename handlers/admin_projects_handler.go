package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"portfolio-frontend/constants"
	"portfolio-frontend/i18n"
	"portfolio-frontend/middleware"
	"portfolio-frontend/models"
	"portfolio-frontend/services"
)

// AdminProjectsHandler gère l'interface d'administration des projets
type AdminProjectsHandler struct {
	api      *services.PortfolioAPI
	renderer *Renderer
}

// NewAdminProjectsHandler crée un nouveau AdminProjectsHandler
func NewAdminProjectsHandler(api *services.PortfolioAPI, renderer *Renderer) *AdminProjectsHandler {
	return &AdminProjectsHandler{api: api, renderer: renderer}
}

// AdminProjectsPageData est le modèle de rendu de la page d'administration
type AdminProjectsPageData struct {
	PageData
	LoadError     string
	StatusMessage string
	StatusType    string
	EditingID     int64
	Form          *models.ProjectForm
	Categories    []models.ProjectCategory
	Technologies  []models.Technology
	Projects      []models.Project
}

// AdminDeletePageData est le modèle de rendu de la confirmation de suppression
type AdminDeletePageData struct {
	PageData
	Project models.Project
}

// List affiche le formulaire de création et la liste des projets
// existants. Un message de statut est relayé par la query string après
// une création, modification ou suppression.
func (h *AdminProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLangFromContext(r.Context())

	data := h.loadPageData(r)
	data.StatusMessage, data.StatusType = flashFromQuery(r, lang)

	h.renderer.Render(w, http.StatusOK, "admin_projects", data)
}

// Create crée un projet à partir du formulaire puis redirige vers la
// liste. En cas d'échec le formulaire est réaffiché avec les valeurs
// saisies.
func (h *AdminProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	form, err := parseProjectForm(r)
	if err != nil {
		http.Error(w, constants.ErrInvalidForm, http.StatusBadRequest)
		return
	}

	payload, err := form.Payload()
	if err == nil {
		err = h.api.CreateProject(ctx, payload)
	}
	if err != nil {
		data := h.loadPageData(r)
		data.Form = form
		data.StatusMessage = models.Localize(
			"La création du projet a échoué.",
			"Creating the project failed.",
			lang,
		)
		data.StatusType = "error"
		h.renderer.Render(w, http.StatusOK, "admin_projects", data)
		return
	}

	http.Redirect(w, r, "/admin/projects?statut=cree", http.StatusSeeOther)
}

// Edit affiche le formulaire pré-rempli du projet à modifier
func (h *AdminProjectsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	project, err := h.api.GetProject(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data := h.loadPageData(r)
	data.EditingID = id
	data.Form = models.FormFromProject(project)

	h.renderer.Render(w, http.StatusOK, "admin_projects", data)
}

// Update enregistre les modifications d'un projet existant
func (h *AdminProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	id, ok := projectID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	form, err := parseProjectForm(r)
	if err != nil {
		http.Error(w, constants.ErrInvalidForm, http.StatusBadRequest)
		return
	}

	payload, err := form.Payload()
	if err == nil {
		err = h.api.UpdateProject(ctx, id, payload)
	}
	if err != nil {
		data := h.loadPageData(r)
		data.EditingID = id
		data.Form = form
		data.StatusMessage = models.Localize(
			"La modification du projet a échoué.",
			"Updating the project failed.",
			lang,
		)
		data.StatusType = "error"
		h.renderer.Render(w, http.StatusOK, "admin_projects", data)
		return
	}

	http.Redirect(w, r, "/admin/projects?statut=modifie", http.StatusSeeOther)
}

// ConfirmDelete affiche la page de confirmation avant suppression
func (h *AdminProjectsHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLangFromContext(r.Context())

	id, ok := projectID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	project, err := h.api.GetProject(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data := AdminDeletePageData{
		PageData: newPageData(r, models.Localize("Supprimer le projet", "Delete project", lang), nil),
		Project:  *project,
	}

	h.renderer.Render(w, http.StatusOK, "admin_delete", data)
}

// Delete supprime le projet puis redirige vers la liste
func (h *AdminProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.api.DeleteProject(r.Context(), id); err != nil {
		http.Redirect(w, r, "/admin/projects?statut=echec_suppression", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/projects?statut=supprime", http.StatusSeeOther)
}

// loadPageData charge les projets et les référentiels nécessaires au
// formulaire. Un échec du chargement des projets est signalé sans
// masquer le reste de la page.
func (h *AdminProjectsHandler) loadPageData(r *http.Request) AdminProjectsPageData {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	data := AdminProjectsPageData{
		PageData: newPageData(r, models.Localize("Administration", "Administration", lang), nil),
		Form:     &models.ProjectForm{},
	}

	var loadFailed bool
	services.FetchAll(
		func() {
			projects, err := h.api.GetProjects(ctx)
			if err != nil {
				loadFailed = true
				return
			}
			data.Projects = projects
		},
		func() {
			if categories, err := h.api.GetProjectCategories(ctx); err == nil {
				data.Categories = categories
			}
		},
		func() {
			if technologies, err := h.api.GetTechnologies(ctx); err == nil {
				data.Technologies = technologies
			}
		},
	)

	if loadFailed {
		data.LoadError = models.Localize(
			"Impossible de charger les projets existants.",
			"Unable to load existing projects.",
			lang,
		)
	}

	return data
}

// parseProjectForm reconstruit un ProjectForm depuis la requête POST.
// Les cases à cocher des technologies passent par ToggleTechnology, les
// doublons éventuels du formulaire s'annulent donc d'eux-mêmes.
func parseProjectForm(r *http.Request) (*models.ProjectForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	form := &models.ProjectForm{
		TitleFR:            strings.TrimSpace(r.PostFormValue("title_fr")),
		TitleEN:            strings.TrimSpace(r.PostFormValue("title_en")),
		ShortDescriptionFR: strings.TrimSpace(r.PostFormValue("short_description_fr")),
		ShortDescriptionEN: strings.TrimSpace(r.PostFormValue("short_description_en")),
		DescriptionFR:      strings.TrimSpace(r.PostFormValue("description_fr")),
		DescriptionEN:      strings.TrimSpace(r.PostFormValue("description_en")),
		ImageURL:           strings.TrimSpace(r.PostFormValue("image_url")),
		DemoURL:            strings.TrimSpace(r.PostFormValue("demo_url")),
		GithubURL:          strings.TrimSpace(r.PostFormValue("github_url")),
		Featured:           r.PostFormValue("featured") != "",
		Category:           strings.TrimSpace(r.PostFormValue("category")),
	}

	for _, raw := range r.PostForm["technologies"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		form.ToggleTechnology(id)
	}

	return form, nil
}

// projectID extrait l'identifiant de projet de l'URL
func projectID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// flashFromQuery traduit le statut relayé par la query string en message
// affichable
func flashFromQuery(r *http.Request, lang i18n.Lang) (string, string) {
	switch r.URL.Query().Get("statut") {
	case "cree":
		return models.Localize("Projet créé.", "Project created.", lang), "success"
	case "modifie":
		return models.Localize("Projet modifié.", "Project updated.", lang), "success"
	case "supprime":
		return models.Localize("Projet supprimé.", "Project deleted.", lang), "success"
	case "echec_suppression":
		return models.Localize(
			"La suppression du projet a échoué.",
			"Deleting the project failed.",
			lang,
		), "error"
	}
	return "", ""
}
