package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"portfolio-frontend/config"
	"portfolio-frontend/constants"
	"portfolio-frontend/i18n"
	"portfolio-frontend/middleware"
	"portfolio-frontend/models"
	"portfolio-frontend/templates"
)

// pageNames liste les gabarits de page, chacun associé à base.html
var pageNames = []string{
	"home", "about", "projects", "blog", "article",
	"contact", "admin_projects", "admin_delete",
}

// Renderer charge les gabarits HTML embarqués et rend les pages
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer analyse tous les gabarits au démarrage
func NewRenderer() (*Renderer, error) {
	renderer := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, page := range pageNames {
		tmpl, err := template.ParseFS(templates.FS, "base.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("analyse du gabarit %s: %w", page, err)
		}
		renderer.pages[page] = tmpl
	}
	return renderer, nil
}

// Render exécute le gabarit dans un tampon avant d'écrire la réponse,
// pour ne jamais envoyer une page à moitié rendue
func (renderer *Renderer) Render(w http.ResponseWriter, statusCode int, page string, data interface{}) {
	tmpl, ok := renderer.pages[page]
	if !ok {
		config.Log.WithField("page", page).Error("Gabarit introuvable")
		http.Error(w, constants.ErrServerError, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		config.Log.WithError(err).WithField("page", page).Error("Rendu du gabarit impossible")
		http.Error(w, constants.ErrServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}

// PageData porte les champs communs à toutes les pages
type PageData struct {
	Title    string
	Lang     i18n.Lang
	IsFrench bool
	Path     string
	Year     int
	Settings *models.SiteSettings
}

// newPageData construit les champs communs depuis la requête. La langue
// vient du contexte : un seul suffixe bilingue est lu par rendu.
func newPageData(r *http.Request, title string, settings *models.SiteSettings) PageData {
	lang := middleware.GetLangFromContext(r.Context())
	return PageData{
		Title:    title,
		Lang:     lang,
		IsFrench: lang.IsFrench(),
		Path:     r.URL.Path,
		Year:     time.Now().Year(),
		Settings: settings,
	}
}
