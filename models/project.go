package models

import "portfolio-frontend/i18n"

// ProjectCategory représente une catégorie de projet
type ProjectCategory struct {
	ID     int64  `json:"id"`
	NameFR string `json:"name_fr"`
	NameEN string `json:"name_en"`
	Slug   string `json:"slug"`
	Color  string `json:"color"`
	Order  int    `json:"order"`
}

// Name retourne le nom de la catégorie dans la langue courante
func (c *ProjectCategory) Name(lang i18n.Lang) string {
	return Localize(c.NameFR, c.NameEN, lang)
}

// Technology représente une technologie utilisée dans les projets
// (nom non traduit)
type Technology struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Project représente un projet du portfolio
type Project struct {
	ID                 int64            `json:"id"`
	TitleFR            string           `json:"title_fr"`
	TitleEN            string           `json:"title_en"`
	Slug               string           `json:"slug"`
	DescriptionFR      string           `json:"description_fr"`
	DescriptionEN      string           `json:"description_en"`
	ShortDescriptionFR string           `json:"short_description_fr"`
	ShortDescriptionEN string           `json:"short_description_en"`
	ImageURL           string           `json:"image_url"`
	GifURL             string           `json:"gif_url"`
	VideoURL           string           `json:"video_url"`
	Category           *ProjectCategory `json:"category"`
	Technologies       []Technology     `json:"technologies"`
	GithubURL          string           `json:"github_url"`
	DemoURL            string           `json:"demo_url"`
	Featured           bool             `json:"featured"`
	Order              int              `json:"order"`
	CreatedAt          FlexibleTime     `json:"created_at"`
	UpdatedAt          FlexibleTime     `json:"updated_at"`
}

// Title retourne le titre dans la langue courante
func (p *Project) Title(lang i18n.Lang) string {
	return Localize(p.TitleFR, p.TitleEN, lang)
}

// Description retourne la description dans la langue courante
func (p *Project) Description(lang i18n.Lang) string {
	return Localize(p.DescriptionFR, p.DescriptionEN, lang)
}

// ShortDescription retourne la description courte dans la langue courante
func (p *Project) ShortDescription(lang i18n.Lang) string {
	return Localize(p.ShortDescriptionFR, p.ShortDescriptionEN, lang)
}

// HasTechnology indique si le projet utilise la technologie donnée
func (p *Project) HasTechnology(technologyID int64) bool {
	for _, tech := range p.Technologies {
		if tech.ID == technologyID {
			return true
		}
	}
	return false
}

// FilterProjects retourne le sous-ensemble des projets correspondant aux
// filtres sélectionnés. Un identifiant à zéro signifie "pas de contrainte".
// Les deux filtres combinés donnent l'intersection ; les deux à zéro
// retournent la liste complète. Le filtrage est pur : il est recalculé à
// chaque requête, aucun appel réseau n'est déclenché.
func FilterProjects(projects []Project, categoryID, technologyID int64) []Project {
	if categoryID == 0 && technologyID == 0 {
		return projects
	}

	filtered := make([]Project, 0, len(projects))
	for _, project := range projects {
		if categoryID != 0 {
			if project.Category == nil || project.Category.ID != categoryID {
				continue
			}
		}
		if technologyID != 0 && !project.HasTechnology(technologyID) {
			continue
		}
		filtered = append(filtered, project)
	}
	return filtered
}
