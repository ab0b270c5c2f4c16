package models

import (
	"fmt"
	"strconv"
)

// ProjectForm est le miroir local du formulaire d'administration des
// projets. Les champs reprennent le format du formulaire HTML : la
// catégorie reste une chaîne (vide = aucune catégorie) jusqu'à la
// sérialisation.
type ProjectForm struct {
	TitleFR            string
	TitleEN            string
	ShortDescriptionFR string
	ShortDescriptionEN string
	DescriptionFR      string
	DescriptionEN      string
	ImageURL           string
	DemoURL            string
	GithubURL          string
	Featured           bool
	Category           string
	Technologies       []int64
}

// ProjectPayload est le corps JSON envoyé à l'API pour créer ou mettre à
// jour un projet. Category est de type interface{} pour envoyer un null
// explicite quand aucune catégorie n'est sélectionnée.
type ProjectPayload struct {
	TitleFR            string      `json:"title_fr"`
	TitleEN            string      `json:"title_en"`
	ShortDescriptionFR string      `json:"short_description_fr"`
	ShortDescriptionEN string      `json:"short_description_en"`
	DescriptionFR      string      `json:"description_fr"`
	DescriptionEN      string      `json:"description_en"`
	ImageURL           string      `json:"image_url"`
	DemoURL            string      `json:"demo_url"`
	GithubURL          string      `json:"github_url"`
	Featured           bool        `json:"featured"`
	Category           interface{} `json:"category"`
	Technologies       []int64     `json:"technologies"`
}

// HasTechnology indique si la technologie est sélectionnée dans le formulaire
func (f *ProjectForm) HasTechnology(technologyID int64) bool {
	for _, id := range f.Technologies {
		if id == technologyID {
			return true
		}
	}
	return false
}

// ToggleTechnology ajoute la technologie si elle est absente de la
// sélection, la retire sinon. Deux bascules successives ramènent la
// sélection à son état d'origine.
func (f *ProjectForm) ToggleTechnology(technologyID int64) {
	for i, id := range f.Technologies {
		if id == technologyID {
			f.Technologies = append(f.Technologies[:i], f.Technologies[i+1:]...)
			return
		}
	}
	f.Technologies = append(f.Technologies, technologyID)
}

// Payload sérialise le formulaire pour l'API. Une catégorie vide est
// convertie en null explicite, jamais en chaîne vide.
func (f *ProjectForm) Payload() (*ProjectPayload, error) {
	payload := &ProjectPayload{
		TitleFR:            f.TitleFR,
		TitleEN:            f.TitleEN,
		ShortDescriptionFR: f.ShortDescriptionFR,
		ShortDescriptionEN: f.ShortDescriptionEN,
		DescriptionFR:      f.DescriptionFR,
		DescriptionEN:      f.DescriptionEN,
		ImageURL:           f.ImageURL,
		DemoURL:            f.DemoURL,
		GithubURL:          f.GithubURL,
		Featured:           f.Featured,
		Technologies:       f.Technologies,
	}

	if payload.Technologies == nil {
		payload.Technologies = []int64{}
	}

	if f.Category == "" {
		payload.Category = nil
	} else {
		categoryID, err := strconv.ParseInt(f.Category, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("identifiant de catégorie invalide: %q", f.Category)
		}
		payload.Category = categoryID
	}

	return payload, nil
}

// FormFromProject pré-remplit le formulaire depuis un projet existant
// (flux d'édition)
func FormFromProject(p *Project) *ProjectForm {
	form := &ProjectForm{
		TitleFR:            p.TitleFR,
		TitleEN:            p.TitleEN,
		ShortDescriptionFR: p.ShortDescriptionFR,
		ShortDescriptionEN: p.ShortDescriptionEN,
		DescriptionFR:      p.DescriptionFR,
		DescriptionEN:      p.DescriptionEN,
		ImageURL:           p.ImageURL,
		DemoURL:            p.DemoURL,
		GithubURL:          p.GithubURL,
		Featured:           p.Featured,
	}
	if p.Category != nil {
		form.Category = strconv.FormatInt(p.Category.ID, 10)
	}
	for _, tech := range p.Technologies {
		form.Technologies = append(form.Technologies, tech.ID)
	}
	return form
}
