package models

import "portfolio-frontend/i18n"

// Types d'expérience renvoyés par l'API
const (
	ExperienceProfessional = "professional"
	ExperienceAcademic     = "academic"
)

// Experience représente une expérience professionnelle ou académique
type Experience struct {
	ID             int64        `json:"id"`
	TitleFR        string       `json:"title_fr"`
	TitleEN        string       `json:"title_en"`
	CompanyFR      string       `json:"company_fr"`
	CompanyEN      string       `json:"company_en"`
	DescriptionFR  string       `json:"description_fr"`
	DescriptionEN  string       `json:"description_en"`
	ExperienceType string       `json:"experience_type"`
	StartDate      FlexibleTime `json:"start_date"`
	EndDate        FlexibleTime `json:"end_date"`
	LocationFR     string       `json:"location_fr"`
	LocationEN     string       `json:"location_en"`
	Order          int          `json:"order"`
	IsCurrent      bool         `json:"is_current"`
}

// Title retourne le titre dans la langue courante
func (e *Experience) Title(lang i18n.Lang) string {
	return Localize(e.TitleFR, e.TitleEN, lang)
}

// Company retourne l'entreprise ou l'école dans la langue courante
func (e *Experience) Company(lang i18n.Lang) string {
	return Localize(e.CompanyFR, e.CompanyEN, lang)
}

// Description retourne la description dans la langue courante
func (e *Experience) Description(lang i18n.Lang) string {
	return Localize(e.DescriptionFR, e.DescriptionEN, lang)
}

// Location retourne le lieu dans la langue courante
func (e *Experience) Location(lang i18n.Lang) string {
	return Localize(e.LocationFR, e.LocationEN, lang)
}

// SplitExperiences sépare les expériences professionnelles et académiques
// en conservant l'ordre de la liste reçue
func SplitExperiences(experiences []Experience) (professional, academic []Experience) {
	for _, exp := range experiences {
		if exp.ExperienceType == ExperienceAcademic {
			academic = append(academic, exp)
		} else {
			professional = append(professional, exp)
		}
	}
	return professional, academic
}
