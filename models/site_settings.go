package models

import "portfolio-frontend/i18n"

// SiteSettings représente les paramètres globaux du site (enregistrement
// unique côté backend, lecture seule pour le front)
type SiteSettings struct {
	SiteNameFR        string `json:"site_name_fr"`
	SiteNameEN        string `json:"site_name_en"`
	SiteDescriptionFR string `json:"site_description_fr"`
	SiteDescriptionEN string `json:"site_description_en"`
	OwnerName         string `json:"owner_name"`
	OwnerTitleFR      string `json:"owner_title_fr"`
	OwnerTitleEN      string `json:"owner_title_en"`
	OwnerBioFR        string `json:"owner_bio_fr"`
	OwnerBioEN        string `json:"owner_bio_en"`
	OwnerPhotoURL     string `json:"owner_photo_url"`
	OwnerEmail        string `json:"owner_email"`
	OwnerPhone        string `json:"owner_phone"`
	OwnerLocationFR   string `json:"owner_location_fr"`
	OwnerLocationEN   string `json:"owner_location_en"`
	CVFileURL         string `json:"cv_file_url"`
	GithubURL         string `json:"github_url"`
	LinkedinURL       string `json:"linkedin_url"`
	TwitterURL        string `json:"twitter_url"`
	InstagramURL      string `json:"instagram_url"`
	PortfolioURL      string `json:"portfolio_url"`
}

// SiteName retourne le nom du site dans la langue courante
func (s *SiteSettings) SiteName(lang i18n.Lang) string {
	return Localize(s.SiteNameFR, s.SiteNameEN, lang)
}

// OwnerTitle retourne le titre du propriétaire dans la langue courante
func (s *SiteSettings) OwnerTitle(lang i18n.Lang) string {
	return Localize(s.OwnerTitleFR, s.OwnerTitleEN, lang)
}

// OwnerBio retourne la biographie dans la langue courante
func (s *SiteSettings) OwnerBio(lang i18n.Lang) string {
	return Localize(s.OwnerBioFR, s.OwnerBioEN, lang)
}

// OwnerLocation retourne la localisation dans la langue courante
func (s *SiteSettings) OwnerLocation(lang i18n.Lang) string {
	return Localize(s.OwnerLocationFR, s.OwnerLocationEN, lang)
}
