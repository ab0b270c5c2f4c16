package models

import "portfolio-frontend/i18n"

// Localize choisit la variante d'un champ bilingue selon la langue courante.
// Règle unique pour tout le site : toute langue autre que le français
// retombe sur la variante anglaise.
func Localize(fr, en string, lang i18n.Lang) string {
	if lang.IsFrench() {
		return fr
	}
	return en
}
