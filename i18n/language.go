package i18n

// Lang représente la langue d'affichage du site
type Lang string

const (
	French  Lang = "fr"
	English Lang = "en"
)

// CookieName est le nom du cookie qui persiste la préférence de langue
const CookieName = "portfolio-language"

// CookieMaxAge correspond à environ un an, la préférence survit aux sessions
const CookieMaxAge = 365 * 24 * 60 * 60

// Parse normalise une valeur persistée. Toute valeur inconnue retombe
// sur la langue par défaut passée en paramètre.
func Parse(value string, fallback Lang) Lang {
	switch Lang(value) {
	case French:
		return French
	case English:
		return English
	default:
		return fallback
	}
}

// IsFrench indique si la langue courante est le français
func (l Lang) IsFrench() bool {
	return l == French
}

// IsEnglish indique si la langue courante est l'anglais
func (l Lang) IsEnglish() bool {
	return l == English
}

// Toggle bascule entre fr et en
func (l Lang) Toggle() Lang {
	if l == French {
		return English
	}
	return French
}
