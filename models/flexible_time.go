package models

import (
	"fmt"
	"strings"
	"time"
)

// FlexibleTime gère les différents formats de dates renvoyés par l'API :
// dates simples pour les expériences, horodatages complets pour les articles
type FlexibleTime struct {
	time.Time
}

// UnmarshalJSON implémente le unmarshaler pour accepter plusieurs formats de dates
func (ft *FlexibleTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		ft.Time = time.Time{}
		return nil
	}

	formats := []string{
		"2006-01-02",          // DateField ("2023-09-01")
		time.RFC3339Nano,      // DateTimeField avec microsecondes
		time.RFC3339,          // "2023-09-01T10:00:00Z"
		"2006-01-02T15:04:05", // Sans timezone
	}

	for _, layout := range formats {
		parsedTime, parseErr := time.Parse(layout, s)
		if parseErr == nil {
			ft.Time = parsedTime
			return nil
		}
	}

	return fmt.Errorf("format de date invalide: %s", s)
}

// MarshalJSON retourne null pour une date absente, RFC 3339 sinon
func (ft FlexibleTime) MarshalJSON() ([]byte, error) {
	if ft.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte("\"" + ft.Time.Format(time.RFC3339) + "\""), nil
}
