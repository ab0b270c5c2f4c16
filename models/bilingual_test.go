package models

import (
	"testing"

	"portfolio-frontend/i18n"
)

func TestLocalize(t *testing.T) {
	tests := []struct {
		name string
		lang i18n.Lang
		want string
	}{
		{"français", i18n.French, "Bonjour"},
		{"anglais", i18n.English, "Hello"},
		{"langue inconnue retombe sur l'anglais", i18n.Lang("de"), "Hello"},
		{"langue vide retombe sur l'anglais", i18n.Lang(""), "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Localize("Bonjour", "Hello", tt.lang); got != tt.want {
				t.Errorf("Localize() = %q, attendu %q", got, tt.want)
			}
		})
	}
}

func TestLocalizedAccessors(t *testing.T) {
	project := Project{TitleFR: "Mon projet", TitleEN: "My project"}
	if got := project.Title(i18n.French); got != "Mon projet" {
		t.Errorf("Title(fr) = %q", got)
	}
	if got := project.Title(i18n.English); got != "My project" {
		t.Errorf("Title(en) = %q", got)
	}

	experience := Experience{CompanyFR: "École", CompanyEN: "School"}
	if got := experience.Company(i18n.English); got != "School" {
		t.Errorf("Company(en) = %q", got)
	}
}
