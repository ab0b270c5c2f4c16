package models

import "testing"

func TestGroupSkillsByCategory(t *testing.T) {
	frontend := &SkillCategory{ID: 1, NameFR: "Frontend", NameEN: "Frontend"}
	backend := &SkillCategory{ID: 2, NameFR: "Backend", NameEN: "Backend"}

	skills := []Skill{
		{ID: 1, Name: "React", Category: frontend},
		{ID: 2, Name: "Django", Category: backend},
		{ID: 3, Name: "CSS", Category: frontend},
		{ID: 4, Name: "Communication"},
	}

	groups := GroupSkillsByCategory(skills)

	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, attendu 3", len(groups))
	}
	if groups[0].Category.ID != 1 || len(groups[0].Skills) != 2 {
		t.Errorf("groupe Frontend incorrect: %+v", groups[0])
	}
	if groups[1].Category.ID != 2 || len(groups[1].Skills) != 1 {
		t.Errorf("groupe Backend incorrect: %+v", groups[1])
	}
	// Les compétences sans catégorie terminent la liste
	if groups[2].Category != nil || len(groups[2].Skills) != 1 {
		t.Errorf("groupe sans catégorie incorrect: %+v", groups[2])
	}
}

func TestGroupSkillsByCategoryVide(t *testing.T) {
	if groups := GroupSkillsByCategory(nil); len(groups) != 0 {
		t.Errorf("GroupSkillsByCategory(nil) = %v, attendu vide", groups)
	}
}

func TestSplitExperiences(t *testing.T) {
	experiences := []Experience{
		{ID: 1, ExperienceType: ExperienceProfessional},
		{ID: 2, ExperienceType: ExperienceAcademic},
		{ID: 3, ExperienceType: ExperienceProfessional},
		// Type inconnu traité comme professionnel
		{ID: 4, ExperienceType: ""},
	}

	professional, academic := SplitExperiences(experiences)
	if len(professional) != 3 {
		t.Errorf("len(professional) = %d, attendu 3", len(professional))
	}
	if len(academic) != 1 || academic[0].ID != 2 {
		t.Errorf("academic = %+v", academic)
	}
}

func TestSortArticlesFeaturedFirst(t *testing.T) {
	articles := []Article{
		{ID: 1, Featured: false},
		{ID: 2, Featured: true},
		{ID: 3, Featured: false},
		{ID: 4, Featured: true},
	}

	SortArticlesFeaturedFirst(articles)

	wantOrder := []int64{2, 4, 1, 3}
	for i, want := range wantOrder {
		if articles[i].ID != want {
			t.Errorf("articles[%d].ID = %d, attendu %d", i, articles[i].ID, want)
		}
	}
}

func TestOrderSkillGroups(t *testing.T) {
	backend := &SkillCategory{ID: 1, NameFR: "Backend", NameEN: "Backend"}
	frontend := &SkillCategory{ID: 2, NameFR: "Frontend", NameEN: "Frontend"}

	groups := []SkillGroup{
		{Category: frontend, Skills: []Skill{{ID: 1, Name: "React"}}},
		{Category: backend, Skills: []Skill{{ID: 2, Name: "Go"}}},
		{Skills: []Skill{{ID: 3, Name: "Anglais"}}},
	}

	ordered := OrderSkillGroups(groups, []SkillCategory{{ID: 1}, {ID: 2}})
	if len(ordered) != 3 {
		t.Fatalf("nombre de groupes = %d, attendu 3", len(ordered))
	}
	if ordered[0].Category.ID != 1 || ordered[1].Category.ID != 2 {
		t.Error("les groupes devraient suivre l'ordre du référentiel des catégories")
	}
	if ordered[2].Category != nil {
		t.Error("le groupe sans catégorie devrait rester en fin de liste")
	}
}

func TestOrderSkillGroupsSansReferentiel(t *testing.T) {
	groups := []SkillGroup{
		{Category: &SkillCategory{ID: 2}},
		{Category: &SkillCategory{ID: 1}},
	}

	ordered := OrderSkillGroups(groups, nil)
	if ordered[0].Category.ID != 2 {
		t.Error("sans référentiel, l'ordre d'origine devrait être conservé")
	}
}
