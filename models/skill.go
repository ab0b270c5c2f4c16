package models

import "portfolio-frontend/i18n"

// SkillCategory représente une catégorie de compétence (ex: Frontend, Backend)
type SkillCategory struct {
	ID     int64  `json:"id"`
	NameFR string `json:"name_fr"`
	NameEN string `json:"name_en"`
	Icon   string `json:"icon"`
	Order  int    `json:"order"`
}

// Name retourne le nom de la catégorie dans la langue courante
func (c *SkillCategory) Name(lang i18n.Lang) string {
	return Localize(c.NameFR, c.NameEN, lang)
}

// Skill représente une compétence technique ou un soft skill (niveau de 0 à 10)
type Skill struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Category  *SkillCategory `json:"category"`
	SkillType string         `json:"skill_type"`
	Level     int            `json:"level"`
	Icon      string         `json:"icon"`
	Order     int            `json:"order"`
}

// SkillGroup regroupe les compétences d'une même catégorie pour l'affichage
type SkillGroup struct {
	Category *SkillCategory
	Skills   []Skill
}

// GroupSkillsByCategory regroupe les compétences par catégorie en conservant
// l'ordre de la liste reçue. Les compétences sans catégorie sont regroupées
// en fin de liste sous un groupe sans catégorie.
func GroupSkillsByCategory(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[int64]int)
	var orphans []Skill

	for _, skill := range skills {
		if skill.Category == nil {
			orphans = append(orphans, skill)
			continue
		}
		pos, ok := index[skill.Category.ID]
		if !ok {
			pos = len(groups)
			index[skill.Category.ID] = pos
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[pos].Skills = append(groups[pos].Skills, skill)
	}

	if len(orphans) > 0 {
		groups = append(groups, SkillGroup{Skills: orphans})
	}

	return groups
}

// OrderSkillGroups réordonne les groupes selon le référentiel des
// catégories (champ order côté backend). Les groupes absents du
// référentiel, groupe sans catégorie compris, restent en fin de liste
// dans leur ordre d'origine.
func OrderSkillGroups(groups []SkillGroup, categories []SkillCategory) []SkillGroup {
	if len(categories) == 0 {
		return groups
	}

	rank := make(map[int64]int, len(categories))
	for i, category := range categories {
		rank[category.ID] = i
	}

	ordered := make([]SkillGroup, 0, len(groups))
	var rest []SkillGroup
	for _, category := range categories {
		for _, group := range groups {
			if group.Category != nil && group.Category.ID == category.ID {
				ordered = append(ordered, group)
				break
			}
		}
	}
	for _, group := range groups {
		if group.Category == nil {
			rest = append(rest, group)
			continue
		}
		if _, known := rank[group.Category.ID]; !known {
			rest = append(rest, group)
		}
	}

	return append(ordered, rest...)
}
