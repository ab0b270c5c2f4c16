package models

import (
	"sort"

	"portfolio-frontend/i18n"
)

// ArticleCategory représente une catégorie d'article de blog
type ArticleCategory struct {
	ID            int64  `json:"id"`
	NameFR        string `json:"name_fr"`
	NameEN        string `json:"name_en"`
	Slug          string `json:"slug"`
	DescriptionFR string `json:"description_fr"`
	DescriptionEN string `json:"description_en"`
}

// Name retourne le nom de la catégorie dans la langue courante
func (c *ArticleCategory) Name(lang i18n.Lang) string {
	return Localize(c.NameFR, c.NameEN, lang)
}

// Tag représente une étiquette d'article
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Article représente un article du blog
type Article struct {
	ID               int64            `json:"id"`
	TitleFR          string           `json:"title_fr"`
	TitleEN          string           `json:"title_en"`
	Slug             string           `json:"slug"`
	ExcerptFR        string           `json:"excerpt_fr"`
	ExcerptEN        string           `json:"excerpt_en"`
	ContentFR        string           `json:"content_fr"`
	ContentEN        string           `json:"content_en"`
	FeaturedImageURL string           `json:"featured_image_url"`
	Category         *ArticleCategory `json:"category"`
	Tags             []Tag            `json:"tags"`
	Author           string           `json:"author"`
	Published        bool             `json:"published"`
	Featured         bool             `json:"featured"`
	ViewsCount       int64            `json:"views_count"`
	CreatedAt        FlexibleTime     `json:"created_at"`
	PublishedAt      FlexibleTime     `json:"published_at"`
}

// Title retourne le titre dans la langue courante
func (a Article) Title(lang i18n.Lang) string {
	return Localize(a.TitleFR, a.TitleEN, lang)
}

// Excerpt retourne l'extrait dans la langue courante
func (a Article) Excerpt(lang i18n.Lang) string {
	return Localize(a.ExcerptFR, a.ExcerptEN, lang)
}

// Content retourne le contenu dans la langue courante
func (a Article) Content(lang i18n.Lang) string {
	return Localize(a.ContentFR, a.ContentEN, lang)
}

// SortArticlesFeaturedFirst place les articles à la une en tête de liste
// sans changer l'ordre relatif du reste (tri stable)
func SortArticlesFeaturedFirst(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Featured && !articles[j].Featured
	})
}
