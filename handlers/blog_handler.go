package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"portfolio-frontend/config"
	"portfolio-frontend/middleware"
	"portfolio-frontend/models"
	"portfolio-frontend/services"
)

// BlogHandler gère la liste des articles et leur page de détail
type BlogHandler struct {
	api      *services.PortfolioAPI
	renderer *Renderer
}

// NewBlogHandler crée un nouveau BlogHandler
func NewBlogHandler(api *services.PortfolioAPI, renderer *Renderer) *BlogHandler {
	return &BlogHandler{api: api, renderer: renderer}
}

// BlogPageData est le modèle de rendu de la liste des articles
type BlogPageData struct {
	PageData
	Articles   []models.Article
	Categories []models.ArticleCategory
	Tags       []models.Tag
}

// ArticlePageData est le modèle de rendu du détail d'un article
type ArticlePageData struct {
	PageData
	Article models.Article
}

// List affiche les articles publiés, articles mis en avant en premier
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var articles []models.Article
	var categories []models.ArticleCategory
	var tags []models.Tag

	services.FetchAll(
		func() {
			if a, err := h.api.GetArticles(ctx); err == nil {
				articles = a
			}
		},
		func() {
			if c, err := h.api.GetArticleCategories(ctx); err == nil {
				categories = c
			}
		},
		func() {
			if t, err := h.api.GetTags(ctx); err == nil {
				tags = t
			}
		},
	)
	models.SortArticlesFeaturedFirst(articles)

	data := BlogPageData{
		PageData:   newPageData(r, "Blog", nil),
		Articles:   articles,
		Categories: categories,
		Tags:       tags,
	}

	h.renderer.Render(w, http.StatusOK, "blog", data)
}

// Detail affiche un article et incrémente son compteur de vues en
// arrière-plan. L'incrément n'est pas bloquant : son échec éventuel
// n'affecte pas l'affichage de l'article.
func (h *BlogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLangFromContext(ctx)

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}

	article, err := h.api.GetArticle(ctx, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// Incrément des vues détaché de la requête : la réponse est rendue
	// sans attendre le compteur
	go func(articleID int64) {
		viewCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.api.IncrementArticleViews(viewCtx, articleID); err != nil {
			config.Log.WithField("article_id", articleID).
				Warn("Échec de l'incrément du compteur de vues: ", err)
		}
	}(id)

	data := ArticlePageData{
		PageData: newPageData(r, article.Title(lang), nil),
		Article:  *article,
	}

	h.renderer.Render(w, http.StatusOK, "article", data)
}
