package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-frontend/config"
	"portfolio-frontend/models"
)

// PortfolioAPI est le client HTTP du backend REST du portfolio.
// Une méthode par opération du backend ; pas de retry, pas de cache,
// pas de déduplication : chaque appelant gère son propre repli.
type PortfolioAPI struct {
	baseURL string
	client  *http.Client
}

// NewPortfolioAPI crée un client pour l'URL de base donnée
func NewPortfolioAPI(baseURL string) *PortfolioAPI {
	return &PortfolioAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError représente une réponse non-2xx du backend
type APIError struct {
	StatusCode int
	Body       []byte
}

// Error implémente l'interface error
func (e *APIError) Error() string {
	return fmt.Sprintf("API portfolio: statut %d", e.StatusCode)
}

// IsNotFound indique si l'erreur est un 404
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// FieldErrors aplatit les erreurs de champ renvoyées par le backend
// ({"champ": ["message", ...]} ou {"detail": "message"}) en un seul
// message lisible. Retourne une chaîne vide si le corps n'a pas ce format.
func (e *APIError) FieldErrors() string {
	var fields map[string]interface{}
	if err := json.Unmarshal(e.Body, &fields); err != nil || len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var parts []string
	for _, key := range keys {
		switch value := fields[key].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s: %s", key, value))
		case []interface{}:
			var messages []string
			for _, item := range value {
				if s, ok := item.(string); ok {
					messages = append(messages, s)
				}
			}
			if len(messages) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(messages, ", ")))
			}
		}
	}
	return strings.Join(parts, " ; ")
}

// do exécute une requête HTTP et retourne le corps de la réponse.
// Les erreurs sont classées pour la journalisation uniquement puis
// retournées telles quelles : l'appelant décide du repli.
func (api *PortfolioAPI) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("sérialisation du corps: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, api.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := api.client.Do(req)
	if err != nil {
		// Panne réseau : aucune réponse reçue
		config.Log.WithError(err).WithField("path", path).Warn("Impossible de joindre l'API portfolio")
		return nil, fmt.Errorf("API portfolio injoignable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: data}
		api.logError(method, path, apiErr)
		return nil, apiErr
	}

	return data, nil
}

// logError journalise l'erreur selon sa classe : 404 silencieux (ressource
// non exposée par le backend), 5xx erreur serveur, le reste en erreur
// générique
func (api *PortfolioAPI) logError(method, path string, apiErr *APIError) {
	entry := config.Log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": apiErr.StatusCode,
	})
	switch {
	case apiErr.IsNotFound():
		// Rien : les 404 sont normaux si le backend n'est pas configuré
	case apiErr.StatusCode >= http.StatusInternalServerError:
		entry.Error("Erreur serveur de l'API portfolio")
	default:
		entry.Error("Erreur de l'API portfolio")
	}
}

// decodeList accepte les deux enveloppes de liste du backend : un tableau
// nu ou un objet {"results": [...]}. Les deux formes produisent la même
// liste en mémoire.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetSettings récupère les paramètres globaux du site
func (api *PortfolioAPI) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	data, err := api.do(ctx, http.MethodGet, "/settings/current/", nil)
	if err != nil {
		return nil, err
	}
	var settings models.SiteSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetSkills récupère la liste des compétences
func (api *PortfolioAPI) GetSkills(ctx context.Context) ([]models.Skill, error) {
	data, err := api.do(ctx, http.MethodGet, "/skills/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Skill](data)
}

// GetSkillCategories récupère les catégories de compétences
func (api *PortfolioAPI) GetSkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	data, err := api.do(ctx, http.MethodGet, "/skill-categories/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.SkillCategory](data)
}

// GetExperiences récupère les expériences professionnelles et académiques
func (api *PortfolioAPI) GetExperiences(ctx context.Context) ([]models.Experience, error) {
	data, err := api.do(ctx, http.MethodGet, "/experiences/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Experience](data)
}

// GetProjects récupère la liste complète des projets
func (api *PortfolioAPI) GetProjects(ctx context.Context) ([]models.Project, error) {
	data, err := api.do(ctx, http.MethodGet, "/projects/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Project](data)
}

// GetProject récupère un projet par son identifiant
func (api *PortfolioAPI) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	data, err := api.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var project models.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetFeaturedProjects récupère les projets mis en avant
func (api *PortfolioAPI) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	data, err := api.do(ctx, http.MethodGet, "/projects/featured/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Project](data)
}

// GetProjectCategories récupère les catégories de projets
func (api *PortfolioAPI) GetProjectCategories(ctx context.Context) ([]models.ProjectCategory, error) {
	data, err := api.do(ctx, http.MethodGet, "/project-categories/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.ProjectCategory](data)
}

// GetTechnologies récupère les technologies
func (api *PortfolioAPI) GetTechnologies(ctx context.Context) ([]models.Technology, error) {
	data, err := api.do(ctx, http.MethodGet, "/technologies/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Technology](data)
}

// CreateProject crée un projet (écran d'administration)
func (api *PortfolioAPI) CreateProject(ctx context.Context, payload *models.ProjectPayload) error {
	_, err := api.do(ctx, http.MethodPost, "/projects/", payload)
	return err
}

// UpdateProject met à jour un projet existant
func (api *PortfolioAPI) UpdateProject(ctx context.Context, id int64, payload *models.ProjectPayload) error {
	_, err := api.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d/", id), payload)
	return err
}

// DeleteProject supprime un projet
func (api *PortfolioAPI) DeleteProject(ctx context.Context, id int64) error {
	_, err := api.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d/", id), nil)
	return err
}

// GetArticles récupère la liste des articles du blog
func (api *PortfolioAPI) GetArticles(ctx context.Context) ([]models.Article, error) {
	data, err := api.do(ctx, http.MethodGet, "/articles/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Article](data)
}

// GetArticle récupère un article par son identifiant
func (api *PortfolioAPI) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	data, err := api.do(ctx, http.MethodGet, fmt.Sprintf("/articles/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var article models.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// GetFeaturedArticles récupère les articles mis en avant
func (api *PortfolioAPI) GetFeaturedArticles(ctx context.Context) ([]models.Article, error) {
	data, err := api.do(ctx, http.MethodGet, "/articles/featured/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Article](data)
}

// IncrementArticleViews incrémente le compteur de vues d'un article
func (api *PortfolioAPI) IncrementArticleViews(ctx context.Context, id int64) error {
	_, err := api.do(ctx, http.MethodPost, fmt.Sprintf("/articles/%d/increment_views/", id), nil)
	return err
}

// GetArticleCategories récupère les catégories d'articles
func (api *PortfolioAPI) GetArticleCategories(ctx context.Context) ([]models.ArticleCategory, error) {
	data, err := api.do(ctx, http.MethodGet, "/article-categories/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.ArticleCategory](data)
}

// GetTags récupère les étiquettes d'articles
func (api *PortfolioAPI) GetTags(ctx context.Context) ([]models.Tag, error) {
	data, err := api.do(ctx, http.MethodGet, "/tags/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Tag](data)
}

// SendContactMessage envoie un message de contact (création seule)
func (api *PortfolioAPI) SendContactMessage(ctx context.Context, message *models.ContactMessage) error {
	_, err := api.do(ctx, http.MethodPost, "/contact/", message)
	return err
}

// Ping vérifie que le backend est joignable (endpoint de santé)
func (api *PortfolioAPI) Ping(ctx context.Context) error {
	_, err := api.do(ctx, http.MethodGet, "/settings/current/", nil)
	return err
}
