package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config contient toutes les configurations de l'application
type Config struct {
	Port            string
	Host            string
	APIBaseURL      string
	Environment     string
	CORSOrigins     []string
	DefaultLanguage string
	SlackWebhookURL string
}

// Load charge la configuration depuis les variables d'environnement
func Load() (*Config, error) {
	// Charger le fichier .env s'il existe
	_ = godotenv.Load()

	config := &Config{
		Port:            getEnv("PORT", "8090"),
		Host:            getEnv("HOST", "0.0.0.0"), // 0.0.0.0 pour serveur cloud
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8000/portfolio"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "fr"),
		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
	}

	// Parser les origines CORS
	origins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	originsList := strings.Split(origins, ",")
	// Nettoyer les espaces autour de chaque origine
	config.CORSOrigins = make([]string, 0, len(originsList))
	for _, origin := range originsList {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			config.CORSOrigins = append(config.CORSOrigins, trimmed)
		}
	}

	// Valider les configurations critiques
	config.APIBaseURL = strings.TrimRight(strings.TrimSpace(config.APIBaseURL), "/")
	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL est requis")
	}

	if config.DefaultLanguage != "fr" && config.DefaultLanguage != "en" {
		return nil, fmt.Errorf("DEFAULT_LANGUAGE doit être \"fr\" ou \"en\"")
	}

	return config, nil
}

// getEnv récupère une variable d'environnement avec une valeur par défaut
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
