package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"portfolio-frontend/config"
)

// SlackService gère l'envoi de notifications Slack pour les erreurs
// critiques du serveur front
type SlackService struct {
	webhookURL string
	client     *http.Client
}

// SlackMessage représente un message Slack
type SlackMessage struct {
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment représente une pièce jointe Slack
type Attachment struct {
	Color     string  `json:"color,omitempty"`
	Title     string  `json:"title,omitempty"`
	Text      string  `json:"text,omitempty"`
	Fields    []Field `json:"fields,omitempty"`
	Timestamp int64   `json:"ts,omitempty"`
	Footer    string  `json:"footer,omitempty"`
}

// Field représente un champ dans une pièce jointe Slack
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// NewSlackService crée une nouvelle instance de SlackService.
// Sans webhook configuré, le service est désactivé et chaque envoi
// retourne immédiatement.
func NewSlackService(webhookURL string) *SlackService {
	if webhookURL == "" {
		config.Log.Warn("Slack webhook URL non configuré - notifications Slack désactivées")
	}
	return &SlackService{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Enabled indique si le service est actif
func (s *SlackService) Enabled() bool {
	return s.webhookURL != ""
}

// SendCriticalError envoie une notification pour une erreur serveur (5xx)
func (s *SlackService) SendCriticalError(method, path, statusCode, message string) error {
	if !s.Enabled() {
		return nil // Service désactivé
	}

	slackMsg := SlackMessage{
		Attachments: []Attachment{
			{
				Color:     "danger",
				Title:     "🚨 Erreur serveur front portfolio",
				Text:      message,
				Timestamp: time.Now().Unix(),
				Footer:    "Portfolio - Front-end",
				Fields: []Field{
					{Title: "Méthode", Value: method, Short: true},
					{Title: "Status Code", Value: statusCode, Short: true},
					{Title: "Chemin", Value: path, Short: false},
				},
			},
		},
	}

	payload, err := json.Marshal(slackMsg)
	if err != nil {
		return fmt.Errorf("sérialisation du message Slack: %w", err)
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		config.Log.WithError(err).Warn("Envoi de la notification Slack impossible")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook Slack: statut %d", resp.StatusCode)
	}
	return nil
}
