package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"portfolio-frontend/config"
	"portfolio-frontend/handlers"
	"portfolio-frontend/i18n"
	"portfolio-frontend/middleware"
	"portfolio-frontend/services"
	"syscall"

	"github.com/gorilla/mux"
)

func main() {
	// Charger la configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement de la configuration: %v", err)
	}

	// Initialiser le logger structuré
	config.InitLogger()

	// Client de l'API portfolio
	api := services.NewPortfolioAPI(cfg.APIBaseURL)

	// Alertes Slack (optionnel, désactivé si l'URL du webhook est absente)
	slackService := services.NewSlackService(cfg.SlackWebhookURL)
	if slackService.Enabled() {
		log.Println("✓ Alertes Slack activées")
	} else {
		log.Println("⚠️  Alertes Slack désactivées (SLACK_WEBHOOK_URL absent)")
	}

	// Charger les gabarits HTML embarqués
	renderer, err := handlers.NewRenderer()
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement des gabarits: %v", err)
	}

	// Créer les handlers
	homeHandler := handlers.NewHomeHandler(api, renderer)
	aboutHandler := handlers.NewAboutHandler(api, renderer)
	projectsHandler := handlers.NewProjectsHandler(api, renderer)
	blogHandler := handlers.NewBlogHandler(api, renderer)
	contactHandler := handlers.NewContactHandler(api, renderer)
	adminHandler := handlers.NewAdminProjectsHandler(api, renderer)
	languageHandler := handlers.NewLanguageHandler()
	healthHandler := handlers.NewHealthHandler(cfg.Environment, api)

	// Créer le routeur et appliquer les middlewares globaux
	router := mux.NewRouter()
	router.Use(middleware.Logging(slackService))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.Language(i18n.Parse(cfg.DefaultLanguage, i18n.French)))

	// Pages publiques
	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/a_propos", aboutHandler.About).Methods("GET")
	router.HandleFunc("/mes-projects", projectsHandler.Projects).Methods("GET")
	router.HandleFunc("/blog", blogHandler.List).Methods("GET")
	router.HandleFunc("/blog/{id}", blogHandler.Detail).Methods("GET")
	router.HandleFunc("/contact", contactHandler.Show).Methods("GET")
	router.HandleFunc("/contact", contactHandler.Submit).Methods("POST")

	// Changement de langue
	router.HandleFunc("/langue/toggle", languageHandler.Toggle).Methods("GET")

	// Administration des projets
	router.HandleFunc("/admin/projects", adminHandler.List).Methods("GET")
	router.HandleFunc("/admin/projects", adminHandler.Create).Methods("POST")
	router.HandleFunc("/admin/projects/{id}/edit", adminHandler.Edit).Methods("GET")
	router.HandleFunc("/admin/projects/{id}", adminHandler.Update).Methods("POST")
	router.HandleFunc("/admin/projects/{id}/delete", adminHandler.ConfirmDelete).Methods("GET")
	router.HandleFunc("/admin/projects/{id}/delete", adminHandler.Delete).Methods("POST")

	// Route de santé (health check)
	router.HandleFunc("/api/health", healthHandler.Health).Methods("GET")

	// Démarrer le serveur
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Gérer l'arrêt gracieux du serveur
	go func() {
		log.Printf("🚀 Serveur démarré sur http://%s", addr)
		log.Printf("📝 Environnement: %s", cfg.Environment)
		log.Printf("🔗 API portfolio: %s", cfg.APIBaseURL)
		log.Println("📋 Routes disponibles:")
		log.Println("   GET    /                            - Accueil")
		log.Println("   GET    /a_propos                    - À propos")
		log.Println("   GET    /mes-projects                - Projets (filtrables)")
		log.Println("   GET    /blog                        - Blog")
		log.Println("   GET    /blog/{id}                   - Détail d'un article")
		log.Println("   GET    /contact                     - Formulaire de contact")
		log.Println("   POST   /contact                     - Envoi du message")
		log.Println("   GET    /langue/toggle               - Bascule fr/en")
		log.Println("   GET    /admin/projects              - Administration des projets")
		log.Println("   POST   /admin/projects              - Créer un projet")
		log.Println("   GET    /admin/projects/{id}/edit    - Éditer un projet")
		log.Println("   POST   /admin/projects/{id}         - Enregistrer un projet")
		log.Println("   GET    /admin/projects/{id}/delete  - Confirmer la suppression")
		log.Println("   POST   /admin/projects/{id}/delete  - Supprimer un projet")
		log.Println("   GET    /api/health                  - Health check")
		log.Println("\n✨ Le serveur est prêt à recevoir des requêtes!")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Erreur du serveur: %v", err)
		}
	}()

	// Attendre le signal d'arrêt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n🛑 Arrêt du serveur...")
	if err := server.Close(); err != nil {
		log.Printf("❌ Erreur lors de l'arrêt du serveur: %v", err)
	}
	log.Println("✓ Serveur arrêté proprement")
}
