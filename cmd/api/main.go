package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/fazecat/newspulse/Internal/archive"
	datafeed "github.com/fazecat/newspulse/Internal/database"
	"github.com/fazecat/newspulse/Internal/utils/config"
	"github.com/fazecat/newspulse/cmd/api/internal"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../../.env")

	err := datafeed.InitDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer datafeed.CloseDatabase()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	src, err := archive.NewSourceFromEnv(cfg)
	if err != nil {
		log.Fatalf("Failed to configure headline source: %v", err)
	}

	// Initialize JWT manager
	jwtManager := internal.NewJWTManager()

	apiServer := &internal.API{
		Config:     cfg,
		Source:     src,
		JWTManager: jwtManager,
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(internal.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    "healthy",
		})
	})

	// Public routes
	r.Get("/api/weekly-sentiment", apiServer.HandleGetWeeklySentiment)
	r.Get("/api/articles", apiServer.HandleGetArticles)
	r.Post("/api/token", apiServer.HandleGenerateToken)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(internal.JWTAuthMiddleware(jwtManager))
		r.Post("/api/harvest", apiServer.HandleHarvest)
	})

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("API server listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
