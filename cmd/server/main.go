package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"

	"github.com/SANDREQSA22/ebay-mz/internal/config"
	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/handlers"
	"github.com/SANDREQSA22/ebay-mz/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	database.InitPreparedStatements()
	handlers.Init()
	initOAuthProviders()

	if config.Getenv("GIN_MODE", "") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Getenv("PORT", "8080")
	log.Printf("🚀 Serveur démarré sur le port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Serveur arrêté: %v", err)
	}
}

// initOAuthProviders configure goth (google, facebook) et sa session store
func initOAuthProviders() {
	baseURL := config.Getenv("BASE_URL", "http://localhost:8080")

	store := sessions.NewCookieStore([]byte(config.Getenv("SESSION_SECRET", "session_secret")))
	store.MaxAge(86400)
	store.Options.HttpOnly = true
	gothic.Store = store

	goth.UseProviders(
		google.New(
			config.Getenv("GOOGLE_CLIENT_ID", ""),
			config.Getenv("GOOGLE_CLIENT_SECRET", ""),
			baseURL+"/api/auth/google/callback",
			"email", "profile",
		),
		facebook.New(
			config.Getenv("FACEBOOK_CLIENT_ID", ""),
			config.Getenv("FACEBOOK_CLIENT_SECRET", ""),
			baseURL+"/api/auth/facebook/callback",
			"email",
		),
	)

	// gin passe le fournisseur en paramètre d'URL, pas en query string
	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		parts := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
		for i, part := range parts {
			if part == "auth" && i+1 < len(parts) {
				return parts[i+1], nil
			}
		}
		return "", fmt.Errorf("fournisseur OAuth introuvable dans l'URL")
	}
}
