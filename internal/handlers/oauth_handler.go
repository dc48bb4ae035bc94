package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"

	"github.com/SANDREQSA22/ebay-mz/internal/auth"
	"github.com/SANDREQSA22/ebay-mz/internal/config"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/utils"
)

// BeginOAuth redirige vers le fournisseur (google, facebook)
func BeginOAuth(c *gin.Context) {
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// OAuthCallback termine le flux : récupère le profil, crée le client à la
// première connexion, et retourne un JWT
func OAuthCallback(c *gin.Context) {
	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("❌ Callback OAuth: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification échouée"})
		return
	}

	customer, err := findOrCreateOAuthCustomer(c, gothUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	token, err := utils.GenerateJWT(*customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "customer": customer})
}

// OAuthLogout nettoie la session gothic
func OAuthLogout(c *gin.Context) {
	if err := gothic.Logout(c.Writer, c.Request); err != nil {
		log.Printf("⚠️ Logout OAuth: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// GoogleAuthURL retourne l'URL d'autorisation Google pour les SPA qui
// pilotent le flux elles-mêmes, sans redirection serveur
func GoogleAuthURL(c *gin.Context) {
	provider := auth.OAuthProvider{Name: "google", Config: config.GoogleOAuthConfig}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	c.JSON(http.StatusOK, gin.H{"url": provider.GetAuthURL(state), "state": state})
}

func findOrCreateOAuthCustomer(c *gin.Context, gothUser goth.User) (*models.Customer, error) {
	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(gothUser.Email))

	customer, err := Customers.GetByEmail(ctx, email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gocql.ErrNotFound) {
		log.Printf("❌ Lecture client OAuth: %v", err)
		return nil, err
	}

	created := models.Customer{
		ID:        gocql.TimeUUID(),
		Username:  gothUser.NickName,
		FirstName: gothUser.FirstName,
		LastName:  gothUser.LastName,
		Email:     email,
		Provider:  gothUser.Provider,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := Customers.Create(ctx, &created); err != nil {
		log.Printf("❌ Création client OAuth: %v", err)
		return nil, err
	}

	log.Printf("✅ Nouveau client via %s: %s", gothUser.Provider, email)
	return &created, nil
}
