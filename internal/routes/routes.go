package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SANDREQSA22/ebay-mz/internal/config"
	"github.com/SANDREQSA22/ebay-mz/internal/handlers"
	"github.com/SANDREQSA22/ebay-mz/internal/middleware"
)

// RegisterRoutes câble toute la surface HTTP de l'API
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Getenv("FRONTEND_URL", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.APIRateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Authentification
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/login", middleware.LoginRateLimit(), handlers.Login)
		authGroup.GET("/google/url", handlers.GoogleAuthURL)
		authGroup.GET("/:provider", handlers.BeginOAuth)
		authGroup.GET("/:provider/callback", handlers.OAuthCallback)
		authGroup.GET("/logout", handlers.OAuthLogout)
		authGroup.GET("/me", middleware.AuthRequired(), handlers.Me)
	}

	// Catalogue — lecture publique
	api.GET("/products", handlers.GetAllProducts)
	api.GET("/products/:id", handlers.GetProduct)
	api.GET("/products/:id/reviews", handlers.GetProductReviews)
	api.GET("/categories", handlers.GetAllCategories)
	api.GET("/categories/:id", handlers.GetCategory)
	api.GET("/categories/:id/products", handlers.GetProductsByCategory)

	// Le WebSocket authentifie lui-même via ?token=
	api.GET("/cart/ws", handlers.CartWebSocket)

	// Tout le reste exige un client connecté
	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/products", handlers.CreateProduct)
		protected.GET("/products/mine", handlers.GetMyListings)
		protected.POST("/categories", handlers.CreateCategory)
		protected.POST("/products/:id/reviews", handlers.CreateReview)

		protected.GET("/cart", handlers.GetCart)
		protected.POST("/cart/add", handlers.AddToCart)
		protected.GET("/cart/total", handlers.GetCartTotal)

		protected.POST("/checkout", handlers.Checkout)
		protected.GET("/orders", handlers.GetMyOrders)
		protected.GET("/orders/:id", handlers.GetOrderByID)
		protected.POST("/orders/:id/pay", handlers.PayOrder)
		protected.POST("/orders/:id/recalculate", handlers.RecalculateOrder)
		protected.GET("/orders/:id/invoice", handlers.GetOrderInvoice)
	}
}
