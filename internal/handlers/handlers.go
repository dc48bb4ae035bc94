package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"github.com/SANDREQSA22/ebay-mz/internal/repository"
	"github.com/SANDREQSA22/ebay-mz/internal/services"
)

var (
	Catalog   *services.CatalogService
	Carts     *services.CartService
	Orders    *services.OrderService
	Reviews   *services.ReviewService
	Customers  repository.CustomerRepository
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
)

// Init câble les services sur les dépôts ScyllaDB. À appeler après
// database.ConnectDatabases().
func Init() {
	products := repository.NewScyllaProductRepository()
	categories := repository.NewScyllaCategoryRepository()
	customers := repository.NewScyllaCustomerRepository()
	carts := repository.NewScyllaCartRepository()
	orders := repository.NewScyllaOrderRepository()
	reviews := repository.NewScyllaReviewRepository()

	Catalog = services.NewCatalogService(products, categories)
	Carts = services.NewCartService(carts, products)
	Orders = services.NewOrderService(orders, carts, products)
	Reviews = services.NewReviewService(reviews, products, customers)
	Customers = customers
	Products = products
	Categories = categories
}

// currentCustomerID extrait l'identité posée par le middleware JWT
func currentCustomerID(c *gin.Context) (gocql.UUID, bool) {
	raw := c.GetString("customer_id")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return gocql.UUID{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identité invalide"})
		return gocql.UUID{}, false
	}
	return gocql.UUID(id), true
}

// parseUUIDParam lit un paramètre d'URL UUID
func parseUUIDParam(c *gin.Context, name string) (gocql.UUID, bool) {
	id, err := gocql.ParseUUID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return gocql.UUID{}, false
	}
	return id, true
}

// respondServiceError traduit les erreurs métier en réponses HTTP
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ressource introuvable"})
	case errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Stock insuffisant"})
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
	case errors.Is(err, services.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
	case errors.Is(err, services.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Note invalide (1 à 5)"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
	}
}
