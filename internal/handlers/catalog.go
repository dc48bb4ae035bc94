package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/cache"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

type CreateProductInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Price       float64    `json:"price" binding:"required,gt=0"`
	Quantity    int        `json:"quantity" binding:"required,gte=0"`
	CategoryID  gocql.UUID `json:"category_id" binding:"required"`
}

type CreateCategoryInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// GetAllProducts liste les annonces actives (cache Redis 10 min)
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Product
	if cache.GetJSON(ctx, cache.ProductsAllKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := Catalog.ListActiveProducts(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cache.SetJSON(ctx, cache.ProductsAllKey, products, cache.ProductCacheTTL)
	c.JSON(http.StatusOK, products)
}

// GetProduct retourne le détail d'une annonce
func GetProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	product, err := Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductsByCategory liste les annonces actives d'une catégorie,
// les plus récentes d'abord
func GetProductsByCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	products, err := Catalog.ListActiveProductsByCategory(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct publie une annonce — le vendeur est le client connecté
func CreateProduct(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := Catalog.GetCategory(ctx, input.CategoryID); err != nil {
		respondServiceError(c, err)
		return
	}

	product := models.Product{
		ID:          gocql.TimeUUID(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		SellerID:    customerID,
		CategoryID:  input.CategoryID,
		ListingDate: time.Now().UTC(),
		IsActive:    true,
	}

	if err := Products.Create(ctx, &product); err != nil {
		log.Printf("❌ Erreur création annonce: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	cache.Invalidate(ctx, cache.ProductsAllKey)
	log.Printf("📦 Nouvelle annonce publiée: %s (%s)", product.Title, product.ID)
	c.JSON(http.StatusCreated, product)
}

// GetMyListings liste les annonces du vendeur connecté
func GetMyListings(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}
	products, err := Products.ListBySeller(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetAllCategories liste les catégories (cache Redis 1 h)
func GetAllCategories(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Category
	if cache.GetJSON(ctx, cache.CategoriesAllKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	categories, err := Catalog.ListCategories(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cache.SetJSON(ctx, cache.CategoriesAllKey, categories, cache.CategoryCacheTTL)
	c.JSON(http.StatusOK, categories)
}

// GetCategory retourne une catégorie
func GetCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	category, err := Catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory ajoute une catégorie au catalogue
func CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	category := models.Category{
		ID:          gocql.TimeUUID(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	ctx := c.Request.Context()
	if err := Categories.Create(ctx, &category); err != nil {
		log.Printf("❌ Erreur création catégorie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	cache.Invalidate(ctx, cache.CategoriesAllKey)
	c.JSON(http.StatusCreated, category)
}
