package handlers

import (
	"context"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

type AddToCartInput struct {
	ProductID gocql.UUID `json:"product_id" binding:"required"`
	Quantity  int        `json:"quantity"`
}

// CartLine est une ligne enrichie du titre et du prix courant du produit
type CartLine struct {
	models.CartItem
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// GetCart retourne le panier du client avec ses lignes enrichies et le
// total aux prix courants
func GetCart(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	cart, err := Carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	lines, total, err := enrichCartLines(ctx, cart.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  cart,
		"items": lines,
		"total": total,
	})
}

// AddToCart ajoute un produit au panier du client — le stock est réservé
// immédiatement
func AddToCart(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	ctx := c.Request.Context()
	cart, err := Carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	item, err := Carts.AddToCart(ctx, cart.ID, input.ProductID, input.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	notifyCartChanged(ctx, customerID)
	c.JSON(http.StatusOK, item)
}

// GetCartTotal retourne le total du panier aux prix courants du catalogue
func GetCartTotal(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	cart, err := Carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	total, err := Carts.GetTotalPrice(ctx, cart.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart_id": cart.ID, "total": total})
}

// enrichCartLines joint chaque ligne au produit pour exposer titre et
// prix courant
func enrichCartLines(ctx context.Context, cartID gocql.UUID) ([]CartLine, float64, error) {
	items, err := Carts.ListItems(ctx, cartID)
	if err != nil {
		return nil, 0, err
	}

	lines := make([]CartLine, 0, len(items))
	var total float64
	for _, item := range items {
		product, err := Products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, 0, err
		}
		lineTotal := product.Price * float64(item.Quantity)
		lines = append(lines, CartLine{
			CartItem:  item,
			Title:     product.Title,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}
	return lines, math.Round(total*100) / 100, nil
}

// notifyCartChanged réveille les sessions WebSocket du client via Redis
func notifyCartChanged(ctx context.Context, customerID gocql.UUID) {
	channel := "cart:" + customerID.String()
	if err := database.Redis.Publish(ctx, channel, "updated").Err(); err != nil {
		log.Printf("⚠️ Publication Redis %s échouée: %v", channel, err)
	}
}
