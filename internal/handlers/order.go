package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/storage"
	"github.com/SANDREQSA22/ebay-mz/internal/utils"
)

type CheckoutInput struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

const invoiceRenderTimeout = 30 * time.Second

// Checkout transforme le panier du client en commande. Le panier ressort
// vide ; la confirmation part par email en tâche de fond.
func Checkout(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse de livraison requise"})
		return
	}

	ctx := c.Request.Context()
	cart, err := Carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	order, err := Orders.Checkout(ctx, cart.ID, input.ShippingAddress)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	notifyCartChanged(ctx, customerID)
	go sendConfirmation(*order)

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders liste les commandes du client, les plus récentes d'abord
func GetMyOrders(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}
	orders, err := Orders.ListOrdersByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID retourne une commande et ses lignes — uniquement au client
// qui l'a passée
func GetOrderByID(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	items, err := Orders.ListOrderItems(c.Request.Context(), order.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

// PayOrder marque la commande comme payée
func PayOrder(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}
	if order.IsPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà payée"})
		return
	}

	if err := Orders.MarkPaid(c.Request.Context(), order.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("✅ Commande payée: %s", order.ID)
	c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "is_paid": true})
}

// RecalculateOrder recalcule le total aux prix courants du catalogue
func RecalculateOrder(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	total, err := Orders.RecalculateTotal(c.Request.Context(), order.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "total": total})
}

// GetOrderInvoice génère la facture PDF (QR code inclus), l'archive dans
// MinIO et retourne une URL signée de téléchargement
func GetOrderInvoice(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	lines, err := invoiceLines(ctx, order.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdf, err := renderInvoice(ctx, *order, lines)
	if err != nil {
		log.Printf("❌ Génération facture %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Génération de la facture impossible"})
		return
	}

	if err := storage.ArchiveInvoice(ctx, order.ID.String(), pdf); err != nil {
		log.Printf("❌ Archivage facture %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Archivage de la facture impossible"})
		return
	}

	url, err := storage.InvoiceSignedURL(ctx, order.ID.String(), time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "invoice_url": url})
}

// ownedOrder charge la commande du paramètre :id et vérifie qu'elle
// appartient au client connecté
func ownedOrder(c *gin.Context) (*models.Order, bool) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return nil, false
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil, false
	}

	order, err := Orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	if order.CustomerID != customerID {
		// Même réponse qu'une commande inexistante : pas d'énumération
		c.JSON(http.StatusNotFound, gin.H{"error": "Ressource introuvable"})
		return nil, false
	}
	return order, true
}

// invoiceLines joint les lignes de commande aux produits (titre + prix
// courant)
func invoiceLines(ctx context.Context, orderID gocql.UUID) ([]utils.InvoiceLine, error) {
	items, err := Orders.ListOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	lines := make([]utils.InvoiceLine, 0, len(items))
	for _, item := range items {
		product, err := Products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, utils.InvoiceLine{
			Title:     product.Title,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}
	return lines, nil
}

func renderInvoice(ctx context.Context, order models.Order, lines []utils.InvoiceLine) ([]byte, error) {
	qr, err := utils.GenerateOrderQR(order)
	if err != nil {
		return nil, err
	}
	html := utils.BuildInvoiceHTML(order, lines, qr)

	renderCtx, cancel := context.WithTimeout(ctx, invoiceRenderTimeout)
	defer cancel()
	return utils.RenderInvoicePDF(renderCtx, html)
}

// sendConfirmation envoie l'email de confirmation avec facture jointe.
// Tourne en goroutine : un échec n'annule jamais la commande.
func sendConfirmation(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	customer, err := Customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		log.Printf("⚠️ Confirmation %s: client introuvable: %v", order.ID, err)
		return
	}

	lines, err := invoiceLines(ctx, order.ID)
	if err != nil {
		log.Printf("⚠️ Confirmation %s: lecture lignes: %v", order.ID, err)
		return
	}

	// La facture est jointe quand le rendu aboutit, sinon l'email part seul
	pdf, err := renderInvoice(ctx, order, lines)
	if err != nil {
		log.Printf("⚠️ Confirmation %s: rendu facture: %v", order.ID, err)
		pdf = nil
	} else if err := storage.ArchiveInvoice(ctx, order.ID.String(), pdf); err != nil {
		log.Printf("⚠️ Confirmation %s: archivage facture: %v", order.ID, err)
	}

	if err := utils.SendOrderConfirmation(customer.Email, order, lines, pdf); err != nil {
		log.Printf("❌ Email de confirmation %s: %v", order.ID, err)
	}
}
