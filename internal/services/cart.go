package services

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/repository"
)

// CartService : le panier du client et la réservation de stock.
//
// Le stock est réservé au moment de l'ajout au panier, pas au checkout. Un
// panier abandonné ne restitue jamais son stock (comportement assumé).
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetOrCreateCart retourne le panier du client, créé vide au besoin.
func (s *CartService) GetOrCreateCart(ctx context.Context, customerID gocql.UUID) (*models.Cart, error) {
	return s.carts.GetOrCreateByCustomer(ctx, customerID)
}

// AddToCart ajoute qty unités d'un produit au panier :
//   - qty < 1 rejeté avant de toucher au stock
//   - stock insuffisant → ErrInsufficientStock, rien n'est modifié
//   - produit déjà dans le panier → fusion des quantités
//   - le stock du produit est décrémenté de qty (réservé, pas encore vendu)
func (s *CartService) AddToCart(ctx context.Context, cartID, productID gocql.UUID, qty int) (*models.CartItem, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, mapNotFound(err)
	}

	reserved, err := s.products.ReserveStock(ctx, productID, qty)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, ErrInsufficientStock
	}

	item := &models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  qty,
		AddedAt:   time.Now(),
	}

	// Fusion avec la ligne existante pour ce couple (panier, produit)
	if existing, err := s.carts.GetItem(ctx, cartID, productID); err == nil {
		item.Quantity = existing.Quantity + qty
		item.AddedAt = existing.AddedAt
	} else if !errors.Is(err, gocql.ErrNotFound) {
		return nil, err
	}

	if err := s.carts.UpsertItem(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("🛒 Panier %s: produit %s x%d (total ligne: %d)", cartID, productID, qty, item.Quantity)
	return item, nil
}

// GetTotalPrice calcule Σ quantité × prix courant du produit. Le prix est
// toujours relu en direct, jamais figé dans le panier.
func (s *CartService) GetTotalPrice(ctx context.Context, cartID gocql.UUID) (float64, error) {
	items, err := s.carts.ListItems(ctx, cartID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return 0, mapNotFound(err)
		}
		total += float64(item.Quantity) * product.Price
	}
	return roundCents(total), nil
}

// ListItems retourne les lignes du panier.
func (s *CartService) ListItems(ctx context.Context, cartID gocql.UUID) ([]models.CartItem, error) {
	return s.carts.ListItems(ctx, cartID)
}

// roundCents arrondit au centime : les prix sont stockés en double côté
// ScyllaDB, les totaux restent en fixe à 2 décimales
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
