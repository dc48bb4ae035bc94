package services

import (
	"context"
	"log"
	"time"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/repository"
)

// OrderService : matérialise un panier en commande immuable.
type OrderService struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, carts: carts, products: products}
}

// Checkout transforme le panier en commande :
//  1. panier vide → ErrEmptyCart
//  2. crée la commande (is_paid=false) avec l'adresse de livraison
//  3. total = Σ quantité × prix courant du produit
//  4. une ligne de commande par ligne de panier (quantité figée)
//  5. vide le panier — le stock a déjà été réservé à l'ajout, aucun
//     mouvement d'inventaire ici
func (s *OrderService) Checkout(ctx context.Context, cartID gocql.UUID, shippingAddress string) (*models.Order, error) {
	cart, err := s.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	items, err := s.carts.ListItems(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	orderID := gocql.TimeUUID()
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, mapNotFound(err)
		}
		total += float64(item.Quantity) * product.Price
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order := &models.Order{
		ID:              orderID,
		CustomerID:      cart.CustomerID,
		TotalPrice:      roundCents(total),
		IsPaid:          false,
		ShippingAddress: shippingAddress,
		CreatedAt:       time.Now(),
	}

	if err := s.orders.Create(ctx, order, orderItems); err != nil {
		return nil, err
	}

	if err := s.carts.ClearItems(ctx, cartID); err != nil {
		return nil, err
	}

	log.Printf("📦 Commande %s créée pour le client %s (%d lignes, total %.2f)",
		order.ID, order.CustomerID, len(orderItems), order.TotalPrice)
	return order, nil
}

// RecalculateTotal recalcule et persiste le total à partir du prix courant
// des produits — pas de prix figé par ligne : modifier un prix change les
// totaux historiques.
func (s *OrderService) RecalculateTotal(ctx context.Context, orderID gocql.UUID) (float64, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return 0, mapNotFound(err)
	}

	items, err := s.orders.ListItems(ctx, orderID)
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

	total = roundCents(total)
	if err := s.orders.UpdateTotal(ctx, orderID, total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID gocql.UUID) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return order, nil
}

func (s *OrderService) ListOrderItems(ctx context.Context, orderID gocql.UUID) ([]models.OrderItem, error) {
	return s.orders.ListItems(ctx, orderID)
}

// ListOrdersByCustomer retourne les commandes du client, plus récentes en
// premier.
func (s *OrderService) ListOrdersByCustomer(ctx context.Context, customerID gocql.UUID) ([]models.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

// MarkPaid bascule le seul état de la commande : créée(impayée) → payée.
// Le paiement lui-même est géré par un collaborateur externe.
func (s *OrderService) MarkPaid(ctx context.Context, orderID gocql.UUID) error {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return mapNotFound(err)
	}
	return s.orders.MarkPaid(ctx, orderID)
}
