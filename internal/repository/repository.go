package repository

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

// ProductRepository expose le catalogue produits et la réservation de stock.
type ProductRepository interface {
	GetByID(ctx context.Context, id gocql.UUID) (*models.Product, error)
	ListActive(ctx context.Context) ([]models.Product, error)
	ListActiveByCategory(ctx context.Context, categoryID gocql.UUID) ([]models.Product, error)
	ListBySeller(ctx context.Context, sellerID gocql.UUID) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	// ReserveStock décrémente le stock de qty si et seulement si le stock
	// suffit. Retourne false (sans erreur) quand le stock est insuffisant.
	ReserveStock(ctx context.Context, id gocql.UUID, qty int) (bool, error)
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id gocql.UUID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, cat *models.Category) error
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id gocql.UUID) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	Create(ctx context.Context, cust *models.Customer) error
}

type CartRepository interface {
	// GetOrCreateByCustomer retourne le panier du client, ou en crée un
	// vide — un seul panier par client (partition carts_by_customer).
	GetOrCreateByCustomer(ctx context.Context, customerID gocql.UUID) (*models.Cart, error)
	GetByID(ctx context.Context, cartID gocql.UUID) (*models.Cart, error)
	GetItem(ctx context.Context, cartID, productID gocql.UUID) (*models.CartItem, error)
	UpsertItem(ctx context.Context, item *models.CartItem) error
	ListItems(ctx context.Context, cartID gocql.UUID) ([]models.CartItem, error)
	ClearItems(ctx context.Context, cartID gocql.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetByID(ctx context.Context, orderID gocql.UUID) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID gocql.UUID) ([]models.Order, error)
	ListItems(ctx context.Context, orderID gocql.UUID) ([]models.OrderItem, error)
	UpdateTotal(ctx context.Context, orderID gocql.UUID, total float64) error
	MarkPaid(ctx context.Context, orderID gocql.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID gocql.UUID) ([]models.Review, error)
}
