package repository

import (
	"context"
	"time"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

type ScyllaCartRepository struct{}

func NewScyllaCartRepository() *ScyllaCartRepository {
	return &ScyllaCartRepository{}
}

// GetOrCreateByCustomer est le "get-or-create" atomique : l'INSERT
// conditionnel sur carts_by_customer garantit un seul panier par client,
// même si deux requêtes arrivent en même temps.
func (r *ScyllaCartRepository) GetOrCreateByCustomer(ctx context.Context, customerID gocql.UUID) (*models.Cart, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	newCart := models.Cart{
		ID:         gocql.TimeUUID(),
		CustomerID: customerID,
		CreatedAt:  time.Now(),
	}

	var existingID gocql.UUID
	var existingCreatedAt time.Time
	applied, err := session.Query(`INSERT INTO carts_by_customer (customer_id, cart_id, created_at) VALUES (?, ?, ?) IF NOT EXISTS`,
		customerID, newCart.ID, newCart.CreatedAt).
		WithContext(ctx).
		ScanCAS(&existingID, &existingCreatedAt)
	if err != nil {
		return nil, err
	}

	if !applied {
		// Panier déjà existant pour ce client
		return &models.Cart{ID: existingID, CustomerID: customerID, CreatedAt: existingCreatedAt}, nil
	}

	if err := session.Query(`INSERT INTO carts (cart_id, customer_id, created_at) VALUES (?, ?, ?)`,
		newCart.ID, newCart.CustomerID, newCart.CreatedAt).
		WithContext(ctx).Exec(); err != nil {
		return nil, err
	}

	return &newCart, nil
}

func (r *ScyllaCartRepository) GetByID(ctx context.Context, cartID gocql.UUID) (*models.Cart, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	cart := models.Cart{ID: cartID}
	err = session.Query(`SELECT customer_id, created_at FROM carts WHERE cart_id = ?`, cartID).
		WithContext(ctx).
		Scan(&cart.CustomerID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *ScyllaCartRepository) GetItem(ctx context.Context, cartID, productID gocql.UUID) (*models.CartItem, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	item := models.CartItem{CartID: cartID, ProductID: productID}
	err = session.Query(`SELECT quantity, added_at FROM cart_items_by_cart WHERE cart_id = ? AND product_id = ?`,
		cartID, productID).
		WithContext(ctx).
		Scan(&item.Quantity, &item.AddedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertItem écrit la ligne (cart, produit) : la clé primaire composée
// fusionne naturellement les re-ajouts du même produit.
func (r *ScyllaCartRepository) UpsertItem(ctx context.Context, item *models.CartItem) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO cart_items_by_cart (cart_id, product_id, quantity, added_at) VALUES (?, ?, ?, ?)`,
		item.CartID, item.ProductID, item.Quantity, item.AddedAt).
		WithContext(ctx).Exec()
}

func (r *ScyllaCartRepository) ListItems(ctx context.Context, cartID gocql.UUID) ([]models.CartItem, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT cart_id, product_id, quantity, added_at FROM cart_items_by_cart WHERE cart_id = ?`, cartID).
		WithContext(ctx).Iter()

	var items []models.CartItem
	var item models.CartItem
	for iter.Scan(&item.CartID, &item.ProductID, &item.Quantity, &item.AddedAt) {
		items = append(items, item)
		item = models.CartItem{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ScyllaCartRepository) ClearItems(ctx context.Context, cartID gocql.UUID) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	return session.Query(`DELETE FROM cart_items_by_cart WHERE cart_id = ?`, cartID).
		WithContext(ctx).Exec()
}
