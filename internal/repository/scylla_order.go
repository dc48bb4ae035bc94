package repository

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

type ScyllaOrderRepository struct{}

func NewScyllaOrderRepository() *ScyllaOrderRepository {
	return &ScyllaOrderRepository{}
}

// Create écrit la commande, ses lignes et l'index orders_by_customer dans
// un batch logged : tout ou rien au moment du checkout.
func (r *ScyllaOrderRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	batch := session.NewBatch(gocql.LoggedBatch).WithContext(ctx)

	batch.Query(`INSERT INTO orders (order_id, customer_id, total_price, is_paid, shipping_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		order.ID, order.CustomerID, order.TotalPrice, order.IsPaid, order.ShippingAddress, order.CreatedAt)

	batch.Query(`INSERT INTO orders_by_customer (customer_id, created_at, order_id, total_price, is_paid, shipping_address)
		VALUES (?, ?, ?, ?, ?, ?)`,
		order.CustomerID, order.CreatedAt, order.ID, order.TotalPrice, order.IsPaid, order.ShippingAddress)

	for _, item := range items {
		batch.Query(`INSERT INTO order_items_by_order (order_id, product_id, quantity) VALUES (?, ?, ?)`,
			item.OrderID, item.ProductID, item.Quantity)
	}

	return session.ExecuteBatch(batch)
}

func (r *ScyllaOrderRepository) GetByID(ctx context.Context, orderID gocql.UUID) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	order := models.Order{ID: orderID}
	err = session.Query(`SELECT customer_id, total_price, is_paid, shipping_address, created_at FROM orders WHERE order_id = ?`, orderID).
		WithContext(ctx).
		Scan(&order.CustomerID, &order.TotalPrice, &order.IsPaid, &order.ShippingAddress, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *ScyllaOrderRepository) ListByCustomer(ctx context.Context, customerID gocql.UUID) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	// orders_by_customer est clusterisée par created_at décroissant
	iter := session.Query(`SELECT order_id, customer_id, total_price, is_paid, shipping_address, created_at
		FROM orders_by_customer WHERE customer_id = ?`, customerID).
		WithContext(ctx).Iter()

	var orders []models.Order
	var o models.Order
	for iter.Scan(&o.ID, &o.CustomerID, &o.TotalPrice, &o.IsPaid, &o.ShippingAddress, &o.CreatedAt) {
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *ScyllaOrderRepository) ListItems(ctx context.Context, orderID gocql.UUID) ([]models.OrderItem, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, product_id, quantity FROM order_items_by_order WHERE order_id = ?`, orderID).
		WithContext(ctx).Iter()

	var items []models.OrderItem
	var item models.OrderItem
	for iter.Scan(&item.OrderID, &item.ProductID, &item.Quantity) {
		items = append(items, item)
		item = models.OrderItem{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ScyllaOrderRepository) UpdateTotal(ctx context.Context, orderID gocql.UUID, total float64) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	batch := session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`UPDATE orders SET total_price = ? WHERE order_id = ?`, total, orderID)
	batch.Query(`UPDATE orders_by_customer SET total_price = ? WHERE customer_id = ? AND created_at = ?`,
		total, order.CustomerID, order.CreatedAt)
	return session.ExecuteBatch(batch)
}

func (r *ScyllaOrderRepository) MarkPaid(ctx context.Context, orderID gocql.UUID) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	batch := session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`UPDATE orders SET is_paid = true WHERE order_id = ?`, orderID)
	batch.Query(`UPDATE orders_by_customer SET is_paid = true WHERE customer_id = ? AND created_at = ?`,
		order.CustomerID, order.CreatedAt)
	return session.ExecuteBatch(batch)
}
