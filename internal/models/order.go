package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Order struct {
	ID              gocql.UUID `json:"id" db:"order_id"`
	CustomerID      gocql.UUID `json:"customer_id" db:"customer_id"`
	TotalPrice      float64    `json:"total_price" db:"total_price"`
	IsPaid          bool       `json:"is_paid" db:"is_paid"`
	ShippingAddress string     `json:"shipping_address" db:"shipping_address"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// OrderItem fige la quantité au moment du checkout. Le prix n'est pas
// figé : les totaux relisent toujours le prix courant du produit.
type OrderItem struct {
	OrderID   gocql.UUID `json:"order_id" db:"order_id"`
	ProductID gocql.UUID `json:"product_id" db:"product_id"`
	Quantity  int        `json:"quantity" db:"quantity"`
}
