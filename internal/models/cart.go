package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Cart struct {
	ID         gocql.UUID `json:"id" db:"cart_id"`
	CustomerID gocql.UUID `json:"customer_id" db:"customer_id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// CartItem est unique par couple (cart, produit) : re-ajouter le même
// produit fusionne les quantités au lieu de créer une deuxième ligne.
type CartItem struct {
	CartID    gocql.UUID `json:"cart_id" db:"cart_id"`
	ProductID gocql.UUID `json:"product_id" db:"product_id"`
	Quantity  int        `json:"quantity" db:"quantity"`
	AddedAt   time.Time  `json:"added_at" db:"added_at"`
}
