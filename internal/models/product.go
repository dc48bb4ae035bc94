package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	Quantity    int        `json:"quantity" db:"quantity"`
	SellerID    gocql.UUID `json:"seller_id" db:"seller_id"`
	CategoryID  gocql.UUID `json:"category_id" db:"category_id"`
	ListingDate time.Time  `json:"listing_date" db:"listing_date"`
	IsActive    bool       `json:"is_active" db:"is_active"`
}
