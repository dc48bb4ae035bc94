package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Review struct {
	ID           gocql.UUID `json:"id" db:"review_id"`
	ProductID    gocql.UUID `json:"product_id" db:"product_id"`
	CustomerID   gocql.UUID `json:"customer_id" db:"customer_id"`
	CustomerName string     `json:"customer_name" db:"customer_name"`
	Rating       int        `json:"rating" db:"rating"` // 1-5
	Comment      string     `json:"comment" db:"comment"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
