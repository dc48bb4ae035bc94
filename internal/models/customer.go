package models

import (
	"strings"
	"time"

	"github.com/gocql/gocql"
)

type Customer struct {
	ID        gocql.UUID `json:"id" db:"customer_id"`
	Username  string     `json:"username" db:"username"`
	FirstName string     `json:"firstName" db:"first_name"`
	LastName  string     `json:"lastName" db:"last_name"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"-" db:"password"`
	Provider  string     `json:"provider,omitempty" db:"provider"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// FullName retourne "Prénom Nom", ou l'email si les deux sont vides
func (c Customer) FullName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.Email
	}
	return name
}
