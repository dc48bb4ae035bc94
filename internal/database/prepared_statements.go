package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

var (
	// Prepared statements pour les requêtes fréquentes
	stmtGetCustomerByEmail    *gocql.Query
	stmtGetCustomerByID       *gocql.Query
	stmtInsertCustomer        *gocql.Query
	stmtInsertCustomerByEmail *gocql.Query
	stmtGetProductByID        *gocql.Query

	preparedOnce sync.Once
)

// InitPreparedStatements initialise les prepared statements
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		customers, err := GetCustomersSession()
		if err != nil {
			log.Printf("⚠️ Impossible d'initialiser les prepared statements: %v", err)
			return
		}

		// Requête pour récupérer customer_id par email
		stmtGetCustomerByEmail = customers.Query("SELECT customer_id FROM customers_by_email WHERE email = ?")

		// Requête pour récupérer un client par ID
		stmtGetCustomerByID = customers.Query(`SELECT username, first_name, last_name, email, password, provider, is_active, created_at
			FROM customers WHERE customer_id = ?`)

		// Requête pour insérer un client
		stmtInsertCustomer = customers.Query(`INSERT INTO customers (customer_id, username, first_name, last_name, email, password, provider, is_active, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

		// Requête pour insérer dans customers_by_email
		stmtInsertCustomerByEmail = customers.Query("INSERT INTO customers_by_email (email, customer_id) VALUES (?, ?)")

		catalog, err := GetCatalogSession()
		if err != nil {
			log.Printf("⚠️ Prepared statements catalogue indisponibles: %v", err)
			return
		}

		// Chemin chaud du panier : lecture produit
		stmtGetProductByID = catalog.Query(`SELECT product_id, title, description, price, quantity, seller_id, category_id, listing_date, is_active
			FROM products WHERE product_id = ?`)

		log.Println("✅ Prepared statements initialisés")
	})
}

func GetPreparedGetCustomerByEmail() *gocql.Query {
	return stmtGetCustomerByEmail
}

func GetPreparedGetCustomerByID() *gocql.Query {
	return stmtGetCustomerByID
}

func GetPreparedInsertCustomer() *gocql.Query {
	return stmtInsertCustomer
}

func GetPreparedInsertCustomerByEmail() *gocql.Query {
	return stmtInsertCustomerByEmail
}

func GetPreparedGetProductByID() *gocql.Query {
	return stmtGetProductByID
}
