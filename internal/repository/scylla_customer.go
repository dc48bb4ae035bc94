package repository

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

type ScyllaCustomerRepository struct{}

func NewScyllaCustomerRepository() *ScyllaCustomerRepository {
	return &ScyllaCustomerRepository{}
}

func (r *ScyllaCustomerRepository) GetByID(ctx context.Context, id gocql.UUID) (*models.Customer, error) {
	cust := models.Customer{ID: id}

	// Chemin chaud : prepared statement si disponible
	if stmt := database.GetPreparedGetCustomerByID(); stmt != nil {
		err := stmt.WithContext(ctx).Bind(id).
			Scan(&cust.Username, &cust.FirstName, &cust.LastName, &cust.Email, &cust.Password, &cust.Provider, &cust.IsActive, &cust.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &cust, nil
	}

	session, err := database.GetCustomersSession()
	if err != nil {
		return nil, err
	}
	err = session.Query(`SELECT username, first_name, last_name, email, password, provider, is_active, created_at
		FROM customers WHERE customer_id = ?`, id).
		WithContext(ctx).
		Scan(&cust.Username, &cust.FirstName, &cust.LastName, &cust.Email, &cust.Password, &cust.Provider, &cust.IsActive, &cust.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *ScyllaCustomerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customerID gocql.UUID

	if stmt := database.GetPreparedGetCustomerByEmail(); stmt != nil {
		if err := stmt.WithContext(ctx).Bind(email).Scan(&customerID); err != nil {
			return nil, err
		}
	} else {
		session, err := database.GetCustomersSession()
		if err != nil {
			return nil, err
		}
		if err := session.Query(`SELECT customer_id FROM customers_by_email WHERE email = ?`, email).
			WithContext(ctx).Scan(&customerID); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, customerID)
}

func (r *ScyllaCustomerRepository) Create(ctx context.Context, cust *models.Customer) error {
	if stmt := database.GetPreparedInsertCustomer(); stmt != nil {
		if err := stmt.WithContext(ctx).
			Bind(cust.ID, cust.Username, cust.FirstName, cust.LastName, cust.Email, cust.Password, cust.Provider, cust.IsActive, cust.CreatedAt).
			Exec(); err != nil {
			return err
		}
		// Table d'association email → client (contrainte d'unicité email)
		return database.GetPreparedInsertCustomerByEmail().WithContext(ctx).
			Bind(cust.Email, cust.ID).Exec()
	}

	session, err := database.GetCustomersSession()
	if err != nil {
		return err
	}

	if err := session.Query(`INSERT INTO customers (customer_id, username, first_name, last_name, email, password, provider, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cust.ID, cust.Username, cust.FirstName, cust.LastName, cust.Email, cust.Password, cust.Provider, cust.IsActive, cust.CreatedAt).
		WithContext(ctx).Exec(); err != nil {
		return err
	}

	return session.Query(`INSERT INTO customers_by_email (email, customer_id) VALUES (?, ?)`,
		cust.Email, cust.ID).
		WithContext(ctx).Exec()
}
