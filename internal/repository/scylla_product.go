package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

const productColumns = `product_id, title, description, price, quantity, seller_id, category_id, listing_date, is_active`

// Nombre de tentatives CAS avant d'abandonner une réservation de stock
const reserveStockRetries = 3

type ScyllaProductRepository struct{}

func NewScyllaProductRepository() *ScyllaProductRepository {
	return &ScyllaProductRepository{}
}

func (r *ScyllaProductRepository) GetByID(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	var p models.Product

	// Chemin chaud (panier, facture) : prepared statement si disponible
	if stmt := database.GetPreparedGetProductByID(); stmt != nil {
		err := stmt.WithContext(ctx).Bind(id).
			Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Quantity, &p.SellerID, &p.CategoryID, &p.ListingDate, &p.IsActive)
		if err != nil {
			return nil, err
		}
		return &p, nil
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}
	err = session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id).
		WithContext(ctx).
		Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Quantity, &p.SellerID, &p.CategoryID, &p.ListingDate, &p.IsActive)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ScyllaProductRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT `+productColumns+` FROM products`).WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Quantity, &p.SellerID, &p.CategoryID, &p.ListingDate, &p.IsActive) {
		if p.IsActive {
			products = append(products, p)
		}
		p = models.Product{} // Reset pour la prochaine itération
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	// ScyllaDB ne trie pas entre partitions : tri en mémoire, date de
	// mise en vente décroissante
	sortByListingDateDesc(products)
	return products, nil
}

func (r *ScyllaProductRepository) ListActiveByCategory(ctx context.Context, categoryID gocql.UUID) ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	// Table d'association products_by_category, clustering par
	// listing_date décroissante : l'ordre vient de la table elle-même
	iter := session.Query(`SELECT `+productColumns+` FROM products_by_category WHERE category_id = ?`, categoryID).
		WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Quantity, &p.SellerID, &p.CategoryID, &p.ListingDate, &p.IsActive) {
		if p.IsActive {
			products = append(products, p)
		}
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ScyllaProductRepository) ListBySeller(ctx context.Context, sellerID gocql.UUID) ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT `+productColumns+` FROM products_by_seller WHERE seller_id = ?`, sellerID).
		WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Quantity, &p.SellerID, &p.CategoryID, &p.ListingDate, &p.IsActive) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ScyllaProductRepository) Create(ctx context.Context, p *models.Product) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	query := `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, p.ID, p.Title, p.Description, p.Price, p.Quantity, p.SellerID, p.CategoryID, p.ListingDate, p.IsActive).
		WithContext(ctx).Exec(); err != nil {
		return err
	}

	// Maintient les tables d'association (catégorie + vendeur)
	if err := session.Query(`INSERT INTO products_by_category (category_id, listing_date, product_id, title, description, price, quantity, seller_id, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.CategoryID, p.ListingDate, p.ID, p.Title, p.Description, p.Price, p.Quantity, p.SellerID, p.IsActive).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("indexation products_by_category: %w", err)
	}

	if err := session.Query(`INSERT INTO products_by_seller (seller_id, product_id, title, description, price, quantity, category_id, listing_date, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.SellerID, p.ID, p.Title, p.Description, p.Price, p.Quantity, p.CategoryID, p.ListingDate, p.IsActive).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("indexation products_by_seller: %w", err)
	}

	return nil
}

// ReserveStock exécute la séquence lecture-vérification-décrément en une
// écriture conditionnelle (LWT) : deux ajouts au panier concurrents sur le
// même produit ne peuvent pas survendre le stock.
func (r *ScyllaProductRepository) ReserveStock(ctx context.Context, id gocql.UUID, qty int) (bool, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return false, err
	}

	for attempt := 0; attempt < reserveStockRetries; attempt++ {
		var current int
		if err := session.Query(`SELECT quantity FROM products WHERE product_id = ?`, id).
			WithContext(ctx).Scan(&current); err != nil {
			return false, err
		}

		if current < qty {
			return false, nil
		}

		applied, err := session.Query(`UPDATE products SET quantity = ? WHERE product_id = ? IF quantity = ?`,
			current-qty, id, current).
			WithContext(ctx).ScanCAS(&current)
		if err != nil {
			return false, err
		}
		if applied {
			return true, nil
		}
		// CAS perdu contre une réservation concurrente : relire et retenter
	}

	return false, fmt.Errorf("réservation stock produit %s: trop de conflits CAS", id)
}

func sortByListingDateDesc(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].ListingDate.After(products[j].ListingDate)
	})
}
