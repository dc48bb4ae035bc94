package services

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/repository"
)

// CatalogService : lectures pures sur produits et catégories.
type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogService {
	return &CatalogService{products: products, categories: categories}
}

// ListActiveProducts retourne les produits actifs, date de mise en vente
// décroissante.
func (s *CatalogService) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.ListActive(ctx)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id gocql.UUID) (*models.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return cat, nil
}

// ListActiveProductsByCategory : la catégorie doit exister, sinon NotFound.
func (s *CatalogService) ListActiveProductsByCategory(ctx context.Context, categoryID gocql.UUID) ([]models.Product, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.products.ListActiveByCategory(ctx, categoryID)
}

// mapNotFound traduit l'absence de ligne ScyllaDB en erreur métier
func mapNotFound(err error) error {
	if errors.Is(err, gocql.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
