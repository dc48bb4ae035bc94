package repository

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

type ScyllaCategoryRepository struct{}

func NewScyllaCategoryRepository() *ScyllaCategoryRepository {
	return &ScyllaCategoryRepository{}
}

func (r *ScyllaCategoryRepository) GetByID(ctx context.Context, id gocql.UUID) (*models.Category, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	var cat models.Category
	err = session.Query(`SELECT category_id, title, description, created_at FROM categories WHERE category_id = ?`, id).
		WithContext(ctx).
		Scan(&cat.ID, &cat.Title, &cat.Description, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *ScyllaCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT category_id, title, description, created_at FROM categories`).
		WithContext(ctx).Iter()

	var cats []models.Category
	var cat models.Category
	for iter.Scan(&cat.ID, &cat.Title, &cat.Description, &cat.CreatedAt) {
		cats = append(cats, cat)
		cat = models.Category{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *ScyllaCategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO categories (category_id, title, description, created_at) VALUES (?, ?, ?, ?)`,
		cat.ID, cat.Title, cat.Description, cat.CreatedAt).
		WithContext(ctx).Exec()
}
