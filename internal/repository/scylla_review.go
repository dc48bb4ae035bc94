package repository

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

type ScyllaReviewRepository struct{}

func NewScyllaReviewRepository() *ScyllaReviewRepository {
	return &ScyllaReviewRepository{}
}

func (r *ScyllaReviewRepository) Create(ctx context.Context, review *models.Review) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	// reviews_by_product est clusterisée par created_at décroissant
	return session.Query(`INSERT INTO reviews_by_product (product_id, created_at, review_id, customer_id, customer_name, rating, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ProductID, review.CreatedAt, review.ID, review.CustomerID, review.CustomerName, review.Rating, review.Comment).
		WithContext(ctx).Exec()
}

func (r *ScyllaReviewRepository) ListByProduct(ctx context.Context, productID gocql.UUID) ([]models.Review, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT review_id, product_id, customer_id, customer_name, rating, comment, created_at
		FROM reviews_by_product WHERE product_id = ?`, productID).
		WithContext(ctx).Iter()

	var reviews []models.Review
	var rev models.Review
	for iter.Scan(&rev.ID, &rev.ProductID, &rev.CustomerID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.CreatedAt) {
		reviews = append(reviews, rev)
		rev = models.Review{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return reviews, nil
}
