package services

import (
	"context"
	"time"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/repository"
)

type ReviewService struct {
	reviews   repository.ReviewRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, customers repository.CustomerRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, customers: customers}
}

// CreateReview dépose un avis sur un produit existant. Note de 1 à 5,
// 5 par défaut quand elle n'est pas fournie.
func (s *ReviewService) CreateReview(ctx context.Context, productID, customerID gocql.UUID, rating int, comment string) (*models.Review, error) {
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, mapNotFound(err)
	}

	// Nom dénormalisé dans la table des avis
	customerName := ""
	if cust, err := s.customers.GetByID(ctx, customerID); err == nil {
		customerName = cust.FullName()
	}

	review := &models.Review{
		ID:           gocql.TimeUUID(),
		ProductID:    productID,
		CustomerID:   customerID,
		CustomerName: customerName,
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    time.Now(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID gocql.UUID) ([]models.Review, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.reviews.ListByProduct(ctx, productID)
}
