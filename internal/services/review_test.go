package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/services"
)

func newReviewFixture(t *testing.T) (*services.ReviewService, *mockProductRepo, *mockCustomerRepo) {
	t.Helper()
	products := newMockProductRepo()
	customers := newMockCustomerRepo()
	return services.NewReviewService(newMockReviewRepo(), products, customers), products, customers
}

func TestCreateReviewDefaultsRatingToFive(t *testing.T) {
	svc, products, customers := newReviewFixture(t)

	p := activeProduct(10.00, 5)
	products.add(p)
	cust := models.Customer{ID: gocql.TimeUUID(), FirstName: "Nino", LastName: "B.", Email: "nino@example.com", IsActive: true, CreatedAt: time.Now()}
	assert.NoError(t, customers.Create(context.Background(), &cust))

	review, err := svc.CreateReview(context.Background(), p.ID, cust.ID, 0, "Très bon produit")
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Nino B.", review.CustomerName)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, products, _ := newReviewFixture(t)
	p := activeProduct(10.00, 5)
	products.add(p)

	for _, rating := range []int{-1, 6} {
		_, err := svc.CreateReview(context.Background(), p.ID, gocql.TimeUUID(), rating, "n/a")
		assert.ErrorIs(t, err, services.ErrInvalidRating)
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	svc, _, _ := newReviewFixture(t)

	_, err := svc.CreateReview(context.Background(), gocql.TimeUUID(), gocql.TimeUUID(), 4, "n/a")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListReviewsByProduct(t *testing.T) {
	svc, products, _ := newReviewFixture(t)
	p := activeProduct(10.00, 5)
	products.add(p)

	_, err := svc.CreateReview(context.Background(), p.ID, gocql.TimeUUID(), 4, "Correct")
	assert.NoError(t, err)
	_, err = svc.CreateReview(context.Background(), p.ID, gocql.TimeUUID(), 5, "Parfait")
	assert.NoError(t, err)

	out, err := svc.ListByProduct(context.Background(), p.ID)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
