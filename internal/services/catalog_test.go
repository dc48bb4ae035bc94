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

func TestListActiveProductsFiltersAndOrders(t *testing.T) {
	products := newMockProductRepo()
	categories := newMockCategoryRepo()
	svc := services.NewCatalogService(products, categories)

	ancien := activeProduct(5.00, 1)
	ancien.ListingDate = time.Now().Add(-48 * time.Hour)
	recent := activeProduct(7.00, 1)
	inactif := activeProduct(9.00, 1)
	inactif.IsActive = false
	products.add(ancien)
	products.add(recent)
	products.add(inactif)

	out, err := svc.ListActiveProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2, "les produits inactifs sont exclus")
	assert.Equal(t, recent.ID, out[0].ID, "plus récent en premier")
	assert.Equal(t, ancien.ID, out[1].ID)
}

func TestGetProductNotFound(t *testing.T) {
	svc := services.NewCatalogService(newMockProductRepo(), newMockCategoryRepo())

	_, err := svc.GetProduct(context.Background(), gocql.TimeUUID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetCategoryAndListByCategory(t *testing.T) {
	products := newMockProductRepo()
	categories := newMockCategoryRepo()
	svc := services.NewCatalogService(products, categories)

	cat := models.Category{ID: gocql.TimeUUID(), Title: "Informatique"}
	assert.NoError(t, categories.Create(context.Background(), &cat))

	dans := activeProduct(10.00, 3)
	dans.CategoryID = cat.ID
	ailleurs := activeProduct(20.00, 3)
	inactif := activeProduct(30.00, 3)
	inactif.CategoryID = cat.ID
	inactif.IsActive = false
	products.add(dans)
	products.add(ailleurs)
	products.add(inactif)

	got, err := svc.GetCategory(context.Background(), cat.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Informatique", got.Title)

	out, err := svc.ListActiveProductsByCategory(context.Background(), cat.ID)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, dans.ID, out[0].ID)
}

func TestListByUnknownCategory(t *testing.T) {
	svc := services.NewCatalogService(newMockProductRepo(), newMockCategoryRepo())

	_, err := svc.ListActiveProductsByCategory(context.Background(), gocql.TimeUUID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListCategories(t *testing.T) {
	categories := newMockCategoryRepo()
	svc := services.NewCatalogService(newMockProductRepo(), categories)

	assert.NoError(t, categories.Create(context.Background(), &models.Category{ID: gocql.TimeUUID(), Title: "Maison"}))
	assert.NoError(t, categories.Create(context.Background(), &models.Category{ID: gocql.TimeUUID(), Title: "Jardin"}))

	out, err := svc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
