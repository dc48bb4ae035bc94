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

func newCartFixture(t *testing.T) (*services.CartService, *mockCartRepo, *mockProductRepo, *models.Cart) {
	t.Helper()

	carts := newMockCartRepo()
	products := newMockProductRepo()
	svc := services.NewCartService(carts, products)

	cart, err := svc.GetOrCreateCart(context.Background(), gocql.TimeUUID())
	assert.NoError(t, err)
	return svc, carts, products, cart
}

func activeProduct(price float64, qty int) models.Product {
	return models.Product{
		ID:          gocql.TimeUUID(),
		Title:       "Clavier mécanique",
		Price:       price,
		Quantity:    qty,
		SellerID:    gocql.TimeUUID(),
		CategoryID:  gocql.TimeUUID(),
		ListingDate: time.Now(),
		IsActive:    true,
	}
}

func TestGetOrCreateCartReturnsSameCart(t *testing.T) {
	carts := newMockCartRepo()
	svc := services.NewCartService(carts, newMockProductRepo())
	customerID := gocql.TimeUUID()

	first, err := svc.GetOrCreateCart(context.Background(), customerID)
	assert.NoError(t, err)
	second, err := svc.GetOrCreateCart(context.Background(), customerID)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "un seul panier par client")
}

func TestAddToCartReservesStock(t *testing.T) {
	svc, _, products, cart := newCartFixture(t)
	p := activeProduct(10.00, 5)
	products.add(p)

	item, err := svc.AddToCart(context.Background(), cart.ID, p.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	stored, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 2, stored.Quantity, "le stock est décrémenté à l'ajout")
}

func TestAddToCartInsufficientStockLeavesStockUnchanged(t *testing.T) {
	svc, carts, products, cart := newCartFixture(t)
	p := activeProduct(10.00, 5)
	products.add(p)

	_, err := svc.AddToCart(context.Background(), cart.ID, p.ID, 6)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	stored, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 5, stored.Quantity)

	items, _ := carts.ListItems(context.Background(), cart.ID)
	assert.Empty(t, items, "aucune ligne créée quand le stock manque")
}

func TestAddToCartMergesDuplicateProduct(t *testing.T) {
	svc, carts, products, cart := newCartFixture(t)
	p := activeProduct(10.00, 5)
	products.add(p)

	_, err := svc.AddToCart(context.Background(), cart.ID, p.ID, 3)
	assert.NoError(t, err)
	item, err := svc.AddToCart(context.Background(), cart.ID, p.ID, 1)
	assert.NoError(t, err)

	assert.Equal(t, 4, item.Quantity, "les quantités fusionnent")

	items, _ := carts.ListItems(context.Background(), cart.ID)
	assert.Len(t, items, 1, "une seule ligne par couple (panier, produit)")

	stored, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 1, stored.Quantity)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, products, cart := newCartFixture(t)
	p := activeProduct(10.00, 5)
	products.add(p)

	for _, qty := range []int{0, -2} {
		_, err := svc.AddToCart(context.Background(), cart.ID, p.ID, qty)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
	}

	stored, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 5, stored.Quantity, "le stock n'est pas touché")
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _, _, cart := newCartFixture(t)

	_, err := svc.AddToCart(context.Background(), cart.ID, gocql.TimeUUID(), 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetTotalPriceSumsLivePrices(t *testing.T) {
	svc, _, products, cart := newCartFixture(t)
	clavier := activeProduct(10.00, 5)
	souris := activeProduct(24.90, 2)
	products.add(clavier)
	products.add(souris)

	_, err := svc.AddToCart(context.Background(), cart.ID, clavier.ID, 3)
	assert.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), cart.ID, souris.ID, 2)
	assert.NoError(t, err)

	total, err := svc.GetTotalPrice(context.Background(), cart.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 79.80, total, 0.001)
}

func TestGetTotalPriceEmptyCart(t *testing.T) {
	svc, _, _, cart := newCartFixture(t)

	total, err := svc.GetTotalPrice(context.Background(), cart.ID)
	assert.NoError(t, err)
	assert.Zero(t, total)
}
