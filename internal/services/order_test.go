package services_test

import (
	"context"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"

	"github.com/SANDREQSA22/ebay-mz/internal/services"
)

func newCheckoutFixture(t *testing.T) (*services.CartService, *services.OrderService, *mockCartRepo, *mockOrderRepo, *mockProductRepo) {
	t.Helper()

	carts := newMockCartRepo()
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	return services.NewCartService(carts, products),
		services.NewOrderService(orders, carts, products),
		carts, orders, products
}

func TestCheckoutSnapshotsCartAndClearsIt(t *testing.T) {
	cartSvc, orderSvc, carts, orders, products := newCheckoutFixture(t)

	cart, err := cartSvc.GetOrCreateCart(context.Background(), gocql.TimeUUID())
	assert.NoError(t, err)

	clavier := activeProduct(10.00, 5)
	souris := activeProduct(25.50, 3)
	products.add(clavier)
	products.add(souris)

	_, err = cartSvc.AddToCart(context.Background(), cart.ID, clavier.ID, 2)
	assert.NoError(t, err)
	_, err = cartSvc.AddToCart(context.Background(), cart.ID, souris.ID, 1)
	assert.NoError(t, err)

	order, err := orderSvc.Checkout(context.Background(), cart.ID, "123 Main St")
	assert.NoError(t, err)
	assert.Equal(t, cart.CustomerID, order.CustomerID)
	assert.Equal(t, "123 Main St", order.ShippingAddress)
	assert.False(t, order.IsPaid)
	assert.InDelta(t, 45.50, order.TotalPrice, 0.001)

	// Les lignes de commande reprennent les lignes du panier 1:1
	items, err := orders.ListItems(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	quantities := map[gocql.UUID]int{}
	for _, item := range items {
		assert.Equal(t, order.ID, item.OrderID)
		quantities[item.ProductID] = item.Quantity
	}
	assert.Equal(t, 2, quantities[clavier.ID])
	assert.Equal(t, 1, quantities[souris.ID])

	// Le panier est vidé, le stock ne bouge plus au checkout
	cartItems, _ := carts.ListItems(context.Background(), cart.ID)
	assert.Empty(t, cartItems)
	stored, _ := products.GetByID(context.Background(), clavier.ID)
	assert.Equal(t, 3, stored.Quantity)
}

func TestCheckoutEmptyCartCreatesNothing(t *testing.T) {
	cartSvc, orderSvc, _, orders, _ := newCheckoutFixture(t)

	cart, err := cartSvc.GetOrCreateCart(context.Background(), gocql.TimeUUID())
	assert.NoError(t, err)

	_, err = orderSvc.Checkout(context.Background(), cart.ID, "123 Main St")
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Empty(t, orders.orders, "aucune commande créée")
}

func TestCheckoutUnknownCart(t *testing.T) {
	_, orderSvc, _, _, _ := newCheckoutFixture(t)

	_, err := orderSvc.Checkout(context.Background(), gocql.TimeUUID(), "123 Main St")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

// Le scénario de bout en bout : prix 10.00, stock 5, ajout de 3 puis de 1.
func TestCheckoutAfterMergedAdds(t *testing.T) {
	cartSvc, orderSvc, carts, orders, products := newCheckoutFixture(t)

	cart, err := cartSvc.GetOrCreateCart(context.Background(), gocql.TimeUUID())
	assert.NoError(t, err)

	p := activeProduct(10.00, 5)
	products.add(p)

	item, err := cartSvc.AddToCart(context.Background(), cart.ID, p.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	stored, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 2, stored.Quantity)

	item, err = cartSvc.AddToCart(context.Background(), cart.ID, p.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
	stored, _ = products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 1, stored.Quantity)

	total, err := cartSvc.GetTotalPrice(context.Background(), cart.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 40.00, total, 0.001)

	order, err := orderSvc.Checkout(context.Background(), cart.ID, "123 Main St")
	assert.NoError(t, err)
	assert.InDelta(t, 40.00, order.TotalPrice, 0.001)

	items, _ := orders.ListItems(context.Background(), order.ID)
	assert.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	cartItems, _ := carts.ListItems(context.Background(), cart.ID)
	assert.Empty(t, cartItems)
}

// Les totaux relisent le prix courant : changer un prix change le total
// recalculé d'une commande passée.
func TestRecalculateTotalUsesLivePrice(t *testing.T) {
	cartSvc, orderSvc, _, orders, products := newCheckoutFixture(t)

	cart, err := cartSvc.GetOrCreateCart(context.Background(), gocql.TimeUUID())
	assert.NoError(t, err)

	p := activeProduct(10.00, 5)
	products.add(p)

	_, err = cartSvc.AddToCart(context.Background(), cart.ID, p.ID, 4)
	assert.NoError(t, err)

	order, err := orderSvc.Checkout(context.Background(), cart.ID, "123 Main St")
	assert.NoError(t, err)
	assert.InDelta(t, 40.00, order.TotalPrice, 0.001)

	// Le vendeur change le prix après coup
	products.products[p.ID].Price = 12.50

	total, err := orderSvc.RecalculateTotal(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 50.00, total, 0.001)

	stored, _ := orders.GetByID(context.Background(), order.ID)
	assert.InDelta(t, 50.00, stored.TotalPrice, 0.001, "le nouveau total est persisté")
}

func TestRecalculateTotalUnknownOrder(t *testing.T) {
	_, orderSvc, _, _, _ := newCheckoutFixture(t)

	_, err := orderSvc.RecalculateTotal(context.Background(), gocql.TimeUUID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMarkPaid(t *testing.T) {
	cartSvc, orderSvc, _, orders, products := newCheckoutFixture(t)

	cart, err := cartSvc.GetOrCreateCart(context.Background(), gocql.TimeUUID())
	assert.NoError(t, err)

	p := activeProduct(10.00, 5)
	products.add(p)
	_, err = cartSvc.AddToCart(context.Background(), cart.ID, p.ID, 1)
	assert.NoError(t, err)

	order, err := orderSvc.Checkout(context.Background(), cart.ID, "123 Main St")
	assert.NoError(t, err)
	assert.False(t, order.IsPaid)

	assert.NoError(t, orderSvc.MarkPaid(context.Background(), order.ID))
	stored, _ := orders.GetByID(context.Background(), order.ID)
	assert.True(t, stored.IsPaid)

	assert.ErrorIs(t, orderSvc.MarkPaid(context.Background(), gocql.TimeUUID()), services.ErrNotFound)
}
