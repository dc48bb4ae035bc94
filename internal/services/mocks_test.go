package services_test

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

// ---- dépôts simulés en mémoire ----

type mockProductRepo struct {
	products map[gocql.UUID]*models.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[gocql.UUID]*models.Product)}
}

func (m *mockProductRepo) add(p models.Product) {
	cp := p
	m.products[p.ID] = &cp
}

func (m *mockProductRepo) GetByID(_ context.Context, id gocql.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gocql.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) ListActive(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	// tri date décroissante, comme le dépôt réel
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].ListingDate.After(out[i].ListingDate) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (m *mockProductRepo) ListActiveByCategory(ctx context.Context, categoryID gocql.UUID) ([]models.Product, error) {
	all, _ := m.ListActive(ctx)
	var out []models.Product
	for _, p := range all {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) ListBySeller(_ context.Context, sellerID gocql.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.SellerID == sellerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockProductRepo) ReserveStock(_ context.Context, id gocql.UUID, qty int) (bool, error) {
	p, ok := m.products[id]
	if !ok {
		return false, gocql.ErrNotFound
	}
	if p.Quantity < qty {
		return false, nil
	}
	p.Quantity -= qty
	return true, nil
}

type mockCategoryRepo struct {
	categories map[gocql.UUID]*models.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[gocql.UUID]*models.Category)}
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id gocql.UUID) (*models.Category, error) {
	cat, ok := m.categories[id]
	if !ok {
		return nil, gocql.ErrNotFound
	}
	cp := *cat
	return &cp, nil
}

func (m *mockCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, cat := range m.categories {
		out = append(out, *cat)
	}
	return out, nil
}

func (m *mockCategoryRepo) Create(_ context.Context, cat *models.Category) error {
	cp := *cat
	m.categories[cat.ID] = &cp
	return nil
}

type mockCustomerRepo struct {
	customers map[gocql.UUID]*models.Customer
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[gocql.UUID]*models.Customer)}
}

func (m *mockCustomerRepo) GetByID(_ context.Context, id gocql.UUID) (*models.Customer, error) {
	cust, ok := m.customers[id]
	if !ok {
		return nil, gocql.ErrNotFound
	}
	cp := *cust
	return &cp, nil
}

func (m *mockCustomerRepo) GetByEmail(_ context.Context, email string) (*models.Customer, error) {
	for _, cust := range m.customers {
		if cust.Email == email {
			cp := *cust
			return &cp, nil
		}
	}
	return nil, gocql.ErrNotFound
}

func (m *mockCustomerRepo) Create(_ context.Context, cust *models.Customer) error {
	cp := *cust
	m.customers[cust.ID] = &cp
	return nil
}

type mockCartRepo struct {
	carts      map[gocql.UUID]*models.Cart
	byCustomer map[gocql.UUID]gocql.UUID
	items      map[gocql.UUID]map[gocql.UUID]*models.CartItem
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{
		carts:      make(map[gocql.UUID]*models.Cart),
		byCustomer: make(map[gocql.UUID]gocql.UUID),
		items:      make(map[gocql.UUID]map[gocql.UUID]*models.CartItem),
	}
}

func (m *mockCartRepo) GetOrCreateByCustomer(_ context.Context, customerID gocql.UUID) (*models.Cart, error) {
	if cartID, ok := m.byCustomer[customerID]; ok {
		cp := *m.carts[cartID]
		return &cp, nil
	}
	cart := &models.Cart{ID: gocql.TimeUUID(), CustomerID: customerID}
	m.carts[cart.ID] = cart
	m.byCustomer[customerID] = cart.ID
	m.items[cart.ID] = make(map[gocql.UUID]*models.CartItem)
	cp := *cart
	return &cp, nil
}

func (m *mockCartRepo) GetByID(_ context.Context, cartID gocql.UUID) (*models.Cart, error) {
	cart, ok := m.carts[cartID]
	if !ok {
		return nil, gocql.ErrNotFound
	}
	cp := *cart
	return &cp, nil
}

func (m *mockCartRepo) GetItem(_ context.Context, cartID, productID gocql.UUID) (*models.CartItem, error) {
	item, ok := m.items[cartID][productID]
	if !ok {
		return nil, gocql.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *mockCartRepo) UpsertItem(_ context.Context, item *models.CartItem) error {
	if m.items[item.CartID] == nil {
		m.items[item.CartID] = make(map[gocql.UUID]*models.CartItem)
	}
	cp := *item
	m.items[item.CartID][item.ProductID] = &cp
	return nil
}

func (m *mockCartRepo) ListItems(_ context.Context, cartID gocql.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range m.items[cartID] {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockCartRepo) ClearItems(_ context.Context, cartID gocql.UUID) error {
	m.items[cartID] = make(map[gocql.UUID]*models.CartItem)
	return nil
}

type mockOrderRepo struct {
	orders map[gocql.UUID]*models.Order
	items  map[gocql.UUID][]models.OrderItem
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{
		orders: make(map[gocql.UUID]*models.Order),
		items:  make(map[gocql.UUID][]models.OrderItem),
	}
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order, items []models.OrderItem) error {
	cp := *order
	m.orders[order.ID] = &cp
	m.items[order.ID] = append([]models.OrderItem(nil), items...)
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, orderID gocql.UUID) (*models.Order, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return nil, gocql.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (m *mockOrderRepo) ListByCustomer(_ context.Context, customerID gocql.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, order := range m.orders {
		if order.CustomerID == customerID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListItems(_ context.Context, orderID gocql.UUID) ([]models.OrderItem, error) {
	return append([]models.OrderItem(nil), m.items[orderID]...), nil
}

func (m *mockOrderRepo) UpdateTotal(_ context.Context, orderID gocql.UUID, total float64) error {
	order, ok := m.orders[orderID]
	if !ok {
		return gocql.ErrNotFound
	}
	order.TotalPrice = total
	return nil
}

func (m *mockOrderRepo) MarkPaid(_ context.Context, orderID gocql.UUID) error {
	order, ok := m.orders[orderID]
	if !ok {
		return gocql.ErrNotFound
	}
	order.IsPaid = true
	return nil
}

type mockReviewRepo struct {
	reviews map[gocql.UUID][]models.Review
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{reviews: make(map[gocql.UUID][]models.Review)}
}

func (m *mockReviewRepo) Create(_ context.Context, review *models.Review) error {
	m.reviews[review.ProductID] = append(m.reviews[review.ProductID], *review)
	return nil
}

func (m *mockReviewRepo) ListByProduct(_ context.Context, productID gocql.UUID) ([]models.Review, error) {
	return append([]models.Review(nil), m.reviews[productID]...), nil
}
