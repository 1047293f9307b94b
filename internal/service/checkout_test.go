package service

import (
	"testing"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/repository"
	"shopfront/internal/store"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(afero.NewMemMapFs(), "data", zap.NewNop())
	require.NoError(t, err)
	return s
}

func testForm() CheckoutForm {
	return CheckoutForm{
		FirstName:     "Ahmet",
		LastName:      "Yılmaz",
		Email:         "ahmet@example.com",
		Phone:         "05551112233",
		Address:       "Örnek Sokak No:1",
		City:          "İstanbul",
		PostalCode:    "34000",
		Country:       "Türkiye",
		PaymentMethod: "creditCard",
	}
}

func TestCheckout_SnapshotsCartIntoOrder(t *testing.T) {
	s := newTestStore(t)
	orders := repository.NewOrderRepositoryWithClock(s, func() time.Time {
		ts, _ := time.Parse(domain.DateLayout, "2024-05-10")
		return ts
	})
	svc := NewCheckoutService(orders)

	cart := NewCart()
	cart.Add(testProduct(2, 1299.99))
	cart.Add(testProduct(5, 899.99))
	cart.SetQuantity(5, 2)

	placed, err := svc.Checkout(cart, testForm())
	require.NoError(t, err)

	assert.Equal(t, 1002, placed.ID) // follows the seeded order 1001
	assert.Equal(t, "2024-05-10", placed.Date)
	assert.Equal(t, "Ahmet Yılmaz", placed.CustomerName)
	assert.Equal(t, "ahmet@example.com", placed.CustomerEmail)
	assert.Equal(t, domain.StatusPending, placed.Status)
	assert.Equal(t, "Örnek Sokak No:1, İstanbul 34000, Türkiye", placed.Address)
	assert.Equal(t, "creditCard", placed.PaymentMethod)

	require.Len(t, placed.Items, 2)
	assert.Equal(t, domain.OrderItem{ProductID: 2, Name: "Ürün", Quantity: 1, Price: 1299.99}, placed.Items[0])
	assert.Equal(t, domain.OrderItem{ProductID: 5, Name: "Ürün", Quantity: 2, Price: 899.99}, placed.Items[1])

	// Subtotal clears the free-shipping threshold, so no fee.
	assert.Equal(t, 1299.99+2*899.99, placed.Total)

	// The cart is emptied once the order is placed.
	assert.Empty(t, cart.Items())
}

func TestCheckout_TotalIncludesShippingOnSmallOrders(t *testing.T) {
	s := newTestStore(t)
	svc := NewCheckoutService(repository.NewOrderRepository(s))

	cart := NewCart()
	cart.Add(testProduct(8, 100))

	placed, err := svc.Checkout(cart, testForm())
	require.NoError(t, err)
	assert.Equal(t, 115.0, placed.Total)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	s := newTestStore(t)
	svc := NewCheckoutService(repository.NewOrderRepository(s))

	_, err := svc.Checkout(NewCart(), testForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_OrderSurvivesLaterProductChanges(t *testing.T) {
	s := newTestStore(t)
	products := repository.NewProductRepository(s)
	orders := repository.NewOrderRepository(s)
	svc := NewCheckoutService(orders)

	phone, err := products.GetByID(1)
	require.NoError(t, err)

	cart := NewCart()
	cart.Add(*phone)
	placed, err := svc.Checkout(cart, testForm())
	require.NoError(t, err)

	// Reprice the live product; the order item keeps its snapshot.
	updated := *phone
	updated.Price = 1.0
	_, err = products.Update(updated)
	require.NoError(t, err)

	reloaded, err := orders.GetByID(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, 7999.99, reloaded.Items[0].Price)
}
