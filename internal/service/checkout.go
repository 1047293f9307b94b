package service

import (
	"errors"
	"fmt"

	"shopfront/internal/domain"
	"shopfront/internal/repository"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// CheckoutForm is the customer/payment payload collected at checkout.
type CheckoutForm struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	Country       string
	PaymentMethod string
}

// CheckoutService converts a cart plus a checkout form into a persisted
// order.
type CheckoutService interface {
	Checkout(cart *Cart, form CheckoutForm) (*domain.Order, error)
}

type checkoutService struct {
	orders repository.OrderRepository
}

// NewCheckoutService creates a new instance of CheckoutService.
func NewCheckoutService(orders repository.OrderRepository) CheckoutService {
	return &checkoutService{orders: orders}
}

// Checkout snapshots the cart entries into immutable order items, prices
// the order as subtotal plus shipping, persists it with the pending status
// and clears the cart on success. An empty cart is rejected.
func (s *checkoutService) Checkout(cart *Cart, form CheckoutForm) (*domain.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	snapshots := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	order := domain.Order{
		CustomerName:  form.FirstName + " " + form.LastName,
		CustomerEmail: form.Email,
		Status:        domain.StatusPending,
		Total:         cart.Total(),
		Items:         snapshots,
		Address:       fmt.Sprintf("%s, %s %s, %s", form.Address, form.City, form.PostalCode, form.Country),
		PaymentMethod: form.PaymentMethod,
	}

	placed, err := s.orders.Add(order)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	cart.Clear()
	return placed, nil
}
