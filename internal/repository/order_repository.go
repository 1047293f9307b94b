package repository

import (
	"errors"
	"fmt"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderIDBase is the id assigned to the first order of an empty collection.
const OrderIDBase = 1001

// OrderRepository defines the interface for order data access. Orders are
// immutable after creation except for their status.
type OrderRepository interface {
	GetAll() ([]domain.Order, error)
	GetByID(id int) (*domain.Order, error)
	Add(order domain.Order) (*domain.Order, error)
	UpdateStatus(id int, status domain.OrderStatus) (*domain.Order, error)
}

type orderRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(s *store.Store) OrderRepository {
	return &orderRepository{store: s, now: time.Now}
}

// NewOrderRepositoryWithClock creates an OrderRepository with a fixed
// clock, for tests that assert date stamping.
func NewOrderRepositoryWithClock(s *store.Store, now func() time.Time) OrderRepository {
	return &orderRepository{store: s, now: now}
}

func (r *orderRepository) load() ([]domain.Order, error) {
	orders, err := store.Load(r.store, store.OrdersKey, store.SeedOrders())
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) save(orders []domain.Order) error {
	if err := store.Save(r.store, store.OrdersKey, orders); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}
	return nil
}

// GetAll returns all orders in storage order.
func (r *orderRepository) GetAll() ([]domain.Order, error) {
	return r.load()
}

// GetByID retrieves an order by id.
func (r *orderRepository) GetByID(id int) (*domain.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// Add appends a new order, assigning id = max existing id + 1, or 1001 for
// an empty collection, and stamping the date with the current day. Any id
// or date on the input is overwritten.
func (r *orderRepository) Add(order domain.Order) (*domain.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}

	order.ID = nextID(orders, func(o domain.Order) int { return o.ID }, OrderIDBase)
	order.Date = r.now().Format(domain.DateLayout)
	orders = append(orders, order)

	if err := r.save(orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets the status field of the matching order, leaving every
// other field untouched. The status value is stored as given; membership
// in the known enumeration is a caller concern.
func (r *orderRepository) UpdateStatus(id int, status domain.OrderStatus) (*domain.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := r.save(orders); err != nil {
				return nil, err
			}
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}
