package service

import (
	"fmt"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/repository"
)

// StatsWindow is the trailing lookback applied to order aggregates.
const StatsWindow = 30 * 24 * time.Hour

// Stats is the admin dashboard summary.
type Stats struct {
	TotalSales   float64 `json:"totalSales"`
	OrderCount   int     `json:"orderCount"`
	ProductCount int     `json:"productCount"`
	UserCount    int     `json:"userCount"`
}

// StatsService derives summary counters from the repositories. Every call
// recomputes from current store content; there is no caching.
type StatsService interface {
	Compute() (*Stats, error)
}

type statsService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	now      func() time.Time
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
) StatsService {
	return &statsService{products: products, orders: orders, users: users, now: time.Now}
}

// NewStatsServiceWithClock creates a StatsService with a fixed clock, for
// tests that exercise the trailing window boundary.
func NewStatsServiceWithClock(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	now func() time.Time,
) StatsService {
	return &statsService{products: products, orders: orders, users: users, now: now}
}

// Compute sums and counts orders dated within the trailing 30 days
// (inclusive boundary), counts all products, and counts accounts with the
// "user" role, excluding admins.
func (s *statsService) Compute() (*Stats, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	cutoff := s.now().Add(-StatsWindow)
	stats := &Stats{}
	for _, order := range orders {
		date, err := time.Parse(domain.DateLayout, order.Date)
		if err != nil {
			// Unparseable dates fall outside any window.
			continue
		}
		if date.Before(cutoff) {
			continue
		}
		stats.TotalSales += order.Total
		stats.OrderCount++
	}

	products, err := s.products.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	stats.ProductCount = len(products)

	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	for _, user := range users {
		if user.Role == domain.RoleUser {
			stats.UserCount++
		}
	}

	return stats, nil
}
