package service

import (
	"testing"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/repository"
	"shopfront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCompute_TrailingWindow(t *testing.T) {
	s := newTestStore(t)

	now, err := time.Parse(domain.DateLayout, "2024-06-30")
	require.NoError(t, err)

	require.NoError(t, store.Save(s, store.OrdersKey, []domain.Order{
		{ID: 1001, Date: "2024-06-29", Status: domain.StatusCompleted, Total: 100},
		{ID: 1002, Date: "2024-05-31", Status: domain.StatusCompleted, Total: 200}, // 30 days back, inclusive
		{ID: 1003, Date: "2024-05-30", Status: domain.StatusCompleted, Total: 400}, // just outside
		{ID: 1004, Date: "2023-01-01", Status: domain.StatusCancelled, Total: 800},
		{ID: 1005, Date: "not-a-date", Status: domain.StatusPending, Total: 1600},
	}))

	svc := NewStatsServiceWithClock(
		repository.NewProductRepository(s),
		repository.NewOrderRepository(s),
		repository.NewUserRepository(s),
		func() time.Time { return now },
	)

	stats, err := svc.Compute()
	require.NoError(t, err)
	assert.Equal(t, 300.0, stats.TotalSales)
	assert.Equal(t, 2, stats.OrderCount)
}

func TestStatsCompute_CountsProductsAndNonAdminUsers(t *testing.T) {
	s := newTestStore(t)

	svc := NewStatsService(
		repository.NewProductRepository(s),
		repository.NewOrderRepository(s),
		repository.NewUserRepository(s),
	)

	stats, err := svc.Compute()
	require.NoError(t, err)

	// Seed data: 12 products, 3 users of which 2 are admins.
	assert.Equal(t, 12, stats.ProductCount)
	assert.Equal(t, 1, stats.UserCount)
}

func TestStatsCompute_RecomputesFromCurrentState(t *testing.T) {
	s := newTestStore(t)
	products := repository.NewProductRepository(s)

	svc := NewStatsService(
		products,
		repository.NewOrderRepository(s),
		repository.NewUserRepository(s),
	)

	before, err := svc.Compute()
	require.NoError(t, err)

	_, err = products.Add(domain.Product{Name: "Yeni Ürün", Category: "Elektronik"})
	require.NoError(t, err)

	after, err := svc.Compute()
	require.NoError(t, err)
	assert.Equal(t, before.ProductCount+1, after.ProductCount)
}
