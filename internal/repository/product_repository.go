package repository

import (
	"errors"
	"fmt"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	GetAll() ([]domain.Product, error)
	GetByID(id int) (*domain.Product, error)
	Add(product domain.Product) (*domain.Product, error)
	Update(product domain.Product) (*domain.Product, error)
	Delete(id int) error
	Categories() ([]string, error)
	Brands() ([]string, error)
}

type productRepository struct {
	store *store.Store
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(s *store.Store) ProductRepository {
	return &productRepository{store: s}
}

func (r *productRepository) load() ([]domain.Product, error) {
	products, err := store.Load(r.store, store.ProductsKey, store.SeedProducts())
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (r *productRepository) save(products []domain.Product) error {
	if err := store.Save(r.store, store.ProductsKey, products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}

// GetAll returns the full catalog in storage order.
func (r *productRepository) GetAll() ([]domain.Product, error) {
	return r.load()
}

// GetByID retrieves a product by id.
func (r *productRepository) GetByID(id int) (*domain.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// Add appends a new product, assigning id = max existing id + 1, or 1 for
// an empty catalog. Any id on the input is ignored.
func (r *productRepository) Add(product domain.Product) (*domain.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}

	product.ID = nextID(products, func(p domain.Product) int { return p.ID }, 1)
	products = append(products, product)

	if err := r.save(products); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the record matching product.ID in full.
func (r *productRepository) Update(product domain.Product) (*domain.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			if err := r.save(products); err != nil {
				return nil, err
			}
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// Delete removes the record matching id. Deleting an absent id is not an
// error.
func (r *productRepository) Delete(id int) error {
	products, err := r.load()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.save(kept)
}

// Categories returns the distinct categories present in the catalog, in
// first-seen order.
func (r *productRepository) Categories() ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.Category })
}

// Brands returns the distinct brands present in the catalog, in first-seen
// order. Products without a brand are skipped.
func (r *productRepository) Brands() ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.Brand })
}

func (r *productRepository) distinct(field func(domain.Product) string) ([]string, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	values := []string{}
	for _, p := range products {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}

// nextID assigns the next integer id: max existing id + 1, or base when
// the collection is empty.
func nextID[T any](records []T, id func(T) int, base int) int {
	if len(records) == 0 {
		return base
	}
	max := id(records[0])
	for _, rec := range records[1:] {
		if id(rec) > max {
			max = id(rec)
		}
	}
	return max + 1
}
