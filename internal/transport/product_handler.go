package transport

import (
	"errors"
	"net/http"
	"strconv"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
	"shopfront/internal/middleware"
	"shopfront/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductUpsertRequest is the admin payload for creating or replacing a
// catalog record.
type ProductUpsertRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Price          float64                `json:"price" validate:"gte=0"`
	OldPrice       *float64               `json:"oldPrice,omitempty"`
	Image          string                 `json:"image,omitempty"`
	Images         []string               `json:"images,omitempty"`
	Rating         float64                `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int                    `json:"reviewCount" validate:"gte=0"`
	IsNew          bool                   `json:"isNew"`
	IsSale         bool                   `json:"isSale"`
	Category       string                 `json:"category" validate:"required"`
	Brand          string                 `json:"brand,omitempty"`
	Description    string                 `json:"description,omitempty"`
	Specifications []domain.Specification `json:"specifications,omitempty"`
	Colors         []domain.ColorOption   `json:"colors,omitempty"`
	Sizes          []string               `json:"sizes,omitempty"`
	Stock          int                    `json:"stock" validate:"gte=0"`
}

func (req ProductUpsertRequest) toDomain() domain.Product {
	return domain.Product{
		Name:           req.Name,
		Price:          req.Price,
		OldPrice:       req.OldPrice,
		Image:          req.Image,
		Images:         req.Images,
		Rating:         req.Rating,
		ReviewCount:    req.ReviewCount,
		IsNew:          req.IsNew,
		IsSale:         req.IsSale,
		Category:       req.Category,
		Brand:          req.Brand,
		Description:    req.Description,
		Specifications: req.Specifications,
		Colors:         req.Colors,
		Sizes:          req.Sizes,
		Stock:          req.Stock,
	}
}

// ProductListResponse wraps the filtered catalog with its result count.
type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products repository.ProductRepository, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// RegisterRoutes registers catalog routes. Mutating routes require an
// admin session.
func (h *ProductHandler) RegisterRoutes(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})

	r.Get("/api/categories", h.Categories)
	r.Get("/api/brands", h.Brands)
}

// List returns the catalog after applying the filter/sort/search state
// from the query string.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll()
	if err != nil {
		h.logger.Error("Failed to load catalog", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := catalog.Apply(products, filter)
	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{Products: result, Count: len(result)})
}

// filterFromQuery maps the product list query string onto a catalog
// filter: category/brand/rating repeatable, minPrice/maxPrice numeric,
// discount boolean, sort key, free-text search.
func filterFromQuery(r *http.Request) (catalog.Filter, error) {
	q := r.URL.Query()

	filter := catalog.Filter{
		Categories: q["category"],
		Brands:     q["brand"],
		Sort:       catalog.SortOption(q.Get("sort")),
		Query:      q.Get("search"),
	}

	if v := q.Get("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return catalog.Filter{}, errors.New("invalid minPrice")
		}
		filter.PriceMin = &min
	}
	if v := q.Get("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return catalog.Filter{}, errors.New("invalid maxPrice")
		}
		filter.PriceMax = &max
	}
	for _, v := range q["rating"] {
		rating, err := strconv.Atoi(v)
		if err != nil {
			return catalog.Filter{}, errors.New("invalid rating")
		}
		filter.Ratings = append(filter.Ratings, rating)
	}
	if v := q.Get("discount"); v != "" {
		discount, err := strconv.ParseBool(v)
		if err != nil {
			return catalog.Filter{}, errors.New("invalid discount")
		}
		filter.DiscountOnly = discount
	}

	return filter, nil
}

// GetByID returns a single product.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to load product", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Create adds a product to the catalog; the id is assigned by the
// repository.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductUpsertRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.products.Add(req.toDomain())
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.Int("id", product.ID), zap.String("name", product.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// Update replaces the product identified by the path id in full.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req ProductUpsertRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product := req.toDomain()
	product.ID = id

	updated, err := h.products.Update(product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to update product", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete removes the product identified by the path id. Deleting an
// absent id still returns 204.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.products.Delete(id); err != nil {
		h.logger.Error("Failed to delete product", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Categories returns the distinct categories in the catalog.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.Categories()
	if err != nil {
		h.logger.Error("Failed to load categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// Brands returns the distinct brands in the catalog.
func (h *ProductHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.products.Brands()
	if err != nil {
		h.logger.Error("Failed to load brands", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load brands")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, brands)
}
