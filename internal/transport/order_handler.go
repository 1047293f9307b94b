package transport

import (
	"errors"
	"net/http"
	"strconv"

	"shopfront/internal/domain"
	"shopfront/internal/middleware"
	"shopfront/internal/repository"
	"shopfront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutLine is one cart entry in a checkout payload.
type CheckoutLine struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"gte=1"`
}

// CheckoutRequest carries the checkout form fields together with the cart
// contents at the moment of purchase.
type CheckoutRequest struct {
	FirstName     string         `json:"firstName" validate:"required"`
	LastName      string         `json:"lastName" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"required"`
	Address       string         `json:"address" validate:"required"`
	City          string         `json:"city" validate:"required"`
	PostalCode    string         `json:"postalCode" validate:"required"`
	Country       string         `json:"country" validate:"required"`
	PaymentMethod string         `json:"paymentMethod" validate:"required,oneof=creditCard cash"`
	Items         []CheckoutLine `json:"items" validate:"required,min=1,dive"`
}

// StatusUpdateRequest sets a new order status.
type StatusUpdateRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required"`
}

// OrderHandler handles HTTP requests for checkout and order management.
type OrderHandler struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	checkout service.CheckoutService
	logger   *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	checkout service.CheckoutService,
	logger *zap.Logger,
) *OrderHandler {
	return &OrderHandler{orders: orders, products: products, checkout: checkout, logger: logger}
}

// RegisterRoutes registers order routes. Everything except checkout
// requires an admin session.
func (h *OrderHandler) RegisterRoutes(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.Checkout)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.List)
			r.Get("/{id}", h.GetByID)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	})
}

// Checkout rebuilds the submitted cart against the live catalog and places
// the order.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart := service.NewCart()
	for _, line := range req.Items {
		product, err := h.products.GetByID(line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				middleware.RespondWithError(w, http.StatusBadRequest, "unknown product in cart")
				return
			}
			h.logger.Error("Failed to resolve cart product", zap.Error(err), zap.Int("product_id", line.ProductID))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
			return
		}
		cart.Add(*product)
		cart.SetQuantity(product.ID, line.Quantity)
	}

	order, err := h.checkout.Checkout(cart, service.CheckoutForm{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	h.logger.Info("Order placed",
		zap.Int("order_id", order.ID),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// List returns all orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetAll()
	if err != nil {
		h.logger.Error("Failed to load orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// GetByID returns a single order.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("Failed to load order", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateStatus transitions an order to a new status. The repository stores
// any status string as given; membership in the known enumeration is
// checked here, at the boundary.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req StatusUpdateRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !domain.ValidStatus(req.Status) {
		middleware.RespondWithError(w, http.StatusBadRequest, "unknown order status")
		return
	}

	order, err := h.orders.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("Failed to update order status", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update order status")
		return
	}

	h.logger.Info("Order status updated",
		zap.Int("order_id", order.ID),
		zap.String("status", string(order.Status)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, order)
}
