package transport

import (
	"net/http"

	"shopfront/internal/middleware"
	"shopfront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler serves the admin dashboard aggregates.
type AdminHandler struct {
	stats  service.StatsService
	logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(stats service.StatsService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{stats: stats, logger: logger}
}

// RegisterRoutes registers the admin dashboard routes.
func (h *AdminHandler) RegisterRoutes(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminOnly)
		r.Get("/stats", h.Stats)
	})
}

// Stats returns the dashboard counters, recomputed from current store
// content on every call.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Compute()
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, stats)
}
