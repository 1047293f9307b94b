package server

import (
	"fmt"
	"net/http"
	"time"

	"shopfront/internal/config"
	custommiddleware "shopfront/internal/middleware"
	"shopfront/internal/repository"
	"shopfront/internal/service"
	"shopfront/internal/store"
	"shopfront/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer wires the repositories, services and handlers onto a chi
// router. Everything hangs off the one store instance; there are no
// package-level singletons.
func NewServer(cfg *config.Config, logger *zap.Logger, st *store.Store) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Repositories
	productRepo := repository.NewProductRepository(st)
	orderRepo := repository.NewOrderRepository(st)
	userRepo := repository.NewUserRepository(st)

	// Services
	userService := service.NewUserService(userRepo, cfg.Auth.Secret)
	checkoutService := service.NewCheckoutService(orderRepo)
	statsService := service.NewStatsService(productRepo, orderRepo, userRepo)

	// Handlers
	productHandler := transport.NewProductHandler(productRepo, logger)
	orderHandler := transport.NewOrderHandler(orderRepo, productRepo, checkoutService, logger)
	userHandler := transport.NewUserHandler(userService, userRepo, logger)
	adminHandler := transport.NewAdminHandler(statsService, logger)

	// Admin routes require a valid session with the admin role.
	authMiddleware := custommiddleware.AuthMiddleware(userService, logger)
	requireAdmin := custommiddleware.RequireAdmin(logger)
	adminOnly := func(next http.Handler) http.Handler {
		return authMiddleware(requireAdmin(next))
	}

	productHandler.RegisterRoutes(router, adminOnly)
	orderHandler.RegisterRoutes(router, adminOnly)
	userHandler.RegisterRoutes(router, adminOnly)
	adminHandler.RegisterRoutes(router, adminOnly)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
