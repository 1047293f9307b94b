package transport

import (
	"errors"
	"net/http"

	"shopfront/internal/domain"
	"shopfront/internal/middleware"
	"shopfront/internal/repository"
	"shopfront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRequest represents the registration form payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the account shape returned to clients; it never carries
// the password.
type UserProfile struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// LoginResponse pairs the issued bearer token with the account profile.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

func profileOf(user *domain.User) UserProfile {
	return UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	userService service.UserService
	users       repository.UserRepository
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, users repository.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, users: users, logger: logger}
}

// RegisterRoutes registers account routes. The account listing requires an
// admin session.
func (h *UserHandler) RegisterRoutes(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.List)
		})
	})
}

// Register handles self-registration. The new account always gets the
// default "user" role.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Registration validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Registration failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	h.logger.Info("User registered", zap.Int("user_id", user.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, profileOf(user))
}

// Login handles authentication. Bad credentials always produce the same
// generic message, whatever actually failed.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	h.logger.Info("User logged in", zap.Int("user_id", user.ID))
	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{Token: token, User: profileOf(user)})
}

// List returns all account profiles.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAll()
	if err != nil {
		h.logger.Error("Failed to load users", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load users")
		return
	}

	profiles := make([]UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, profileOf(&users[i]))
	}
	middleware.RespondWithJSON(w, http.StatusOK, profiles)
}
