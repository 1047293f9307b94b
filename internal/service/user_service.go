package service

import (
	"errors"
	"fmt"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenExpiration bounds an admin-area session.
const AccessTokenExpiration = 24 * time.Hour

var (
	ErrInvalidCredentials = repository.ErrInvalidCredentials
	ErrInvalidToken       = errors.New("invalid token")
)

// UserService defines the interface for account business logic.
type UserService interface {
	Register(name, email, password string) (*domain.User, error)
	Login(email, password string) (token string, user *domain.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims represents the bearer token claims.
type Claims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type userService struct {
	users  repository.UserRepository
	secret string
}

// NewUserService creates a new instance of UserService.
func NewUserService(users repository.UserRepository, secret string) UserService {
	return &userService{users: users, secret: secret}
}

// Register creates a new account. The repository forces the default role
// and stamps the creation date; email uniqueness is not enforced and the
// first stored record wins on lookup.
func (s *userService) Register(name, email, password string) (*domain.User, error) {
	user, err := s.users.Add(domain.User{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Login authenticates the credentials and issues a bearer token carrying
// the user id and role. The returned user never includes the password.
func (s *userService) Login(email, password string) (string, *domain.User, error) {
	user, err := s.users.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// ValidateToken validates a bearer token and returns its claims.
func (s *userService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *userService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
