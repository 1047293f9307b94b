package repository

import (
	"errors"
	"fmt"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials deliberately covers both an unknown email and a
	// wrong password so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserRepository defines the interface for account data access.
type UserRepository interface {
	GetAll() ([]domain.User, error)
	GetByEmail(email string) (*domain.User, error)
	Add(user domain.User) (*domain.User, error)
	Authenticate(email, password string) (*domain.User, error)
}

type userRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(s *store.Store) UserRepository {
	return &userRepository{store: s, now: time.Now}
}

// NewUserRepositoryWithClock creates a UserRepository with a fixed clock,
// for tests that assert createdAt stamping.
func NewUserRepositoryWithClock(s *store.Store, now func() time.Time) UserRepository {
	return &userRepository{store: s, now: now}
}

func (r *userRepository) load() ([]domain.User, error) {
	users, err := store.Load(r.store, store.UsersKey, store.SeedUsers())
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

func (r *userRepository) save(users []domain.User) error {
	if err := store.Save(r.store, store.UsersKey, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// GetAll returns all accounts in storage order, passwords included; this
// is an admin-only surface and the transport layer decides what to expose.
func (r *userRepository) GetAll() ([]domain.User, error) {
	return r.load()
}

// GetByEmail returns the first account matching email in storage order.
// Nothing enforces email uniqueness on insert, so duplicates resolve to
// whichever record was stored first.
func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Add appends a new account, assigning id = max existing id + 1, or 1 for
// an empty collection. The role is forced to "user" regardless of input
// and createdAt is stamped with the current day.
func (r *userRepository) Add(user domain.User) (*domain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}

	user.ID = nextID(users, func(u domain.User) int { return u.ID }, 1)
	user.Role = domain.RoleUser
	user.CreatedAt = r.now().Format(domain.DateLayout)
	users = append(users, user)

	if err := r.save(users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the supplied credentials against the stored record
// and returns the user with the password field stripped.
func (r *userRepository) Authenticate(email, password string) (*domain.User, error) {
	user, err := r.GetByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !credentialsMatch(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// credentialsMatch is the single seam for the credential scheme. Stored
// passwords are currently plain text; substituting a hash comparison here
// changes nothing else in the repository.
func credentialsMatch(stored, supplied string) bool {
	return stored == supplied
}
