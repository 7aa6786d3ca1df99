// Package auth implements login sessions for the gateway. Credentials are
// checked against the supplier/user directory; tokens are opaque uuids held
// in the cache under a TTL.
package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/saturnhq/purchase-orders/internal/apperr"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
	"github.com/saturnhq/purchase-orders/internal/pkg/cache"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleSupplier = "supplier"
	RolePicker   = "picker"
)

// User is the resolved identity attached to authenticated requests.
// SupplierID doubles as the scope key for supplier-role users: they only see
// their own orders.
type User struct {
	SupplierID string `json:"supplierId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// CanEdit reports whether this user's role may mutate orders, products, or
// suppliers. Suppliers and pickers are read-only.
func (u User) CanEdit() bool {
	return u.Role != RoleSupplier && u.Role != RolePicker
}

// Service validates credentials and keeps bearer tokens in the cache.
type Service struct {
	directory ports.SupplierDirectory
	sessions  cache.Cache
	ttl       time.Duration
}

func NewService(directory ports.SupplierDirectory, sessions cache.Cache, ttl time.Duration) *Service {
	return &Service{directory: directory, sessions: sessions, ttl: ttl}
}

// Login checks email/password against the directory and mints a session
// token. Failed lookups and wrong passwords are indistinguishable to the
// caller: both return apperr.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, User, error) {
	if email == "" || password == "" {
		return "", User{}, apperr.ErrInvalidCredentials
	}

	suppliers, err := s.directory.ListSuppliers(ctx)
	if err != nil {
		return "", User{}, err
	}

	for _, sup := range suppliers {
		if sup.Email != email || sup.Password == "" || sup.Password != password {
			continue
		}

		user := User{
			SupplierID: sup.ID,
			Name:       sup.Name,
			Email:      sup.Email,
			Role:       sup.Role,
		}

		token := uuid.NewString()
		b, err := json.Marshal(user)
		if err != nil {
			return "", User{}, err
		}
		if err := s.sessions.Set(ctx, s.key(token), b, s.ttl); err != nil {
			return "", User{}, err
		}
		return token, user, nil
	}

	return "", User{}, apperr.ErrInvalidCredentials
}

// Resolve maps a bearer token back to its user, or apperr.ErrUnauthorized
// when the token is unknown or expired.
func (s *Service) Resolve(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, apperr.ErrUnauthorized
	}

	raw, err := s.sessions.Get(ctx, s.key(token))
	if err != nil {
		return User{}, err
	}
	if raw == "" {
		return User{}, apperr.ErrUnauthorized
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return User{}, apperr.ErrUnauthorized
	}
	return user, nil
}

// Logout invalidates a token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, s.key(token))
}

func (s *Service) key(token string) string {
	return s.sessions.GenerateKey("session", token)
}
