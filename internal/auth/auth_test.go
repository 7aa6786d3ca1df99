package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnhq/purchase-orders/internal/apperr"
	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
	"github.com/saturnhq/purchase-orders/internal/pkg/cache"
)

type fakeDirectory struct {
	suppliers []domain.Supplier
}

var _ ports.SupplierDirectory = (*fakeDirectory)(nil)

func (f *fakeDirectory) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeDirectory) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	for i := range f.suppliers {
		if f.suppliers[i].ID == id {
			return &f.suppliers[i], nil
		}
	}
	return nil, errors.New("supplier not found")
}

func (f *fakeDirectory) CreateSupplier(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	f.suppliers = append(f.suppliers, *s)
	return s, nil
}

func (f *fakeDirectory) UpdateSupplier(ctx context.Context, id string, s *domain.Supplier) (*domain.Supplier, error) {
	return s, nil
}

func (f *fakeDirectory) DeleteSupplier(ctx context.Context, id string) error { return nil }

func newTestService() *Service {
	dir := &fakeDirectory{suppliers: []domain.Supplier{
		{ID: "sup-admin", Name: "Admin", Email: "admin@saturn.local", Role: RoleAdmin, Password: "admin"},
		{ID: "sup-tech", Name: "TechImports", Email: "sales@tech.example", Role: RoleSupplier, Password: "tech"},
	}}
	return NewService(dir, cache.NewMemoryCache("test"), time.Hour)
}

func TestLoginAndResolve(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "admin@saturn.local", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, RoleAdmin, user.Role)

	resolved, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user, resolved)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Login(context.Background(), "admin@saturn.local", "wrong")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "admin@saturn.local", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestResolve_UnknownToken(t *testing.T) {
	svc := newTestService()

	_, err := svc.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "sales@tech.example", "tech")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestUser_CanEdit(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.CanEdit())
	assert.True(t, User{Role: RoleManager}.CanEdit())
	assert.False(t, User{Role: RoleSupplier}.CanEdit())
	assert.False(t, User{Role: RolePicker}.CanEdit())
}
