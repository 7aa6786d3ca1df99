package rest

import (
	"context"
	"net/url"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
)

// SupplierStore is the supplier/user directory client.
type SupplierStore struct {
	c *Client
}

var _ ports.SupplierDirectory = (*SupplierStore)(nil)

func NewSupplierStore(c *Client) *SupplierStore {
	return &SupplierStore{c: c}
}

func (s *SupplierStore) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := s.c.getJSON(ctx, "/suppliers", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *SupplierStore) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	var sup domain.Supplier
	if err := s.c.getJSON(ctx, "/suppliers/"+url.PathEscape(id), &sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *SupplierStore) CreateSupplier(ctx context.Context, sup *domain.Supplier) (*domain.Supplier, error) {
	var echo domain.Supplier
	if err := s.c.sendJSON(ctx, "POST", "/suppliers", sup, &echo); err != nil {
		return nil, err
	}
	return &echo, nil
}

func (s *SupplierStore) UpdateSupplier(ctx context.Context, id string, sup *domain.Supplier) (*domain.Supplier, error) {
	var echo domain.Supplier
	if err := s.c.sendJSON(ctx, "PUT", "/suppliers/"+url.PathEscape(id), sup, &echo); err != nil {
		return nil, err
	}
	return &echo, nil
}

func (s *SupplierStore) DeleteSupplier(ctx context.Context, id string) error {
	return s.c.sendJSON(ctx, "DELETE", "/suppliers/"+url.PathEscape(id), nil, nil)
}
