package rest

import (
	"context"
	"net/url"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
)

// ProductStore is the inventory CRUD client. It shares the /products endpoint
// with CatalogStore but deals in the full product records.
type ProductStore struct {
	c *Client
}

var _ ports.ProductStore = (*ProductStore)(nil)

func NewProductStore(c *Client) *ProductStore {
	return &ProductStore{c: c}
}

func (s *ProductStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) GetProduct(ctx context.Context, sku string) (*domain.Product, error) {
	var p domain.Product
	if err := s.c.getJSON(ctx, "/products/"+url.PathEscape(sku), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductStore) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var echo domain.Product
	if err := s.c.sendJSON(ctx, "POST", "/products", p, &echo); err != nil {
		return nil, err
	}
	return &echo, nil
}

func (s *ProductStore) UpdateProduct(ctx context.Context, sku string, p *domain.Product) (*domain.Product, error) {
	var echo domain.Product
	if err := s.c.sendJSON(ctx, "PUT", "/products/"+url.PathEscape(sku), p, &echo); err != nil {
		return nil, err
	}
	return &echo, nil
}

func (s *ProductStore) DeleteProduct(ctx context.Context, sku string) error {
	return s.c.sendJSON(ctx, "DELETE", "/products/"+url.PathEscape(sku), nil, nil)
}
