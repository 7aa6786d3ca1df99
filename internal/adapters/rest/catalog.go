package rest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
	"github.com/saturnhq/purchase-orders/internal/pkg/cache"
)

// CatalogStore fetches the product snapshot used to enrich order line items.
// When a cache is supplied the raw product list is kept under a short TTL so
// that back-to-back session loads do not refetch the whole catalog; the
// snapshot each session receives is still immutable for its lifetime.
type CatalogStore struct {
	c     *Client
	cache cache.Cache // nil disables caching
	ttl   time.Duration
}

var _ ports.Catalog = (*CatalogStore)(nil)

func NewCatalogStore(c *Client, cch cache.Cache, ttl time.Duration) *CatalogStore {
	return &CatalogStore{c: c, cache: cch, ttl: ttl}
}

func (s *CatalogStore) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if products, ok := s.fromCache(ctx); ok {
		return domain.NewSnapshot(products), nil
	}

	var products []domain.CatalogProduct
	if err := s.c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}

	s.toCache(ctx, products)
	return domain.NewSnapshot(products), nil
}

func (s *CatalogStore) fromCache(ctx context.Context) ([]domain.CatalogProduct, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, s.key())
	if err != nil || raw == "" {
		return nil, false
	}
	var products []domain.CatalogProduct
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

// toCache is best-effort: a cache write failure never fails the load.
func (s *CatalogStore) toCache(ctx context.Context, products []domain.CatalogProduct) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(products)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, s.key(), b, s.ttl)
}

func (s *CatalogStore) key() string {
	return s.cache.GenerateKey("catalog", "snapshot")
}
