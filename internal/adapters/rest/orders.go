package rest

import (
	"context"
	"net/url"

	"github.com/saturnhq/purchase-orders/internal/apperr"
	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
)

// OrderStore talks to the purchase-order collaborator. The backend has no
// single-order endpoint, so lookup lists and filters client-side.
type OrderStore struct {
	c *Client
}

var _ ports.OrderStore = (*OrderStore)(nil)

func NewOrderStore(c *Client) *OrderStore {
	return &OrderStore{c: c}
}

func (s *OrderStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.c.getJSON(ctx, "/purchase-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindOrder resolves one order by id. A list response with no match means
// the order does not exist: apperr.ErrOrderNotFound, non-retryable.
func (s *OrderStore) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			order := orders[i]
			return &order, nil
		}
	}
	return nil, apperr.ErrOrderNotFound
}

func (s *OrderStore) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var echo domain.Order
	if err := s.c.sendJSON(ctx, "POST", "/purchase-orders", order, &echo); err != nil {
		return nil, err
	}
	return &echo, nil
}

// UpdateOrder PATCHes a partial update and returns the store's full
// representation of the order.
func (s *OrderStore) UpdateOrder(ctx context.Context, id string, patch ports.OrderPatch) (*domain.Order, error) {
	var echo domain.Order
	path := "/purchase-orders/" + url.PathEscape(id)
	if err := s.c.sendJSON(ctx, "PATCH", path, patch, &echo); err != nil {
		return nil, err
	}
	return &echo, nil
}
