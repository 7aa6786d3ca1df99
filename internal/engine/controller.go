package engine

import (
	"context"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
)

// Controller persists accepted line-item edits and the cancel transition.
//
// Preconditions, owned by the caller and not re-checked here: the order must
// be Pending, and no other save or cancel may be in flight for the same
// order. The controller itself is lock-free and stateless.
type Controller struct {
	orders ports.OrderStore
}

func NewController(orders ports.OrderStore) *Controller {
	return &Controller{orders: orders}
}

// SaveLineItems recomputes the order total from items and sends a partial
// update carrying the full line-item sequence plus the total. On success the
// store's echo of the order is returned and is authoritative. On failure the
// caller's in-memory items are untouched, so a retry needs no re-entry.
func (c *Controller) SaveLineItems(ctx context.Context, order *domain.Order, items []domain.LineItem) (*domain.Order, error) {
	total := RecomputeTotal(items)
	products := append([]domain.LineItem(nil), items...)

	return c.orders.UpdateOrder(ctx, order.ID, ports.OrderPatch{
		Total:    &total,
		Products: &products,
	})
}

// CancelOrder sends a status-only update moving the order to Cancelled and
// returns the store's echo. Cancelled is terminal: after success the caller
// must not offer further edits or re-cancellation.
func (c *Controller) CancelOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	status := domain.StatusCancelled

	return c.orders.UpdateOrder(ctx, order.ID, ports.OrderPatch{
		Status: &status,
	})
}
