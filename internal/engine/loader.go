// Package engine implements the purchase-order reconciliation engine: loading
// and enriching an order against the catalog, pure line-item mutation with
// derived totals, and the save/cancel persistence transitions.
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
)

// UnknownValue is the display sentinel for line items whose product no longer
// exists in the catalog. A stale catalog reference never blocks viewing the
// order.
const UnknownValue = "Unknown"

// Loader opens editing sessions: it fetches an order and the catalog snapshot
// and joins them into an enriched, editable view.
type Loader struct {
	orders  ports.OrderStore
	catalog ports.Catalog
}

func NewLoader(orders ports.OrderStore, catalog ports.Catalog) *Loader {
	return &Loader{orders: orders, catalog: catalog}
}

// Load fetches the order record and the catalog snapshot concurrently and
// waits for both before joining. The two fetches fail as a unit: if either
// errors the load fails whole and no partial view is produced. A missing
// order surfaces as apperr.ErrOrderNotFound from the store.
func (l *Loader) Load(ctx context.Context, orderID string) (*Session, error) {
	var (
		order *domain.Order
		snap  *domain.Snapshot
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		o, err := l.orders.FindOrder(ctx, orderID)
		order = o
		return err
	})
	g.Go(func() error {
		s, err := l.catalog.Snapshot(ctx)
		snap = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newSession(l.orders, order, snap), nil
}

// Enrich joins line items against the catalog snapshot by product id, copying
// display name, brand and current price onto each item, or the Unknown
// sentinel when the catalog has no matching row. Pure function: the input
// slice is not modified and the result depends only on its arguments.
func Enrich(items []domain.LineItem, snap *domain.Snapshot) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, li := range items {
		if p, ok := snap.ByProductID(li.ProductID); ok {
			li.ProductName = p.Name
			li.Brand = p.Brand
			li.InventoryPrice = p.Price
		} else {
			li.ProductName = UnknownValue
			li.Brand = UnknownValue
			li.InventoryPrice = 0
		}
		out[i] = li
	}
	return out
}
