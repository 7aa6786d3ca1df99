package engine

import (
	"context"
	"sync/atomic"

	"github.com/saturnhq/purchase-orders/internal/apperr"
	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
)

// fakeOrderStore is an in-memory ports.OrderStore holding a single order.
// It applies patches the way the real backend does and records them so tests
// can assert on the exact write payload.
type fakeOrderStore struct {
	order    *domain.Order
	findErr  error
	patchErr error

	patches []ports.OrderPatch
	calls   atomic.Int32
}

var _ ports.OrderStore = (*fakeOrderStore)(nil)

func (f *fakeOrderStore) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	f.calls.Add(1)
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.order == nil || f.order.ID != id {
		return nil, apperr.ErrOrderNotFound
	}
	o := *f.order
	o.Products = append([]domain.LineItem(nil), f.order.Products...)
	return &o, nil
}

func (f *fakeOrderStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if f.order == nil {
		return nil, nil
	}
	return []domain.Order{*f.order}, nil
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	f.order = order
	return order, nil
}

func (f *fakeOrderStore) UpdateOrder(ctx context.Context, id string, patch ports.OrderPatch) (*domain.Order, error) {
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	f.patches = append(f.patches, patch)

	updated := *f.order
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Total != nil {
		updated.Total = *patch.Total
	}
	if patch.Products != nil {
		updated.Products = append([]domain.LineItem(nil), (*patch.Products)...)
	}
	f.order = &updated

	echo := updated
	echo.Products = append([]domain.LineItem(nil), updated.Products...)
	return &echo, nil
}

// fakeCatalog serves a fixed snapshot, or fails.
type fakeCatalog struct {
	products []domain.CatalogProduct
	err      error
}

var _ ports.Catalog = (*fakeCatalog)(nil)

func (f *fakeCatalog) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.NewSnapshot(f.products), nil
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:           "1",
		SupplierID:   "sup-tech",
		SupplierName: "TechImports",
		Status:       domain.StatusPending,
		Total:        20,
		Products: []domain.LineItem{
			{ProductID: "p1", ProductSKU: "SKU1", Quantity: 2, UnitPrice: 10, Subtotal: 20},
		},
	}
}
