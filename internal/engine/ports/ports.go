// Package ports declares the collaborator interfaces the engine depends on.
// The engine never talks to a transport directly; adapters implement these
// against the REST backend, and tests implement them in memory.
package ports

import (
	"context"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
)

// OrderStore is the purchase-order collaborator.
type OrderStore interface {
	// FindOrder resolves a single order by id. Returns
	// apperr.ErrOrderNotFound when no order matches.
	FindOrder(ctx context.Context, id string) (*domain.Order, error)

	ListOrders(ctx context.Context) ([]domain.Order, error)

	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// UpdateOrder sends a partial update and returns the store's full
	// representation of the order. The echo is authoritative post-write.
	UpdateOrder(ctx context.Context, id string, patch OrderPatch) (*domain.Order, error)
}

// OrderPatch is the partial-update body for an order. Nil fields are left
// untouched by the store.
type OrderPatch struct {
	Status   *domain.OrderStatus `json:"status,omitempty"`
	Total    *float64            `json:"total,omitempty"`
	Products *[]domain.LineItem  `json:"products,omitempty"`
}

// Catalog supplies the read-only product snapshot for one editing session.
type Catalog interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// ProductStore is the inventory CRUD collaborator. Products are keyed by SKU.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, sku string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, sku string, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, sku string) error
}

// SupplierDirectory is the supplier/user CRUD collaborator.
type SupplierDirectory interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	CreateSupplier(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, s *domain.Supplier) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}
