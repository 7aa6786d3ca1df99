package engine

import (
	"context"

	"github.com/saturnhq/purchase-orders/internal/apperr"
	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
)

// Session owns one order-editing session: the enriched order, its working
// line-item set, and the catalog snapshot borrowed for the session's
// lifetime. A session is single-owner state; it is not safe for concurrent
// use and callers must serialize writes for the same order themselves.
//
// Every mutating call is gated on the order being Pending and returns
// apperr.ErrInvalidState otherwise. The pure mutation functions in this
// package stay permissive; the lifecycle rule lives here.
type Session struct {
	controller *Controller
	order      *domain.Order
	items      []domain.LineItem
	snapshot   *domain.Snapshot
}

func newSession(orders ports.OrderStore, order *domain.Order, snap *domain.Snapshot) *Session {
	s := &Session{
		controller: NewController(orders),
		order:      order,
		items:      Enrich(order.Products, snap),
		snapshot:   snap,
	}
	s.sync()
	return s
}

// Order returns a copy of the current order, with the working line items and
// the derived total folded in.
func (s *Session) Order() domain.Order {
	o := *s.order
	o.Products = s.Items()
	return o
}

// Items returns a copy of the working line-item sequence.
func (s *Session) Items() []domain.LineItem {
	return append([]domain.LineItem(nil), s.items...)
}

// Total is the derived order total over the working line items.
func (s *Session) Total() float64 { return s.order.Total }

// Editable reports whether the order is still in an editable state.
func (s *Session) Editable() bool { return s.order.Status.Editable() }

// SetField updates quantity or unit price on the item matching sku and
// recomputes its subtotal and the order total before returning.
func (s *Session) SetField(sku string, field Field, raw string) error {
	if !s.Editable() {
		return apperr.ErrInvalidState
	}
	s.items = SetField(s.items, sku, field, raw)
	s.sync()
	return nil
}

// AddItem appends a line item for productID from the catalog snapshot.
func (s *Session) AddItem(productID string) error {
	if !s.Editable() {
		return apperr.ErrInvalidState
	}
	s.items = AddItem(s.items, s.snapshot, productID)
	s.sync()
	return nil
}

// RemoveItem drops the line item matching sku.
func (s *Session) RemoveItem(sku string) error {
	if !s.Editable() {
		return apperr.ErrInvalidState
	}
	s.items = RemoveItem(s.items, sku)
	s.sync()
	return nil
}

// AvailableProducts lists the catalog rows that can still be added to this
// order. In-stock rows only; pass includeOutOfStock to relax the filter.
func (s *Session) AvailableProducts(includeOutOfStock bool) []domain.CatalogProduct {
	return AvailableProducts(s.snapshot, s.items, includeOutOfStock)
}

// Save persists the working line items and the recomputed total. On success
// the store echo replaces the in-memory order; on failure the edits are kept
// as-is so the user can retry without re-entering them.
func (s *Session) Save(ctx context.Context) error {
	if !s.Editable() {
		return apperr.ErrInvalidState
	}
	echo, err := s.controller.SaveLineItems(ctx, s.order, s.items)
	if err != nil {
		return err
	}
	s.adopt(echo)
	return nil
}

// Cancel moves the order to Cancelled. Terminal: every subsequent mutating
// call on this session fails with apperr.ErrInvalidState.
func (s *Session) Cancel(ctx context.Context) error {
	if !s.Editable() {
		return apperr.ErrInvalidState
	}
	echo, err := s.controller.CancelOrder(ctx, s.order)
	if err != nil {
		return err
	}
	s.adopt(echo)
	return nil
}

// adopt replaces the in-memory order with the store's echo, re-deriving the
// enrichment fields from the session snapshot. The echo is the source of
// truth post-write; optimistic local state is discarded in its favor.
func (s *Session) adopt(echo *domain.Order) {
	s.order = echo
	s.items = Enrich(echo.Products, s.snapshot)
	s.sync()
}

// sync restores the derived-field invariants: the order holds the working
// items and its total equals the sum of their subtotals.
func (s *Session) sync() {
	s.order.Products = s.items
	s.order.Total = RecomputeTotal(s.items)
}
