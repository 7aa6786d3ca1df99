package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
)

// Field identifies which editable line-item field SetField targets.
type Field string

const (
	FieldQuantity  Field = "quantity"
	FieldUnitPrice Field = "unitPrice"
)

// SetField returns a new line-item sequence with the named field on the item
// matching sku updated from raw. Raw input that is negative, non-finite, or
// does not parse as a number is coerced to 0, never rejected. The item's
// subtotal is recomputed from the post-update values before the sequence is
// returned. The input slice is never modified; an absent sku or unknown field
// yields an unchanged copy.
func SetField(items []domain.LineItem, sku string, field Field, raw string) []domain.LineItem {
	out := append([]domain.LineItem(nil), items...)

	for i := range out {
		if out[i].ProductSKU != sku {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			v = 0
		}

		switch field {
		case FieldQuantity:
			// int(v) overflows for finite values past the int range, which
			// would smuggle a negative quantity through the clamp.
			if v >= math.MaxInt64 {
				v = 0
			}
			out[i].Quantity = int(v)
		case FieldUnitPrice:
			out[i].UnitPrice = v
		default:
			return out
		}

		out[i].Recompute()
		// SKUs are unique within an order, nothing further to update.
		break
	}

	return out
}

// AddItem returns a new sequence with a line item for productID appended:
// quantity 1, unit price taken from the catalog's current price, enrichment
// fields copied from the catalog row. It is a silent no-op when productID is
// empty, when the catalog has no such product, or when an item with the
// resulting SKU already exists on the order.
func AddItem(items []domain.LineItem, snap *domain.Snapshot, productID string) []domain.LineItem {
	out := append([]domain.LineItem(nil), items...)

	if productID == "" {
		return out
	}
	p, ok := snap.ByProductID(productID)
	if !ok {
		return out
	}
	for i := range out {
		if out[i].ProductSKU == p.SKU {
			return out
		}
	}

	item := domain.LineItem{
		ProductID:      p.ProductID,
		ProductSKU:     p.SKU,
		Quantity:       1,
		UnitPrice:      p.Price,
		ProductName:    p.Name,
		Brand:          p.Brand,
		InventoryPrice: p.Price,
	}
	item.Recompute()

	return append(out, item)
}

// RemoveItem returns a new sequence without the item matching sku. Removing
// an absent sku is a no-op, so repeated removal is harmless.
func RemoveItem(items []domain.LineItem, sku string) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, li := range items {
		if li.ProductSKU == sku {
			continue
		}
		out = append(out, li)
	}
	return out
}

// RecomputeTotal derives the order total from the current line items.
func RecomputeTotal(items []domain.LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Subtotal
	}
	return total
}

// AvailableProducts returns the catalog rows that can still be offered to
// AddItem: everything not already present among the current line items.
// Zero-stock rows are filtered out unless includeOutOfStock is set; that
// filter is a usability aid, not a correctness rule, so callers may relax it.
func AvailableProducts(snap *domain.Snapshot, items []domain.LineItem, includeOutOfStock bool) []domain.CatalogProduct {
	present := make(map[string]struct{}, len(items))
	for _, li := range items {
		present[li.ProductID] = struct{}{}
	}

	out := make([]domain.CatalogProduct, 0, snap.Len())
	for _, p := range snap.Products() {
		if _, ok := present[p.ProductID]; ok {
			continue
		}
		if !includeOutOfStock && p.InStock == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}
