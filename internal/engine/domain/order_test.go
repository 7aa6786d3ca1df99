package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Editable(t *testing.T) {
	assert.True(t, StatusPending.Editable())

	for _, s := range []OrderStatus{StatusApproved, StatusTransit, StatusDelivered, StatusCancelled} {
		assert.False(t, s.Editable(), "status %s", s)
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusDelivered.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.False(t, StatusTransit.Terminal())
}

func TestLineItem_Recompute(t *testing.T) {
	li := LineItem{Quantity: 3, UnitPrice: 10}
	li.Recompute()
	assert.Equal(t, 30.0, li.Subtotal)

	li.Quantity = 0
	li.Recompute()
	assert.Equal(t, 0.0, li.Subtotal)
}

func TestLineItem_EnrichmentFieldsNotSerialized(t *testing.T) {
	li := LineItem{
		ProductID:      "p1",
		ProductSKU:     "SKU1",
		Quantity:       2,
		UnitPrice:      10,
		Subtotal:       20,
		ProductName:    "Monitor",
		Brand:          "ViewMax",
		InventoryPrice: 12,
	}

	b, err := json.Marshal(li)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.NotContains(t, decoded, "productName")
	assert.NotContains(t, decoded, "brand")
	assert.NotContains(t, decoded, "inventoryPrice")
	assert.Equal(t, "SKU1", decoded["productSku"])
}

func TestSnapshot_Lookup(t *testing.T) {
	snap := NewSnapshot([]CatalogProduct{
		{ProductID: "p1", SKU: "SKU1", Name: "Monitor"},
		{ProductID: "p2", SKU: "SKU2", Name: "Keyboard"},
	})

	p, ok := snap.ByProductID("p2")
	require.True(t, ok)
	assert.Equal(t, "SKU2", p.SKU)

	_, ok = snap.ByProductID("ghost")
	assert.False(t, ok)
	assert.Equal(t, 2, snap.Len())
}
