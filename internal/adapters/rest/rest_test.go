package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnhq/purchase-orders/internal/apperr"
	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
	"github.com/saturnhq/purchase-orders/internal/pkg/cache"
)

func TestOrderStore_FindOrderFiltersClientSide(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/purchase-orders", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.Order{
			{ID: "1", Status: domain.StatusPending},
			{ID: "2", Status: domain.StatusDelivered},
		})
	}))
	defer srv.Close()

	store := NewOrderStore(NewClient(srv.URL, nil))

	order, err := store.FindOrder(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, order.Status)

	_, err = store.FindOrder(context.Background(), "99")
	assert.ErrorIs(t, err, apperr.ErrOrderNotFound)
}

func TestOrderStore_UpdateOrderPatchBody(t *testing.T) {
	var body map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/purchase-orders/1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(domain.Order{ID: "1", Status: domain.StatusPending, Total: 30})
	}))
	defer srv.Close()

	store := NewOrderStore(NewClient(srv.URL, nil))

	total := 30.0
	products := []domain.LineItem{{
		ProductID: "p1", ProductSKU: "SKU1", Quantity: 3, UnitPrice: 10, Subtotal: 30,
		ProductName: "Monitor", Brand: "ViewMax", InventoryPrice: 12,
	}}

	echo, err := store.UpdateOrder(context.Background(), "1", ports.OrderPatch{
		Total:    &total,
		Products: &products,
	})
	require.NoError(t, err)
	assert.Equal(t, 30.0, echo.Total)

	// status omitted from a line-item save
	assert.NotContains(t, body, "status")
	assert.Contains(t, body, "total")
	assert.Contains(t, body, "products")

	// enrichment fields must never reach the wire
	var items []map[string]any
	require.NoError(t, json.Unmarshal(body["products"], &items))
	require.Len(t, items, 1)
	assert.NotContains(t, items[0], "productName")
	assert.NotContains(t, items[0], "brand")
	assert.NotContains(t, items[0], "inventoryPrice")
	assert.Equal(t, "SKU1", items[0]["productSku"])
}

func TestOrderStore_UpdateOrderNon2xxIsSaveError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewOrderStore(NewClient(srv.URL, nil))
	status := domain.StatusCancelled

	_, err := store.UpdateOrder(context.Background(), "1", ports.OrderPatch{Status: &status})
	require.Error(t, err)

	var se *apperr.SaveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.True(t, apperr.Retryable(err))
}

func TestOrderStore_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	store := NewOrderStore(NewClient(srv.URL, nil))

	_, err := store.ListOrders(context.Background())
	require.Error(t, err)

	var te *apperr.TransportError
	assert.ErrorAs(t, err, &te)
}

func TestCatalogStore_SnapshotAndCache(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/products", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.CatalogProduct{
			{ProductID: "p1", SKU: "SKU1", Name: "Monitor", Brand: "ViewMax", Price: 12, InStock: 15},
		})
	}))
	defer srv.Close()

	store := NewCatalogStore(NewClient(srv.URL, nil), cache.NewMemoryCache("test"), time.Minute)

	first, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, first.Len())

	second, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Products(), second.Products())

	assert.Equal(t, int32(1), hits.Load(), "second snapshot should come from cache")
}

func TestCatalogStore_NoCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.CatalogProduct{{ProductID: "p1", SKU: "SKU1"}})
	}))
	defer srv.Close()

	store := NewCatalogStore(NewClient(srv.URL, nil), nil, 0)

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Len())
}

func TestProductStore_CRUD(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /products", func(w http.ResponseWriter, r *http.Request) {
		var p domain.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	})
	mux.HandleFunc("GET /products/{sku}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Product{SKU: r.PathValue("sku"), Name: "Monitor"})
	})
	mux.HandleFunc("DELETE /products/{sku}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewProductStore(NewClient(srv.URL, nil))

	created, err := store.CreateProduct(context.Background(), &domain.Product{SKU: "SKU1", Name: "Monitor", Price: 12})
	require.NoError(t, err)
	assert.Equal(t, "SKU1", created.SKU)

	got, err := store.GetProduct(context.Background(), "SKU1")
	require.NoError(t, err)
	assert.Equal(t, "Monitor", got.Name)

	require.NoError(t, store.DeleteProduct(context.Background(), "SKU1"))
}

func TestBackend404IsNotFoundNotTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	_, err := NewProductStore(client).GetProduct(context.Background(), "ghost")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))
	assert.Equal(t, "not_found", apperr.Kind(err))

	// writes against a missing row report the same thing
	err = NewSupplierStore(client).DeleteSupplier(context.Background(), "ghost")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))
}

func TestSupplierStore_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/suppliers", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.Supplier{
			{ID: "sup-1", Name: "TechImports", Email: "a@b.c", Role: "supplier"},
		})
	}))
	defer srv.Close()

	store := NewSupplierStore(NewClient(srv.URL, nil))

	suppliers, err := store.ListSuppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "TechImports", suppliers[0].Name)
}
