package mockstore

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := openTestStore(t)
	require.NoError(t, Seed(context.Background(), store))

	srv := httptest.NewServer(NewRouter(store))
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_ListOrders(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/purchase-orders")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var orders []domain.Order
	require.NoError(t, json.NewDecoder(res.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "1", orders[0].ID)
}

func TestServer_PatchOrder(t *testing.T) {
	srv := newTestServer(t)

	body := []byte(`{"status":"Cancelled"}`)
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/purchase-orders/1", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var order domain.Order
	require.NoError(t, json.NewDecoder(res.Body).Decode(&order))
	assert.Equal(t, domain.StatusCancelled, order.Status)
}

func TestServer_PatchUnknownOrderIs404(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/purchase-orders/ghost", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServer_ProductLifecycle(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{"sku":"NEW-01","productId":"p-new","name":"Headset","price":99.9,"inStock":5}`)
	res, err := http.Post(srv.URL+"/products", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, err = http.Get(srv.URL + "/products/NEW-01")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var p domain.Product
	require.NoError(t, json.NewDecoder(res.Body).Decode(&p))
	assert.Equal(t, "Headset", p.Name)
}
