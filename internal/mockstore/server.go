package mockstore

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
)

// NewRouter exposes the store over the same REST surface as the original
// mock backend. No auth: this server exists for local development and tests.
func NewRouter(store *Store) http.Handler {
	h := &handler{store: store}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/purchase-orders", h.listOrders)
	r.Post("/purchase-orders", h.createOrder)
	r.Patch("/purchase-orders/{id}", h.patchOrder)

	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{sku}", h.getProduct)
	r.Put("/products/{sku}", h.updateProduct)
	r.Delete("/products/{sku}", h.deleteProduct)

	r.Get("/suppliers", h.listSuppliers)
	r.Post("/suppliers", h.createSupplier)
	r.Get("/suppliers/{id}", h.getSupplier)
	r.Put("/suppliers/{id}", h.updateSupplier)
	r.Delete("/suppliers/{id}", h.deleteSupplier)

	return r
}

type handler struct {
	store *Store
}

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListOrders(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var o domain.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondBadRequest(w, err)
		return
	}
	echo, err := h.store.CreateOrder(r.Context(), &o)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, echo)
}

func (h *handler) patchOrder(w http.ResponseWriter, r *http.Request) {
	var patch OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondBadRequest(w, err)
		return
	}
	echo, err := h.store.PatchOrder(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, echo)
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProduct(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondBadRequest(w, err)
		return
	}
	echo, err := h.store.CreateProduct(r.Context(), &p)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, echo)
}

func (h *handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondBadRequest(w, err)
		return
	}
	echo, err := h.store.UpdateProduct(r.Context(), chi.URLParam(r, "sku"), &p)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, echo)
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProduct(r.Context(), chi.URLParam(r, "sku")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.store.ListSuppliers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}
	respond(w, http.StatusOK, suppliers)
}

func (h *handler) getSupplier(w http.ResponseWriter, r *http.Request) {
	sup, err := h.store.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, sup)
}

func (h *handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var sup domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondBadRequest(w, err)
		return
	}
	echo, err := h.store.CreateSupplier(r.Context(), &sup)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, echo)
}

func (h *handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	var sup domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondBadRequest(w, err)
		return
	}
	echo, err := h.store.UpdateSupplier(r.Context(), chi.URLParam(r, "id"), &sup)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, echo)
}

func (h *handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondBadRequest(w http.ResponseWriter, err error) {
	respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
