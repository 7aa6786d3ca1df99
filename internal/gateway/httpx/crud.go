package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
)

// Inventory and supplier CRUD passthroughs. The gateway validates the bare
// minimum and defers the rest to the backing store; these flows exist so the
// catalog the engine enriches from can be managed through the same surface.

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.GetProduct(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if p.SKU == "" || p.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "sku and name are required")
		return
	}
	if p.Price < 0 || p.InStock < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "price and inStock must not be negative")
		return
	}
	if p.ProductID == "" {
		p.ProductID = p.SKU
	}

	echo, err := h.products.CreateProduct(r.Context(), &p)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, echo)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	echo, err := h.products.UpdateProduct(r.Context(), chi.URLParam(r, "sku"), &p)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, echo)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.DeleteProduct(r.Context(), chi.URLParam(r, "sku")); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.ListSuppliers(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	for i := range suppliers {
		suppliers[i].Password = ""
	}
	writeJSON(w, http.StatusOK, suppliers)
}

func (h *Handler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	sup, err := h.suppliers.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	sup.Password = ""
	writeJSON(w, http.StatusOK, sup)
}

func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var sup domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if sup.Name == "" || sup.Email == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name and email are required")
		return
	}
	if sup.ID == "" {
		sup.ID = uuid.NewString()
	}

	echo, err := h.suppliers.CreateSupplier(r.Context(), &sup)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	echo.Password = ""
	writeJSON(w, http.StatusCreated, echo)
}

func (h *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	var sup domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	echo, err := h.suppliers.UpdateSupplier(r.Context(), chi.URLParam(r, "id"), &sup)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	echo.Password = ""
	writeJSON(w, http.StatusOK, echo)
}

func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.suppliers.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
