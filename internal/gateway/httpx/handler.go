package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/saturnhq/purchase-orders/internal/apperr"
	"github.com/saturnhq/purchase-orders/internal/auth"
	"github.com/saturnhq/purchase-orders/internal/engine"
	"github.com/saturnhq/purchase-orders/internal/engine/domain"
	"github.com/saturnhq/purchase-orders/internal/engine/ports"
	"github.com/saturnhq/purchase-orders/internal/gateway/httpx/middlewares"
)

const dateLayout = "2006-01-02"

// Handler is the JSON edge in front of the reconciliation engine and the
// directory/inventory CRUD flows.
type Handler struct {
	loader    *engine.Loader
	orders    ports.OrderStore
	products  ports.ProductStore
	suppliers ports.SupplierDirectory
	auth      *auth.Service

	locks orderLocks

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func NewHandler(
	loader *engine.Loader,
	orders ports.OrderStore,
	products ports.ProductStore,
	suppliers ports.SupplierDirectory,
	authService *auth.Service,
) *Handler {
	return &Handler{
		loader:    loader,
		orders:    orders,
		products:  products,
		suppliers: suppliers,
		auth:      authService,
		now:       time.Now,
	}
}

// orderLocks serializes writes per order id. It is the service-side analogue
// of the UI disabling its save/cancel controls while a request is in flight:
// the engine's controller is deliberately lock-free, so the caller owns
// mutual exclusion. Entries are refcounted and dropped when the last holder
// releases, so the map never accumulates historical order ids.
type orderLocks struct {
	mu sync.Mutex
	m  map[string]*orderLock
}

type orderLock struct {
	sync.Mutex
	refs int
}

func (l *orderLocks) lock(id string) func() {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*orderLock)
	}
	e, ok := l.m[id]
	if !ok {
		e = &orderLock{}
		l.m[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.Lock()
	return func() {
		e.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "user logged in", "email", user.Email, "role", user.Role)
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: mapUser(user)})
}

// Logout invalidates the caller's token.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middlewares.BearerToken(r)
	if err := h.auth.Logout(r.Context(), token); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOrders lists purchase orders, optionally filtered by ?status=. Callers
// with the supplier role only ever see their own orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	user, _ := middlewares.UserFromContext(r.Context())
	status := r.URL.Query().Get("status")

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		if user.Role == auth.RoleSupplier && o.SupplierID != user.SupplierID {
			continue
		}
		if status != "" && !strings.EqualFold(string(o.Status), status) {
			continue
		}
		out = append(out, mapOrderToResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateOrder starts a new Pending order with no line items. Line items are
// added afterwards through the editing session.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if req.SupplierID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "supplier_id is required")
		return
	}
	if req.DeliveryDate == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "delivery_date is required")
		return
	}
	deliveryDate, err := time.Parse(dateLayout, req.DeliveryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "delivery_date must be YYYY-MM-DD")
		return
	}
	today := h.now().UTC().Truncate(24 * time.Hour)
	if deliveryDate.Before(today) {
		writeError(w, http.StatusBadRequest, "invalid_request", "delivery_date cannot be in the past")
		return
	}

	supplier, err := h.suppliers.GetSupplier(r.Context(), req.SupplierID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown supplier")
		return
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		DeliveryDate: req.DeliveryDate,
		CreatedAt:    h.now().UTC().Format(dateLayout),
		Status:       domain.StatusPending,
		Total:        0,
		Products:     []domain.LineItem{},
	}

	echo, err := h.orders.CreateOrder(r.Context(), order)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "purchase order created", "order_id", echo.ID, "supplier_id", echo.SupplierID)
	writeJSON(w, http.StatusCreated, mapOrderToResponse(*echo))
}

// GetOrder loads one order enriched against the current catalog snapshot.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(sess.Order()))
}

// AvailableProducts lists the catalog rows that can still be added to the
// order: not already on it and, unless ?include_out_of_stock=true, in stock.
func (h *Handler) AvailableProducts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	includeOOS := r.URL.Query().Get("include_out_of_stock") == "true"
	writeJSON(w, http.StatusOK, mapAvailableProducts(sess.AvailableProducts(includeOOS)))
}

// EditLineItems applies a batch of set/add/remove operations through one
// editing session and saves the result. Writes to the same order are
// serialized; editing a non-Pending order is rejected with 409.
func (h *Handler) EditLineItems(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req EditLineItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if len(req.Operations) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "operations are required")
		return
	}

	unlock := h.locks.lock(orderID)
	defer unlock()

	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	for _, op := range req.Operations {
		var err error
		switch op.Op {
		case "set":
			field := engine.Field(op.Field)
			if field != engine.FieldQuantity && field != engine.FieldUnitPrice {
				writeError(w, http.StatusBadRequest, "invalid_request", "field must be quantity or unitPrice")
				return
			}
			err = sess.SetField(op.SKU, field, op.Value)
		case "add":
			err = sess.AddItem(op.ProductID)
		case "remove":
			err = sess.RemoveItem(op.SKU)
		default:
			writeError(w, http.StatusBadRequest, "invalid_request", "op must be set, add, or remove")
			return
		}
		if err != nil {
			writeAppError(w, r, err)
			return
		}
	}

	if err := sess.Save(r.Context()); err != nil {
		writeAppError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "purchase order saved", "order_id", orderID, "total", sess.Total())
	writeJSON(w, http.StatusOK, mapOrderToResponse(sess.Order()))
}

// CancelOrder moves a Pending order to Cancelled.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	unlock := h.locks.lock(orderID)
	defer unlock()

	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	if err := sess.Cancel(r.Context()); err != nil {
		writeAppError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "purchase order cancelled", "order_id", orderID)
	writeJSON(w, http.StatusOK, mapOrderToResponse(sess.Order()))
}

func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (*engine.Session, bool) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return nil, false
	}

	sess, err := h.loader.Load(r.Context(), orderID)
	if err != nil {
		writeAppError(w, r, err)
		return nil, false
	}

	// Supplier-role callers only ever see their own orders, same scoping as
	// the list endpoint. Foreign orders read as nonexistent.
	if user, ok := middlewares.UserFromContext(r.Context()); ok &&
		user.Role == auth.RoleSupplier && sess.Order().SupplierID != user.SupplierID {
		writeAppError(w, r, apperr.ErrOrderNotFound)
		return nil, false
	}
	return sess, true
}

func mapUser(u auth.User) UserResponse {
	return UserResponse{
		SupplierID: u.SupplierID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

// writeAppError maps engine/adapter errors onto the taxonomy's HTTP codes.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "error", err)
	}
	writeError(w, status, apperr.Kind(err), err.Error())
}
