package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/saturnhq/purchase-orders/internal/gateway/httpx/middlewares"
)

func NewRouter(handler *Handler, authmw *middlewares.Auth) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(tracing)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/login", handler.Login)

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireUser)

		r.Post("/logout", handler.Logout)

		r.Get("/purchase-orders", handler.ListOrders)
		r.Get("/purchase-orders/{id}", handler.GetOrder)
		r.Get("/purchase-orders/{id}/available-products", handler.AvailableProducts)

		r.Get("/products", handler.ListProducts)
		r.Get("/products/{sku}", handler.GetProduct)
		r.Get("/suppliers", handler.ListSuppliers)
		r.Get("/suppliers/{id}", handler.GetSupplier)

		// Mutations: suppliers and pickers are read-only.
		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireWriter)

			r.Post("/purchase-orders", handler.CreateOrder)
			r.Patch("/purchase-orders/{id}/items", handler.EditLineItems)
			r.Post("/purchase-orders/{id}/cancel", handler.CancelOrder)

			r.Post("/products", handler.CreateProduct)
			r.Put("/products/{sku}", handler.UpdateProduct)
			r.Delete("/products/{sku}", handler.DeleteProduct)

			r.Post("/suppliers", handler.CreateSupplier)
			r.Put("/suppliers/{id}", handler.UpdateSupplier)
			r.Delete("/suppliers/{id}", handler.DeleteSupplier)
		})
	})

	return r
}

// tracing opens a server span per request so handler logs carry
// trace_id/span_id and the OTLP pipeline has something to export.
func tracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "gateway",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}
