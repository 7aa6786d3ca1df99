package httpx

import (
	"github.com/saturnhq/purchase-orders/internal/engine/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	SupplierID string `json:"supplier_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type CreateOrderRequest struct {
	SupplierID   string `json:"supplier_id"`
	DeliveryDate string `json:"delivery_date"`
}

// EditLineItemsRequest is a batch of mutations applied through one editing
// session and persisted with a single save.
type EditLineItemsRequest struct {
	Operations []LineItemOp `json:"operations"`
}

// LineItemOp is one mutation. Op is "set", "add", or "remove". For "set",
// Field is "quantity" or "unitPrice" and Value carries the raw input exactly
// as typed; the engine clamps it.
type LineItemOp struct {
	Op        string `json:"op"`
	SKU       string `json:"sku,omitempty"`
	Field     string `json:"field,omitempty"`
	Value     string `json:"value,omitempty"`
	ProductID string `json:"product_id,omitempty"`
}

type OrderResponse struct {
	ID           string             `json:"id"`
	SupplierID   string             `json:"supplier_id"`
	SupplierName string             `json:"supplier_name"`
	DeliveryDate string             `json:"delivery_date"`
	CreatedAt    string             `json:"created_at"`
	Status       string             `json:"status"`
	Total        float64            `json:"total"`
	Editable     bool               `json:"editable"`
	Products     []LineItemResponse `json:"products"`
}

// LineItemResponse carries the persisted item fields plus the display-only
// enrichment joined from the catalog at load time.
type LineItemResponse struct {
	ProductID      string  `json:"product_id"`
	ProductSKU     string  `json:"product_sku"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Subtotal       float64 `json:"subtotal"`
	ProductName    string  `json:"product_name"`
	Brand          string  `json:"brand"`
	InventoryPrice float64 `json:"inventory_price"`
}

type AvailableProductResponse struct {
	ProductID string  `json:"product_id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	InStock   int     `json:"in_stock"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func mapOrderToResponse(order domain.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		SupplierID:   order.SupplierID,
		SupplierName: order.SupplierName,
		DeliveryDate: order.DeliveryDate,
		CreatedAt:    order.CreatedAt,
		Status:       string(order.Status),
		Total:        order.Total,
		Editable:     order.Status.Editable(),
		Products:     mapItems(order.Products),
	}
}

func mapItems(items []domain.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, li := range items {
		out[i] = LineItemResponse{
			ProductID:      li.ProductID,
			ProductSKU:     li.ProductSKU,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			Subtotal:       li.Subtotal,
			ProductName:    li.ProductName,
			Brand:          li.Brand,
			InventoryPrice: li.InventoryPrice,
		}
	}
	return out
}

func mapAvailableProducts(products []domain.CatalogProduct) []AvailableProductResponse {
	out := make([]AvailableProductResponse, len(products))
	for i, p := range products {
		out[i] = AvailableProductResponse{
			ProductID: p.ProductID,
			SKU:       p.SKU,
			Name:      p.Name,
			Brand:     p.Brand,
			Price:     p.Price,
			InStock:   p.InStock,
		}
	}
	return out
}
