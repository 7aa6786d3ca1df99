package domain

// OrderStatus is the lifecycle state of a purchase order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusApproved  OrderStatus = "Approved"
	StatusTransit   OrderStatus = "Transit"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// Editable reports whether line items may still be changed. Only Pending
// orders are editable; every other state is read-only for this engine.
// The engine itself only ever originates the Pending -> Cancelled edge;
// Approved/Transit/Delivered are driven by external processes.
func (s OrderStatus) Editable() bool { return s == StatusPending }

// Terminal reports whether no further transition can happen.
func (s OrderStatus) Terminal() bool { return s == StatusCancelled || s == StatusDelivered }

// Order is one purchase order placed with a supplier.
//
// Total is derived: it must always equal the sum of the line-item subtotals
// currently held in memory. It is never edited independently.
type Order struct {
	ID           string      `json:"id"`
	SupplierID   string      `json:"supplierId"`
	SupplierName string      `json:"supplierName"`
	DeliveryDate string      `json:"deliveryDate"`
	CreatedAt    string      `json:"createdAt"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	Products     []LineItem  `json:"products"`
}

// LineItem is one product entry on an order. Items are keyed by ProductSKU
// within an order; an order never carries two items for the same SKU.
type LineItem struct {
	ProductID  string  `json:"productId"`
	ProductSKU string  `json:"productSku"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"`

	// Enrichment fields are joined from the catalog snapshot on every load.
	// They are display-only and must never round-trip into the persisted
	// products array, hence the "-" tags.
	ProductName    string  `json:"-"`
	Brand          string  `json:"-"`
	InventoryPrice float64 `json:"-"`
}

// Recompute refreshes the derived subtotal from the current quantity and
// unit price. Callers invoke it immediately after mutating either field;
// the subtotal is never computed lazily at save time.
func (li *LineItem) Recompute() {
	li.Subtotal = float64(li.Quantity) * li.UnitPrice
}
