package domain

// Product is the full catalog record managed by the inventory CRUD flows.
// The engine itself only consumes the CatalogProduct projection of it.
type Product struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"productId"`
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Brand          string  `json:"brand"`
	Description    string  `json:"description,omitempty"`
	Supplier       string  `json:"supplier,omitempty"`
	Location       string  `json:"location,omitempty"`
	ExpirationDate string  `json:"expirationDate,omitempty"`
	Price          float64 `json:"price"`
	InStock        int     `json:"inStock"`
}

// Supplier is one row of the supplier directory. Directory rows double as
// login users: Role decides what the session may do and Password is only
// ever checked, never returned by the gateway.
type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}
