package domain

// CatalogProduct is one row of the read-only catalog snapshot used to enrich
// and validate order line items.
type CatalogProduct struct {
	ProductID string  `json:"productId"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	InStock   int     `json:"inStock"`
}

// Snapshot is the catalog lookup table borrowed for the lifetime of one
// editing session. It is immutable after construction: catalog changes made
// while a session is open are deliberately not observed.
type Snapshot struct {
	products []CatalogProduct
	byID     map[string]CatalogProduct
}

func NewSnapshot(products []CatalogProduct) *Snapshot {
	s := &Snapshot{
		products: append([]CatalogProduct(nil), products...),
		byID:     make(map[string]CatalogProduct, len(products)),
	}
	for _, p := range s.products {
		s.byID[p.ProductID] = p
	}
	return s
}

// ByProductID looks up a catalog row by its stable product identifier.
func (s *Snapshot) ByProductID(id string) (CatalogProduct, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Products returns the snapshot rows in their original order. The returned
// slice is shared; callers must treat it as read-only.
func (s *Snapshot) Products() []CatalogProduct { return s.products }

func (s *Snapshot) Len() int { return len(s.products) }
