package mockstore

import (
	"context"
	"fmt"
	"time"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"
)

// Seed loads a small fixture set when the database is empty, mirroring the
// db.json the UI shipped with: a few products, suppliers with login roles,
// and one Pending order to edit. Idempotent: non-empty tables are left alone.
func Seed(ctx context.Context, store *Store) error {
	suppliers, err := store.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	if len(suppliers) > 0 {
		return nil
	}

	for _, sup := range seedSuppliers {
		sup := sup
		if _, err := store.CreateSupplier(ctx, &sup); err != nil {
			return fmt.Errorf("seed supplier %s: %w", sup.ID, err)
		}
	}
	for _, p := range seedProducts {
		p := p
		if _, err := store.CreateProduct(ctx, &p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
	}

	today := time.Now().UTC().Format("2006-01-02")
	order := domain.Order{
		ID:           "1",
		SupplierID:   "sup-tech",
		SupplierName: "TechImports",
		DeliveryDate: time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02"),
		CreatedAt:    today,
		Status:       domain.StatusPending,
		Products: []domain.LineItem{
			{ProductID: "prod-mon24", ProductSKU: "MON-24-GAM", Quantity: 2, UnitPrice: 1200.50, Subtotal: 2401.00},
		},
		Total: 2401.00,
	}
	if _, err := store.CreateOrder(ctx, &order); err != nil {
		return fmt.Errorf("seed order %s: %w", order.ID, err)
	}
	return nil
}

var seedSuppliers = []domain.Supplier{
	{ID: "sup-admin", Name: "Admin", Email: "admin@saturn.local", Role: "admin", Password: "admin"},
	{ID: "sup-tech", Name: "TechImports", Email: "sales@techimports.example", Role: "supplier", Password: "tech"},
	{ID: "sup-gear", Name: "GamerGear", Email: "orders@gamergear.example", Role: "supplier", Password: "gear"},
	{ID: "sup-picker", Name: "Warehouse Picker", Email: "picker@saturn.local", Role: "picker", Password: "pick"},
}

var seedProducts = []domain.Product{
	{
		ProductID: "prod-mon24", SKU: "MON-24-GAM", Name: `Monitor Gamer 24"`,
		Category: "Monitors", Brand: "ViewMax", Supplier: "TechImports",
		Price: 1200.50, InStock: 15, Location: "A-01",
	},
	{
		ProductID: "prod-kbd", SKU: "TEC-MEC-01", Name: "Mechanical Keyboard RGB",
		Category: "Peripherals", Brand: "KeyForge", Supplier: "GamerGear",
		Price: 350.00, InStock: 30, Location: "B-04",
	},
	{
		ProductID: "prod-mouse", SKU: "MOU-PRO-77", Name: "Pro Wireless Mouse",
		Category: "Peripherals", Brand: "KeyForge", Supplier: "GamerGear",
		Price: 180.00, InStock: 0, Location: "B-05",
	},
}
