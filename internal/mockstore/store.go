// Package mockstore is a runnable stand-in for the JSON file server the UI
// was developed against: same REST surface (/purchase-orders, /products,
// /suppliers), backed by SQLite so data survives restarts.
package mockstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saturnhq/purchase-orders/internal/engine/domain"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// so the store builds anywhere the gateway does.
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("mockstore: not found")

// schema is the DDL executed once on Open.
// Dates are RFC3339/ISO TEXT, the SQLite idiom. The purchase_orders.products
// column holds the line-item array as JSON: the store never interprets line
// items, it only echoes what the engine persists.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    sku             TEXT PRIMARY KEY,
    product_id      TEXT NOT NULL,
    name            TEXT NOT NULL,
    category        TEXT NOT NULL DEFAULT '',
    brand           TEXT NOT NULL DEFAULT '',
    description     TEXT NOT NULL DEFAULT '',
    supplier        TEXT NOT NULL DEFAULT '',
    location        TEXT NOT NULL DEFAULT '',
    expiration_date TEXT NOT NULL DEFAULT '',
    price           REAL NOT NULL,
    in_stock        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS suppliers (
    id       TEXT PRIMARY KEY,
    name     TEXT NOT NULL,
    email    TEXT NOT NULL,
    role     TEXT NOT NULL DEFAULT 'supplier',
    password TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS purchase_orders (
    id            TEXT PRIMARY KEY,
    supplier_id   TEXT NOT NULL,
    supplier_name TEXT NOT NULL,
    delivery_date TEXT NOT NULL,
    created_at    TEXT NOT NULL,
    status        TEXT NOT NULL,
    total         REAL NOT NULL,

    -- JSON array of persisted line items.
    products      TEXT NOT NULL DEFAULT '[]'
);
`

// Store wraps the SQLite handle and exposes the CRUD surface the REST
// handlers need.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. WAL mode keeps concurrent readers from blocking the writer.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("mockstore: open %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("mockstore: enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("mockstore: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// --- products ---

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sku, product_id, name, category, brand, description,
		       supplier, location, expiration_date, price, in_stock
		FROM products ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("mockstore: list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, sku string) (*domain.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT sku, product_id, name, category, brand, description,
		       supplier, location, expiration_date, price, in_stock
		FROM products WHERE sku = ?`, sku)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (sku, product_id, name, category, brand, description,
		                      supplier, location, expiration_date, price, in_stock)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.SKU, p.ProductID, p.Name, p.Category, p.Brand, p.Description,
		p.Supplier, p.Location, p.ExpirationDate, p.Price, p.InStock)
	if err != nil {
		return nil, fmt.Errorf("mockstore: create product %s: %w", p.SKU, err)
	}
	return s.GetProduct(ctx, p.SKU)
}

func (s *Store) UpdateProduct(ctx context.Context, sku string, p *domain.Product) (*domain.Product, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products SET product_id = ?, name = ?, category = ?, brand = ?,
		       description = ?, supplier = ?, location = ?, expiration_date = ?,
		       price = ?, in_stock = ?
		WHERE sku = ?`,
		p.ProductID, p.Name, p.Category, p.Brand, p.Description,
		p.Supplier, p.Location, p.ExpirationDate, p.Price, p.InStock, sku)
	if err != nil {
		return nil, fmt.Errorf("mockstore: update product %s: %w", sku, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetProduct(ctx, sku)
}

func (s *Store) DeleteProduct(ctx context.Context, sku string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE sku = ?`, sku)
	if err != nil {
		return fmt.Errorf("mockstore: delete product %s: %w", sku, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- suppliers ---

func (s *Store) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, role, password FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("mockstore: list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var sup domain.Supplier
		if err := rows.Scan(&sup.ID, &sup.Name, &sup.Email, &sup.Role, &sup.Password); err != nil {
			return nil, fmt.Errorf("mockstore: scan supplier: %w", err)
		}
		suppliers = append(suppliers, sup)
	}
	return suppliers, rows.Err()
}

func (s *Store) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	var sup domain.Supplier
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, role, password FROM suppliers WHERE id = ?`, id).
		Scan(&sup.ID, &sup.Name, &sup.Email, &sup.Role, &sup.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mockstore: get supplier %s: %w", id, err)
	}
	return &sup, nil
}

func (s *Store) CreateSupplier(ctx context.Context, sup *domain.Supplier) (*domain.Supplier, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO suppliers (id, name, email, role, password) VALUES (?, ?, ?, ?, ?)`,
		sup.ID, sup.Name, sup.Email, sup.Role, sup.Password)
	if err != nil {
		return nil, fmt.Errorf("mockstore: create supplier %s: %w", sup.ID, err)
	}
	return s.GetSupplier(ctx, sup.ID)
}

func (s *Store) UpdateSupplier(ctx context.Context, id string, sup *domain.Supplier) (*domain.Supplier, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE suppliers SET name = ?, email = ?, role = ?, password = ? WHERE id = ?`,
		sup.Name, sup.Email, sup.Role, sup.Password, id)
	if err != nil {
		return nil, fmt.Errorf("mockstore: update supplier %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetSupplier(ctx, id)
}

func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mockstore: delete supplier %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- purchase orders ---

// OrderPatch is the partial update accepted by PatchOrder. Nil fields stay
// untouched; Products arrives as raw JSON and is stored verbatim.
type OrderPatch struct {
	Status   *string          `json:"status"`
	Total    *float64         `json:"total"`
	Products *json.RawMessage `json:"products"`
}

func (s *Store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, supplier_id, supplier_name, delivery_date, created_at,
		       status, total, products
		FROM purchase_orders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("mockstore: list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, supplier_id, supplier_name, delivery_date, created_at,
		       status, total, products
		FROM purchase_orders WHERE id = ?`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	products, err := json.Marshal(o.Products)
	if err != nil {
		return nil, fmt.Errorf("mockstore: encode line items: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO purchase_orders (id, supplier_id, supplier_name, delivery_date,
		                             created_at, status, total, products)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.SupplierID, o.SupplierName, o.DeliveryDate,
		o.CreatedAt, string(o.Status), o.Total, string(products))
	if err != nil {
		return nil, fmt.Errorf("mockstore: create order %s: %w", o.ID, err)
	}
	return s.GetOrder(ctx, o.ID)
}

// PatchOrder applies a partial update and returns the full updated order,
// mirroring the PATCH semantics of the original backend.
func (s *Store) PatchOrder(ctx context.Context, id string, patch OrderPatch) (*domain.Order, error) {
	current, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	status := string(current.Status)
	if patch.Status != nil {
		status = *patch.Status
	}
	total := current.Total
	if patch.Total != nil {
		total = *patch.Total
	}
	products, err := json.Marshal(current.Products)
	if err != nil {
		return nil, fmt.Errorf("mockstore: encode line items: %w", err)
	}
	if patch.Products != nil {
		products = *patch.Products
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE purchase_orders SET status = ?, total = ?, products = ? WHERE id = ?`,
		status, total, string(products), id)
	if err != nil {
		return nil, fmt.Errorf("mockstore: patch order %s: %w", id, err)
	}
	return s.GetOrder(ctx, id)
}

// --- scan helpers ---

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.SKU, &p.ProductID, &p.Name, &p.Category, &p.Brand,
		&p.Description, &p.Supplier, &p.Location, &p.ExpirationDate,
		&p.Price, &p.InStock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("mockstore: scan product: %w", err)
	}
	p.ID = p.SKU
	return p, nil
}

func scanOrder(row scanner) (domain.Order, error) {
	var (
		o        domain.Order
		status   string
		products string
	)
	err := row.Scan(&o.ID, &o.SupplierID, &o.SupplierName, &o.DeliveryDate,
		&o.CreatedAt, &status, &o.Total, &products)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("mockstore: scan order: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	if err := json.Unmarshal([]byte(products), &o.Products); err != nil {
		return domain.Order{}, fmt.Errorf("mockstore: decode line items for order %s: %w", o.ID, err)
	}
	if o.Products == nil {
		o.Products = []domain.LineItem{}
	}
	return o, nil
}
