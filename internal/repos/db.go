package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: keeps :memory: databases coherent and serializes writers.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Ensure the default admin login exists (idempotent; safe to run every start)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(name);
CREATE INDEX IF NOT EXISTS idx_products_quantity ON products(quantity);

-- Sales (append-only; one row per cart line)
CREATE TABLE IF NOT EXISTS sales(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  quantity_sold INTEGER NOT NULL,
  total_price INTEGER NOT NULL,
  date_time TEXT NOT NULL,
  payment_mode TEXT NOT NULL DEFAULT 'cash',
  checkout_id TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_sales_product  ON sales(product_id);
CREATE INDEX IF NOT EXISTS idx_sales_checkout ON sales(checkout_id);

-- Users
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL,
  password TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// seedAdmin creates the default admin/1234 login if no admin row exists.
func seedAdmin(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE username = ?`, "admin"); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] default admin user created (admin/1234)")
	_, err := db.Exec(`INSERT INTO users(username, password) VALUES(?, ?)`, "admin", "1234")
	return err
}
