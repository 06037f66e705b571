package repos

import (
	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

// LowStockThreshold is the fixed restock alert level.
const LowStockThreshold = 5

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns all products; a non-empty search narrows by name substring
// (SQLite LIKE semantics).
func (r *ProductRepo) List(search string) ([]domain.Product, error) {
	out := []domain.Product{}
	if search != "" {
		err := r.db.Select(&out, `
		  SELECT id, name, price, quantity FROM products
		  WHERE name LIKE ?
		  ORDER BY id
		`, "%"+search+"%")
		return out, err
	}
	err := r.db.Select(&out, `SELECT id, name, price, quantity FROM products ORDER BY id`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT id, name, price, quantity FROM products WHERE id = ?`, id)
	return p, err
}

// Create inserts a product and returns the generated id.
func (r *ProductRepo) Create(name string, price, quantity int64) (int64, error) {
	res, err := r.db.Exec(`INSERT INTO products(name, price, quantity) VALUES(?, ?, ?)`,
		name, price, quantity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update fully replaces name/price/quantity and reports affected rows.
// A missing id is not an error; it simply affects zero rows.
func (r *ProductRepo) Update(id int64, name string, price, quantity int64) (int64, error) {
	res, err := r.db.Exec(`UPDATE products SET name = ?, price = ?, quantity = ? WHERE id = ?`,
		name, price, quantity, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// LowStock returns products at or below the restock threshold.
func (r *ProductRepo) LowStock() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, price, quantity FROM products
	  WHERE quantity <= ?
	  ORDER BY quantity, id
	`, LowStockThreshold)
	return out, err
}
