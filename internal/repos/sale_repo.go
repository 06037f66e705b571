package repos

import (
	"errors"
	"fmt"

	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ErrUnknownProduct marks a checkout line whose product id matched no row.
var ErrUnknownProduct = errors.New("unknown product")

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// SaleLine is one cart line to record during checkout.
type SaleLine struct {
	ProductID int64
	Qty       int64
	UnitPrice int64
}

// RecordCheckout applies every line inside a single transaction: decrement
// the product's stock, then append the sale row. Stock has no floor and may
// go negative, but a line whose product id matches nothing aborts the whole
// batch so concurrent readers never see a partial checkout.
func (r *SaleRepo) RecordCheckout(lines []SaleLine, checkoutID, stamp, paymentMode string) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, ln := range lines {
		res, err := tx.Exec(`UPDATE products SET quantity = quantity - ? WHERE id = ?`,
			ln.Qty, ln.ProductID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: id %d", ErrUnknownProduct, ln.ProductID)
		}

		if _, err := tx.Exec(`
		  INSERT INTO sales(product_id, quantity_sold, total_price, date_time, payment_mode, checkout_id)
		  VALUES(?, ?, ?, ?, ?, ?)
		`, ln.ProductID, ln.Qty, ln.UnitPrice*ln.Qty, stamp, paymentMode, checkoutID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SaleRepo) ListAll() ([]domain.Sale, error) {
	out := []domain.Sale{}
	err := r.db.Select(&out, `
	  SELECT id, product_id, quantity_sold, total_price, date_time, payment_mode, checkout_id
	  FROM sales
	  ORDER BY id
	`)
	return out, err
}

// Get returns one sale; sql.ErrNoRows when the id is unknown.
func (r *SaleRepo) Get(id int64) (domain.Sale, error) {
	var s domain.Sale
	err := r.db.Get(&s, `
	  SELECT id, product_id, quantity_sold, total_price, date_time, payment_mode, checkout_id
	  FROM sales
	  WHERE id = ?
	`, id)
	return s, err
}

type Summary struct {
	TotalTransactions int64 `db:"total_transactions" json:"total_transactions"`
	TotalRevenue      int64 `db:"total_revenue" json:"total_revenue"`
}

// Summary counts sale rows and sums revenue; both are zero on an empty table.
func (r *SaleRepo) Summary() (Summary, error) {
	var s Summary
	err := r.db.Get(&s, `
	  SELECT COUNT(*) AS total_transactions,
	         COALESCE(SUM(total_price), 0) AS total_revenue
	  FROM sales
	`)
	return s, err
}
