package services

import (
	"time"

	"tillpoint/internal/repos"

	"github.com/google/uuid"
)

// CartLine is one entry of a checkout request: a product, how many units,
// and the unit price the till charged.
type CartLine struct {
	ProductID int64
	Qty       int64
	UnitPrice int64
}

type CheckoutService struct {
	Sales *repos.SaleRepo
}

func NewCheckoutService(sales *repos.SaleRepo) *CheckoutService {
	return &CheckoutService{Sales: sales}
}

// Checkout records every cart line under one checkout id and one timestamp.
// Totals use the client-supplied unit price; the catalog price is not
// re-read. An empty cart is a no-op success.
func (s *CheckoutService) Checkout(lines []CartLine, paymentMode string) error {
	if paymentMode == "" {
		paymentMode = "cash"
	}
	if len(lines) == 0 {
		return nil
	}

	stamp := time.Now().UTC().Format(time.RFC3339)
	batch := make([]repos.SaleLine, 0, len(lines))
	for _, ln := range lines {
		batch = append(batch, repos.SaleLine{
			ProductID: ln.ProductID,
			Qty:       ln.Qty,
			UnitPrice: ln.UnitPrice,
		})
	}
	return s.Sales.RecordCheckout(batch, uuid.NewString(), stamp, paymentMode)
}
