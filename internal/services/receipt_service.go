package services

import (
	"bytes"
	"fmt"
	"time"

	"tillpoint/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

type ReceiptService struct{}

// Render produces the one-page PDF receipt for a sale.
func (ReceiptService) Render(sale domain.Sale) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Sales Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}
	row("Sale ID", fmt.Sprintf("%d", sale.ID))
	row("Product ID", fmt.Sprintf("%d", sale.ProductID))
	row("Quantity Sold", fmt.Sprintf("%d", sale.QuantitySold))
	row("Total Price", fmt.Sprintf("$%d", sale.TotalPrice))
	row("Date", humanDate(sale.DateTime))
	row("Payment Mode", sale.PaymentMode)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// humanDate re-formats the stored RFC3339 stamp; an unparseable value is
// shown as stored.
func humanDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
