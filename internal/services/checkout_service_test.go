package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"tillpoint/internal/repos"
	"tillpoint/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestCheckoutDecrementsStockAndRecordsSale(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	svc := services.NewCheckoutService(saleRepo)

	id, err := prodRepo.Create("Soda", 100, 10)
	if err != nil {
		t.Fatal(err)
	}

	err = svc.Checkout([]services.CartLine{{ProductID: id, Qty: 2, UnitPrice: 100}}, "")
	if err != nil {
		t.Fatal(err)
	}

	p, err := prodRepo.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if p.Quantity != 8 {
		t.Fatalf("want quantity 8, got %d", p.Quantity)
	}

	sales, err := saleRepo.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(sales) != 1 {
		t.Fatalf("want 1 sale, got %d", len(sales))
	}
	s := sales[0]
	if s.ProductID != id || s.QuantitySold != 2 || s.TotalPrice != 200 {
		t.Fatalf("bad sale row: %+v", s)
	}
	if s.PaymentMode != "cash" {
		t.Fatalf("want default payment mode cash, got %q", s.PaymentMode)
	}
	if s.CheckoutID == "" {
		t.Fatal("checkout id missing")
	}
	if _, err := time.Parse(time.RFC3339, s.DateTime); err != nil {
		t.Fatalf("date_time not RFC3339: %q", s.DateTime)
	}

	sum, err := saleRepo.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalTransactions != 1 || sum.TotalRevenue != 200 {
		t.Fatalf("bad summary: %+v", sum)
	}
}

func TestCheckoutSharesStampAcrossLines(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	svc := services.NewCheckoutService(saleRepo)

	a, _ := prodRepo.Create("Tea", 50, 5)
	b, _ := prodRepo.Create("Coffee", 80, 5)

	err := svc.Checkout([]services.CartLine{
		{ProductID: a, Qty: 1, UnitPrice: 50},
		{ProductID: b, Qty: 2, UnitPrice: 80},
	}, "card")
	if err != nil {
		t.Fatal(err)
	}

	sales, err := saleRepo.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(sales) != 2 {
		t.Fatalf("want 2 sales, got %d", len(sales))
	}
	if sales[0].DateTime != sales[1].DateTime {
		t.Fatalf("timestamps differ: %q vs %q", sales[0].DateTime, sales[1].DateTime)
	}
	if sales[0].CheckoutID != sales[1].CheckoutID {
		t.Fatalf("checkout ids differ: %q vs %q", sales[0].CheckoutID, sales[1].CheckoutID)
	}
	if sales[0].PaymentMode != "card" || sales[1].PaymentMode != "card" {
		t.Fatalf("payment mode not carried: %+v", sales)
	}
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	svc := services.NewCheckoutService(saleRepo)

	id, _ := prodRepo.Create("Soda", 100, 10)

	if err := svc.Checkout(nil, ""); err != nil {
		t.Fatal(err)
	}

	p, _ := prodRepo.Get(id)
	if p.Quantity != 10 {
		t.Fatalf("stock changed on empty cart: %d", p.Quantity)
	}
	sum, err := saleRepo.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalTransactions != 0 || sum.TotalRevenue != 0 {
		t.Fatalf("want empty summary, got %+v", sum)
	}
}

func TestCheckoutUnknownProductRollsBack(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	svc := services.NewCheckoutService(saleRepo)

	id, _ := prodRepo.Create("Soda", 100, 10)

	err := svc.Checkout([]services.CartLine{
		{ProductID: id, Qty: 2, UnitPrice: 100},
		{ProductID: 9999, Qty: 1, UnitPrice: 50},
	}, "")
	if !errors.Is(err, repos.ErrUnknownProduct) {
		t.Fatalf("want ErrUnknownProduct, got %v", err)
	}

	// First line must not have committed.
	p, _ := prodRepo.Get(id)
	if p.Quantity != 10 {
		t.Fatalf("partial decrement leaked: %d", p.Quantity)
	}
	sales, err := saleRepo.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(sales) != 0 {
		t.Fatalf("partial sale rows leaked: %+v", sales)
	}
}

func TestCheckoutCanDriveStockNegative(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	svc := services.NewCheckoutService(saleRepo)

	id, _ := prodRepo.Create("Soda", 100, 1)

	if err := svc.Checkout([]services.CartLine{{ProductID: id, Qty: 3, UnitPrice: 100}}, ""); err != nil {
		t.Fatal(err)
	}
	p, _ := prodRepo.Get(id)
	if p.Quantity != -2 {
		t.Fatalf("want quantity -2 (no floor), got %d", p.Quantity)
	}
}
