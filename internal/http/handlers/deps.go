package handlers

import (
	"tillpoint/internal/repos"
	"tillpoint/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CheckoutHandler *CheckoutHandler
	SalesHandler    *SalesHandler
	ReceiptHandler  *ReceiptHandler
	AuthHandler     *AuthHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	checkoutSvc := services.NewCheckoutService(saleRepo)
	salesSvc := services.NewSalesService(saleRepo)
	authSvc := &services.AuthService{Users: userRepo}

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
		SalesHandler:    &SalesHandler{Sales: salesSvc},
		ReceiptHandler:  &ReceiptHandler{Sales: salesSvc, Receipts: services.ReceiptService{}},
		AuthHandler:     &AuthHandler{Auth: authSvc},
	}
}
