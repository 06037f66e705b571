package services

import (
	"tillpoint/internal/domain"
	"tillpoint/internal/repos"
)

type SalesService struct {
	Sales *repos.SaleRepo
}

func NewSalesService(sales *repos.SaleRepo) *SalesService {
	return &SalesService{Sales: sales}
}

func (s *SalesService) ListAll() ([]domain.Sale, error) {
	return s.Sales.ListAll()
}

func (s *SalesService) Get(id int64) (domain.Sale, error) {
	return s.Sales.Get(id)
}

func (s *SalesService) Summary() (repos.Summary, error) {
	return s.Sales.Summary()
}
