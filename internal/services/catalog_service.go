package services

import (
	"tillpoint/internal/domain"
	"tillpoint/internal/repos"
)

type CatalogService struct {
	Products *repos.ProductRepo
}

func NewCatalogService(products *repos.ProductRepo) *CatalogService {
	return &CatalogService{Products: products}
}

func (s *CatalogService) List(search string) ([]domain.Product, error) {
	return s.Products.List(search)
}

func (s *CatalogService) Create(name string, price, quantity int64) (int64, error) {
	return s.Products.Create(name, price, quantity)
}

func (s *CatalogService) Update(id int64, name string, price, quantity int64) (int64, error) {
	return s.Products.Update(id, name, price, quantity)
}

func (s *CatalogService) Delete(id int64) (int64, error) {
	return s.Products.Delete(id)
}

func (s *CatalogService) LowStock() ([]domain.Product, error) {
	return s.Products.LowStock()
}
