package service

import (
	"fmt"
	"strings"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/azeroual/comptable/internal/validation"
	"github.com/shopspring/decimal"
)

type ProductService struct {
	repo store.Repository
}

func NewProductService(repo store.Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (ps *ProductService) Create(name, description string, unitPrice, vatRate decimal.Decimal, categoryID *int64) (*model.Product, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price can't be negative")
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("VAT rate must be between 0 and 100")
	}
	if categoryID != nil {
		if _, err := ps.repo.GetCategoryByID(*categoryID); err != nil {
			return nil, err
		}
	}

	product := &model.Product{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		UnitPrice:   unitPrice,
		VATRate:     vatRate,
		CategoryID:  categoryID,
	}

	newID, err := ps.repo.CreateProduct(product)
	if err != nil {
		return nil, err
	}

	product.ID = newID
	return product, nil
}

func (ps *ProductService) GetByID(id int64) (*model.Product, error) {
	return ps.repo.GetProductByID(id)
}

func (ps *ProductService) List() ([]*model.Product, error) {
	return ps.repo.GetAllProducts()
}

func (ps *ProductService) Delete(id int64) error {
	return ps.repo.DeleteProduct(id)
}
