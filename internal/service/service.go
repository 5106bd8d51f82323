package service

import (
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/store"
)

type Service struct {
	Account  *AccountService
	User     *UserService
	Client   *ClientService
	Category *CategoryService
	Product  *ProductService
	Invoice  *InvoiceService
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Account:  NewAccountService(repo, cfg),
		User:     NewUserService(repo),
		Client:   NewClientService(repo),
		Category: NewCategoryService(repo),
		Product:  NewProductService(repo),
		Invoice:  NewInvoiceService(repo),
	}
}
