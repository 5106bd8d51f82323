package service

import (
	"fmt"
	"strings"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/azeroual/comptable/internal/validation"
)

type ClientService struct {
	repo store.Repository
}

func NewClientService(repo store.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (cs *ClientService) Create(name, email, phone, address string) (*model.Client, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	client := &model.Client{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}

	newID, err := cs.repo.CreateClient(client)
	if err != nil {
		return nil, err
	}

	client.ID = newID
	return client, nil
}

func (cs *ClientService) GetByID(id int64) (*model.Client, error) {
	return cs.repo.GetClientByID(id)
}

func (cs *ClientService) List() ([]*model.Client, error) {
	return cs.repo.GetAllClients()
}

// Delete refuses while any invoice references the client.
func (cs *ClientService) Delete(id int64) error {
	client, err := cs.repo.GetClientByID(id)
	if err != nil {
		return err
	}

	count, err := cs.repo.CountClientInvoices(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("can't delete client %q: %d invoice(s) reference it: %w",
			client.Name, count, store.ErrConflict)
	}

	return cs.repo.DeleteClient(id)
}
