package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/azeroual/comptable/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo   store.Repository
	config *config.Config
}

func NewAccountService(repo store.Repository, cfg *config.Config) *AccountService {
	return &AccountService{repo: repo, config: cfg}
}

// Create validates and stores a new account. The opening balance is set
// directly; only subsequent changes go through the posting engine.
func (as *AccountService) Create(name, code string, accType model.AccountType, balance decimal.Decimal) (*model.Account, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateAccountCode(code); err != nil {
		return nil, err
	}

	acc := &model.Account{
		Name:    strings.TrimSpace(name),
		Code:    strings.TrimSpace(code),
		Type:    accType,
		Balance: balance,
	}

	newID, err := as.repo.CreateAccount(acc)
	if err != nil {
		return nil, err
	}

	acc.ID = newID
	return acc, nil
}

func (as *AccountService) GetByID(id int64) (*model.Account, error) {
	return as.repo.GetAccountByID(id)
}

func (as *AccountService) GetByCode(code string) (*model.Account, error) {
	return as.repo.GetAccountByCode(code)
}

// Resolve accepts either an account id or an account code.
func (as *AccountService) Resolve(ref string) (*model.Account, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if acc, err := as.repo.GetAccountByID(id); err == nil {
			return acc, nil
		}
	}
	return as.repo.GetAccountByCode(ref)
}

func (as *AccountService) List() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

// Update changes name, code or type. A type change is refused once any
// transaction references the account: reversal replays the inverse with the
// current type, so the type must stay immutable from the first posting on.
func (as *AccountService) Update(id int64, name, code string, accType model.AccountType) (*model.Account, error) {
	acc, err := as.repo.GetAccountByID(id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateAccountCode(code); err != nil {
		return nil, err
	}

	if accType != acc.Type {
		count, err := as.repo.CountReferencingTransactions(id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("can't change type of account %q: %d transaction(s) reference it: %w",
				acc.Code, count, store.ErrConflict)
		}
	}

	acc.Name = strings.TrimSpace(name)
	acc.Code = strings.TrimSpace(code)
	acc.Type = accType

	if err := as.repo.UpdateAccount(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Delete refuses while any transaction references the account.
func (as *AccountService) Delete(id int64) error {
	acc, err := as.repo.GetAccountByID(id)
	if err != nil {
		return err
	}

	count, err := as.repo.CountReferencingTransactions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("can't delete account %q: %d transaction(s) reference it: %w",
			acc.Code, count, store.ErrConflict)
	}

	return as.repo.DeleteAccount(id)
}
