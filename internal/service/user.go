package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/azeroual/comptable/internal/validation"
)

type UserService struct {
	repo store.Repository
}

func NewUserService(repo store.Repository) *UserService {
	return &UserService{repo: repo}
}

func (us *UserService) Create(name, email string) (*model.User, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	user := &model.User{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}

	newID, err := us.repo.CreateUser(user)
	if err != nil {
		return nil, err
	}

	user.ID = newID
	return user, nil
}

func (us *UserService) GetByName(name string) (*model.User, error) {
	return us.repo.GetUserByName(name)
}

func (us *UserService) List() ([]*model.User, error) {
	return us.repo.GetAllUsers()
}

// EnsureDefault returns the configured default user, creating it on first
// run.
func (us *UserService) EnsureDefault(name string) (*model.User, error) {
	user, err := us.repo.GetUserByName(name)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user, err = us.Create(name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create default user %q: %w", name, err)
	}
	return user, nil
}
