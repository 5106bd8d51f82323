package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/azeroual/comptable/internal/validation"
)

type CategoryService struct {
	repo store.Repository
}

func NewCategoryService(repo store.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (cs *CategoryService) Create(name, description string) (*model.Category, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}

	newID, err := cs.repo.CreateCategory(category)
	if err != nil {
		return nil, err
	}

	category.ID = newID
	return category, nil
}

func (cs *CategoryService) GetByID(id int64) (*model.Category, error) {
	return cs.repo.GetCategoryByID(id)
}

// Resolve accepts a category id or name.
func (cs *CategoryService) Resolve(ref string) (*model.Category, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if category, err := cs.repo.GetCategoryByID(id); err == nil {
			return category, nil
		}
	}
	return cs.repo.GetCategoryByName(ref)
}

func (cs *CategoryService) List() ([]*model.Category, error) {
	return cs.repo.GetAllCategories()
}

func (cs *CategoryService) Update(id int64, name, description string) (*model.Category, error) {
	category, err := cs.repo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		if err := validation.ValidateName(name); err != nil {
			return nil, err
		}
		category.Name = strings.TrimSpace(name)
	}
	if description != "" {
		category.Description = strings.TrimSpace(description)
	}

	if err := cs.repo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category while products still reference it.
func (cs *CategoryService) Delete(id int64) error {
	count, err := cs.repo.CountCategoryProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category %d still has %d product(s): %w", id, count, store.ErrConflict)
	}

	return cs.repo.DeleteCategory(id)
}
