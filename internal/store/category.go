package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
)

func (s *Store) CreateCategory(category *model.Category) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO categories (name, description, created_at)
		VALUES (?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare category SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(category.Name, category.Description, time.Now().Unix()).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err, "categories.name") {
			return 0, fmt.Errorf("category name %q already exists: %w", category.Name, ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}

	return newID, nil
}

func (s *Store) GetCategoryByID(id int64) (*model.Category, error) {
	return s.getCategory("SELECT id, name, description, created_at FROM categories WHERE id = ?", id)
}

func (s *Store) GetCategoryByName(name string) (*model.Category, error) {
	return s.getCategory("SELECT id, name, description, created_at FROM categories WHERE name = ?", name)
}

func (s *Store) getCategory(query string, arg any) (*model.Category, error) {
	category := &model.Category{}
	var description sql.NullString
	var createdAt int64

	err := s.db.QueryRow(query, arg).Scan(&category.ID, &category.Name, &description, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %v: %w", arg, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query category %v: %w", arg, err)
	}

	category.Description = description.String
	category.CreatedAt = time.Unix(createdAt, 0)
	return category, nil
}

func (s *Store) GetAllCategories() ([]*model.Category, error) {
	rows, err := s.db.Query("SELECT id, name, description, created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		category := &model.Category{}
		var description sql.NullString
		var createdAt int64

		if err := rows.Scan(&category.ID, &category.Name, &description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		category.Description = description.String
		category.CreatedAt = time.Unix(createdAt, 0)
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (s *Store) UpdateCategory(category *model.Category) error {
	result, err := s.db.Exec(
		"UPDATE categories SET name = ?, description = ? WHERE id = ?",
		category.Name, category.Description, category.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "categories.name") {
			return fmt.Errorf("category name %q already exists: %w", category.Name, ErrConflict)
		}
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("category %d", category.ID))
}

func (s *Store) DeleteCategory(id int64) error {
	result, err := s.db.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("category %d", id))
}

// CountCategoryProducts reports how many products reference the category.
func (s *Store) CountCategoryProducts(categoryID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM products WHERE category_id = ?", categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products of category %d: %w", categoryID, err)
	}
	return count, nil
}
