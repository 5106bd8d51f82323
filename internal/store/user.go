package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
)

func (s *Store) CreateUser(user *model.User) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO users (name, email, created_at)
		VALUES (?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare user SQL: %w", err)
	}
	defer stmt.Close()

	// NULL rather than "" keeps the unique index usable for users without an
	// email.
	var email sql.NullString
	if user.Email != "" {
		email = sql.NullString{String: user.Email, Valid: true}
	}

	var newID int64
	err = stmt.QueryRow(user.Name, email, time.Now().Unix()).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err, "users.name") || isUniqueViolation(err, "users.email") {
			return 0, fmt.Errorf("user %q already exists: %w", user.Name, ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	return newID, nil
}

func (s *Store) GetUserByID(id int64) (*model.User, error) {
	return s.getUser("id = ?", id, fmt.Sprintf("user %d", id))
}

func (s *Store) GetUserByName(name string) (*model.User, error) {
	return s.getUser("name = ?", name, fmt.Sprintf("user %q", name))
}

func (s *Store) getUser(where string, arg any, what string) (*model.User, error) {
	user := &model.User{}
	var email sql.NullString
	var createdAt int64

	err := s.db.QueryRow(
		"SELECT id, name, email, created_at FROM users WHERE "+where, arg,
	).Scan(&user.ID, &user.Name, &email, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}

	user.Email = email.String
	user.CreatedAt = time.Unix(createdAt, 0)
	return user, nil
}

func (s *Store) GetAllUsers() ([]*model.User, error) {
	rows, err := s.db.Query("SELECT id, name, email, created_at FROM users ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		var email sql.NullString
		var createdAt int64
		if err := rows.Scan(&user.ID, &user.Name, &email, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Email = email.String
		user.CreatedAt = time.Unix(createdAt, 0)
		users = append(users, user)
	}

	return users, rows.Err()
}
