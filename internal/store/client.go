package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
)

func (s *Store) CreateClient(client *model.Client) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO clients (name, email, phone, address, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare client SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(client.Name, client.Email, client.Phone, client.Address, time.Now().Unix()).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", err)
	}

	return newID, nil
}

func (s *Store) GetClientByID(id int64) (*model.Client, error) {
	client := &model.Client{}
	var createdAt int64
	var email, phone, address sql.NullString

	err := s.db.QueryRow(
		"SELECT id, name, email, phone, address, created_at FROM clients WHERE id = ?", id,
	).Scan(&client.ID, &client.Name, &email, &phone, &address, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query client %d: %w", id, err)
	}

	client.Email = email.String
	client.Phone = phone.String
	client.Address = address.String
	client.CreatedAt = time.Unix(createdAt, 0)
	return client, nil
}

func (s *Store) GetAllClients() ([]*model.Client, error) {
	rows, err := s.db.Query("SELECT id, name, email, phone, address, created_at FROM clients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		client := &model.Client{}
		var createdAt int64
		var email, phone, address sql.NullString

		if err := rows.Scan(&client.ID, &client.Name, &email, &phone, &address, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}

		client.Email = email.String
		client.Phone = phone.String
		client.Address = address.String
		client.CreatedAt = time.Unix(createdAt, 0)
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (s *Store) DeleteClient(id int64) error {
	result, err := s.db.Exec("DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", id, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("client %d", id))
}

// CountClientInvoices reports how many invoices reference the client.
func (s *Store) CountClientInvoices(clientID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM invoices WHERE client_id = ?", clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices of client %d: %w", clientID, err)
	}
	return count, nil
}
