package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
)

const accountColumns = "id, name, code, type, balance_cents, created_at, updated_at"

func scanAccount(row interface{ Scan(...any) error }) (*model.Account, error) {
	acc := &model.Account{}
	var balanceCents, createdAt, updatedAt int64
	var accType string

	err := row.Scan(
		&acc.ID, &acc.Name, &acc.Code, &accType,
		&balanceCents, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	acc.Type = model.AccountType(accType)
	acc.Balance = money.FromCents(balanceCents)
	acc.CreatedAt = time.Unix(createdAt, 0)
	acc.UpdatedAt = time.Unix(updatedAt, 0)
	return acc, nil
}

func (s *Store) CreateAccount(acc *model.Account) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (name, code, type, balance_cents, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare account SQL: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()

	var newID int64
	err = stmt.QueryRow(acc.Name, acc.Code, string(acc.Type), money.ToCents(acc.Balance), now, now).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err, "accounts.code") {
			return 0, fmt.Errorf("account code %q already exists: %w", acc.Code, ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert account: %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccountByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query account %d: %w", id, err)
	}
	return acc, nil
}

func (s *Store) GetAccountByCode(code string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE code = ?", code)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with code %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query account %q: %w", code, err)
	}
	return acc, nil
}

// GetAllAccounts returns the chart of accounts ordered by code.
func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query("SELECT " + accountColumns + " FROM accounts ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// UpdateAccount updates name, code and type. Balance changes go through
// UpdateAccountBalance only.
func (s *Store) UpdateAccount(acc *model.Account) error {
	result, err := s.db.Exec(`
		UPDATE accounts
		SET name = ?, code = ?, type = ?, updated_at = ?
		WHERE id = ?
	`, acc.Name, acc.Code, string(acc.Type), time.Now().Unix(), acc.ID)
	if err != nil {
		if isUniqueViolation(err, "accounts.code") {
			return fmt.Errorf("account code %q already exists: %w", acc.Code, ErrConflict)
		}
		return fmt.Errorf("failed to update account: %w", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("account %d", acc.ID))
}

// UpdateAccountBalance persists a new running balance for one account.
func (s *Store) UpdateAccountBalance(id int64, balanceCents int64) error {
	result, err := s.db.Exec(`
		UPDATE accounts
		SET balance_cents = ?, updated_at = ?
		WHERE id = ?
	`, balanceCents, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %d: %w", id, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("account %d", id))
}

func (s *Store) DeleteAccount(id int64) error {
	result, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("account %d", id))
}

// CountReferencingTransactions reports how many transactions use the account
// on either leg. Account deletion and type changes are refused while > 0.
func (s *Store) CountReferencingTransactions(accountID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM transactions
		WHERE debit_account_id = ? OR credit_account_id = ?
	`, accountID, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions of account %d: %w", accountID, err)
	}
	return count, nil
}

func requireRowsAffected(result sql.Result, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
