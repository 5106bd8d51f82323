package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
)

const dateFormat = "2006-01-02"

const transactionColumns = "id, date, description, debit_account_id, credit_account_id, amount_cents, created_at"

func scanTransaction(row interface{ Scan(...any) error }) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var date string
	var amountCents, createdAt int64

	err := row.Scan(
		&tx.ID, &date, &tx.Description,
		&tx.DebitAccountID, &tx.CreditAccountID,
		&amountCents, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Date, err = time.Parse(dateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date %q: %w", date, err)
	}
	tx.Amount = money.FromCents(amountCents)
	tx.CreatedAt = time.Unix(createdAt, 0)
	return tx, nil
}

func (s *Store) CreateTransaction(tx *model.Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (date, description, debit_account_id, credit_account_id, amount_cents, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(
		tx.Date.Format(dateFormat), tx.Description,
		tx.DebitAccountID, tx.CreditAccountID,
		money.ToCents(tx.Amount), time.Now().Unix(),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

func (s *Store) GetTransactionByID(id int64) (*model.Transaction, error) {
	row := s.db.QueryRow("SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction %d: %w", id, err)
	}
	return tx, nil
}

// GetAllTransactions returns recent transactions, newest first.
func (s *Store) GetAllTransactions(limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT `+transactionColumns+`
		FROM transactions
		ORDER BY date DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// GetTransactionsByAccount returns transactions with the account on either
// leg, newest first.
func (s *Store) GetTransactionsByAccount(accountID int64, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE debit_account_id = ? OR credit_account_id = ?
		ORDER BY date DESC, id DESC
		LIMIT ?
	`, accountID, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (s *Store) DeleteTransaction(id int64) error {
	result, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("transaction %d", id))
}

// LegTotals sums transaction amounts with the account on the debit leg and on
// the credit leg. Display aggregation only; running balances never derive
// from it.
func (s *Store) LegTotals(accountID int64) (debitCents, creditCents int64, err error) {
	err = s.db.QueryRow(`
		SELECT
			COALESCE((SELECT SUM(amount_cents) FROM transactions WHERE debit_account_id = ?), 0),
			COALESCE((SELECT SUM(amount_cents) FROM transactions WHERE credit_account_id = ?), 0)
	`, accountID, accountID).Scan(&debitCents, &creditCents)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum legs of account %d: %w", accountID, err)
	}
	return debitCents, creditCents, nil
}
