package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
)

func (s *Store) CreateJournalEntry(entry *model.JournalEntry) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO journal_entries (transaction_id, user_id, created_at)
		VALUES (?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare journal SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(entry.TransactionID, entry.UserID, entry.CreatedAt.Unix()).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err, "journal_entries.transaction_id") {
			return 0, fmt.Errorf("transaction %d already has a journal entry: %w", entry.TransactionID, ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return newID, nil
}

func (s *Store) GetJournalEntryByTransaction(txID int64) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{}
	var createdAt int64

	err := s.db.QueryRow(`
		SELECT id, transaction_id, user_id, created_at
		FROM journal_entries
		WHERE transaction_id = ?
	`, txID).Scan(&entry.ID, &entry.TransactionID, &entry.UserID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("journal entry of transaction %d: %w", txID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query journal entry: %w", err)
	}

	entry.CreatedAt = time.Unix(createdAt, 0)
	return entry, nil
}

func (s *Store) DeleteJournalEntryByTransaction(txID int64) error {
	result, err := s.db.Exec("DELETE FROM journal_entries WHERE transaction_id = ?", txID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry of transaction %d: %w", txID, err)
	}

	return requireRowsAffected(result, fmt.Sprintf("journal entry of transaction %d", txID))
}

// ListJournal returns journal entries newest first, each joined with its
// transaction, both account names and the acting user.
func (s *Store) ListJournal(limit int) ([]*model.JournalLine, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT j.id, j.created_at, u.name,
		       t.id, t.date, t.description, d.name, c.name, t.amount_cents
		FROM journal_entries j
		INNER JOIN users u ON u.id = j.user_id
		INNER JOIN transactions t ON t.id = j.transaction_id
		INNER JOIN accounts d ON d.id = t.debit_account_id
		INNER JOIN accounts c ON c.id = t.credit_account_id
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var lines []*model.JournalLine
	for rows.Next() {
		line := &model.JournalLine{}
		var createdAt, amountCents int64
		var date string

		err := rows.Scan(
			&line.EntryID, &createdAt, &line.UserName,
			&line.TransactionID, &date, &line.Description,
			&line.DebitAccount, &line.CreditAccount, &amountCents,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}

		line.CreatedAt = time.Unix(createdAt, 0)
		line.Date, err = time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse journal date %q: %w", date, err)
		}
		line.Amount = money.FromCents(amountCents)
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
