package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the audit record for a transaction: who posted it and when.
// It is created and deleted in the same database transaction as its
// Transaction and never exists on its own.
type JournalEntry struct {
	ID            int64
	TransactionID int64
	UserID        int64
	CreatedAt     time.Time
}

// JournalLine is the read model for the chronological journal listing: the
// entry joined with its transaction, both account names and the acting user.
type JournalLine struct {
	EntryID       int64
	CreatedAt     time.Time
	UserName      string
	TransactionID int64
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}
