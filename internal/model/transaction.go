package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single double-entry movement: one debit leg, one credit
// leg, same amount on both. The two account ids always differ.
type Transaction struct {
	ID              int64
	Date            time.Time
	Description     string
	DebitAccountID  int64
	CreditAccountID int64
	Amount          decimal.Decimal
	CreatedAt       time.Time

	// Populated on detailed reads.
	DebitAccount  *Account
	CreditAccount *Account
	Journal       *JournalEntry
}
