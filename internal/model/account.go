package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account categories. The effect of a debit
// or credit on an account's balance depends on it (see internal/ledger).
type AccountType string

const (
	TypeAsset     AccountType = "asset"
	TypeLiability AccountType = "liability"
	TypeRevenue   AccountType = "revenue"
	TypeExpense   AccountType = "expense"
)

// AccountTypes lists every valid account type, in display order.
func AccountTypes() []AccountType {
	return []AccountType{TypeAsset, TypeLiability, TypeRevenue, TypeExpense}
}

// ParseAccountType converts user input into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeAsset, TypeLiability, TypeRevenue, TypeExpense:
		return t, nil
	default:
		return "", fmt.Errorf("invalid account type %q (must be asset, liability, revenue or expense)", s)
	}
}

// Account is one entry of the chart of accounts. Balance is maintained
// incrementally by the posting engine and is never recomputed on read.
type Account struct {
	ID        int64
	Name      string
	Code      string
	Type      AccountType
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
