package ledger

import (
	"github.com/azeroual/comptable/internal/model"
	"github.com/shopspring/decimal"
)

// Side identifies which leg of a transaction an account sits on.
type Side int

const (
	Debit Side = iota
	Credit
)

func (s Side) String() string {
	if s == Debit {
		return "debit"
	}
	return "credit"
}

// Delta returns the signed effect on an account's balance of posting amount
// on the given side. Asset and expense accounts carry a natural debit balance
// (a debit increases them); liability and revenue accounts carry a natural
// credit balance. Pure function; the account type is a closed enum validated
// upstream.
func Delta(accType model.AccountType, side Side, amount decimal.Decimal) decimal.Decimal {
	increases := side == Debit

	switch accType {
	case model.TypeAsset, model.TypeExpense:
		// natural debit balance
	case model.TypeLiability, model.TypeRevenue:
		increases = !increases
	}

	if increases {
		return amount
	}
	return amount.Neg()
}
