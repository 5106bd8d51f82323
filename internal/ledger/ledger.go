package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/store"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount rejects amounts that are not strictly positive or
	// carry more than two decimal places.
	ErrInvalidAmount = errors.New("amount must be positive with at most two decimal places")

	// ErrSameAccount rejects a transaction debiting and crediting the same
	// account.
	ErrSameAccount = errors.New("debit and credit accounts must differ")
)

// Ledger is the posting engine. Every Post and Reverse runs as one database
// transaction; concurrent operations on overlapping accounts serialize on
// per-account locks taken in ascending id order.
type Ledger struct {
	store *store.Store

	mu    sync.Mutex // protects locks
	locks map[int64]*sync.Mutex
}

func New(s *store.Store) *Ledger {
	return &Ledger{
		store: s,
		locks: make(map[int64]*sync.Mutex),
	}
}

func (l *Ledger) accountLock(accountID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.locks[accountID]; !exists {
		l.locks[accountID] = &sync.Mutex{}
	}
	return l.locks[accountID]
}

// lockPair locks both account locks in ascending id order so that two
// operations on overlapping pairs can never deadlock. Returns the unlock
// function.
func (l *Ledger) lockPair(a, b int64) func() {
	first, second := l.accountLock(a), l.accountLock(b)
	if a > b {
		first, second = second, first
	}

	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// PostInput describes one double-entry posting. UserID is the acting user
// recorded on the journal entry; it is always passed explicitly.
type PostInput struct {
	Date            time.Time
	Description     string
	DebitAccountID  int64
	CreditAccountID int64
	Amount          decimal.Decimal
	UserID          int64
}

// Post validates the legs and the amount, applies the sign convention to both
// account balances and persists the transaction, its journal entry and both
// balances as one atomic unit. On any error nothing is written.
func (l *Ledger) Post(in PostInput) (*model.Transaction, error) {
	if in.DebitAccountID == in.CreditAccountID {
		return nil, fmt.Errorf("account %d on both legs: %w", in.DebitAccountID, ErrSameAccount)
	}
	if !in.Amount.IsPositive() || in.Amount.Exponent() < -2 {
		return nil, fmt.Errorf("amount %s: %w", in.Amount, ErrInvalidAmount)
	}

	unlock := l.lockPair(in.DebitAccountID, in.CreditAccountID)
	defer unlock()

	var created *model.Transaction

	err := l.store.ExecTx(func(r store.Repository) error {
		debit, err := r.GetAccountByID(in.DebitAccountID)
		if err != nil {
			return err
		}
		credit, err := r.GetAccountByID(in.CreditAccountID)
		if err != nil {
			return err
		}

		debit.Balance = debit.Balance.Add(Delta(debit.Type, Debit, in.Amount))
		credit.Balance = credit.Balance.Add(Delta(credit.Type, Credit, in.Amount))

		tx := &model.Transaction{
			Date:            in.Date,
			Description:     in.Description,
			DebitAccountID:  in.DebitAccountID,
			CreditAccountID: in.CreditAccountID,
			Amount:          in.Amount,
		}

		tx.ID, err = r.CreateTransaction(tx)
		if err != nil {
			return err
		}

		entry := &model.JournalEntry{
			TransactionID: tx.ID,
			UserID:        in.UserID,
			CreatedAt:     time.Now(),
		}
		entry.ID, err = r.CreateJournalEntry(entry)
		if err != nil {
			return err
		}

		if err := r.UpdateAccountBalance(debit.ID, money.ToCents(debit.Balance)); err != nil {
			return err
		}
		if err := r.UpdateAccountBalance(credit.ID, money.ToCents(credit.Balance)); err != nil {
			return err
		}

		tx.DebitAccount = debit
		tx.CreditAccount = credit
		tx.Journal = entry
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Reverse undoes a posted transaction: it subtracts the exact deltas applied
// at post time, deletes the journal entry and then the transaction, all in
// one atomic unit. The net effect on both balances is the state before the
// original Post.
func (l *Ledger) Reverse(txID int64) error {
	// Read outside the lock only to learn which pair of accounts to lock.
	tx, err := l.store.GetTransactionByID(txID)
	if err != nil {
		return err
	}

	unlock := l.lockPair(tx.DebitAccountID, tx.CreditAccountID)
	defer unlock()

	return l.store.ExecTx(func(r store.Repository) error {
		tx, err := r.GetTransactionByID(txID)
		if err != nil {
			return err
		}

		debit, err := r.GetAccountByID(tx.DebitAccountID)
		if err != nil {
			return err
		}
		credit, err := r.GetAccountByID(tx.CreditAccountID)
		if err != nil {
			return err
		}

		debit.Balance = debit.Balance.Sub(Delta(debit.Type, Debit, tx.Amount))
		credit.Balance = credit.Balance.Sub(Delta(credit.Type, Credit, tx.Amount))

		if err := r.UpdateAccountBalance(debit.ID, money.ToCents(debit.Balance)); err != nil {
			return err
		}
		if err := r.UpdateAccountBalance(credit.ID, money.ToCents(credit.Balance)); err != nil {
			return err
		}

		// The journal entry goes first; the transaction row is referenced by it.
		if err := r.DeleteJournalEntryByTransaction(txID); err != nil {
			return err
		}
		return r.DeleteTransaction(txID)
	})
}

// GetTransactionDetail returns a transaction with both accounts and its
// journal entry attached.
func (l *Ledger) GetTransactionDetail(txID int64) (*model.Transaction, error) {
	tx, err := l.store.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}

	if tx.DebitAccount, err = l.store.GetAccountByID(tx.DebitAccountID); err != nil {
		return nil, err
	}
	if tx.CreditAccount, err = l.store.GetAccountByID(tx.CreditAccountID); err != nil {
		return nil, err
	}
	if tx.Journal, err = l.store.GetJournalEntryByTransaction(tx.ID); err != nil {
		return nil, err
	}

	return tx, nil
}
