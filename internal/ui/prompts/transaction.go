package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
)

// PromptTransactionDate prompts for a business date, defaulting to today.
func PromptTransactionDate(validator func(string) error) (string, error) {
	defaultDate := time.Now().Format("2006-01-02")
	return PromptInput(
		fmt.Sprintf("Transaction date (YYYY-MM-DD, Enter for %s):", defaultDate),
		defaultDate,
		validator,
	)
}

// PromptAccountSelection prompts for one account out of the chart, showing
// code, name, type and current balance. Returns the chosen account.
func PromptAccountSelection(message string, accounts []*model.Account, currency string) (*model.Account, error) {
	options := make([]string, 0, len(accounts))
	byLabel := make(map[string]*model.Account, len(accounts))

	for _, acc := range accounts {
		label := fmt.Sprintf("%s  %s (%s, %s)",
			acc.Code, acc.Name, acc.Type, money.Format(acc.Balance, currency))
		options = append(options, label)
		byLabel[label] = acc
	}

	selected, err := PromptSelect(message, options, "")
	if err != nil {
		return nil, err
	}

	acc, ok := byLabel[selected]
	if !ok {
		return nil, fmt.Errorf("unknown account selection %q", selected)
	}
	return acc, nil
}

// PromptAmount prompts for a positive amount.
func PromptAmount(validator func(string) error) (string, error) {
	return PromptInput("Amount:", "", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("amount is required")
		}
		return validator(s)
	})
}
