package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/azeroual/comptable/internal/money"
)

const (
	MaxNameLen = 255
	MaxCodeLen = 10

	DateFormat = "2006-01-02"
)

// ValidateName checks a human-readable name (account, client, product).
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", MaxNameLen)
	}
	return nil
}

// ValidateAccountCode checks an account code like "512".
func ValidateAccountCode(code string) error {
	code = strings.TrimSpace(code)

	if code == "" {
		return fmt.Errorf("account code can't be empty")
	}
	if len(code) > MaxCodeLen {
		return fmt.Errorf("account code too long (max %d characters)", MaxCodeLen)
	}
	if strings.ContainsAny(code, " \t") {
		return fmt.Errorf("account code can't contain spaces")
	}
	return nil
}

// ValidatePositiveAmount checks user input for a strictly positive amount
// with at most two decimal places. Usable as a prompt validator.
func ValidatePositiveAmount(s string) error {
	d, err := money.Parse(s)
	if err != nil {
		return err
	}
	if !d.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return nil
}

// Today returns the current date in the YYYY-MM-DD format.
func Today() string {
	return time.Now().Format(DateFormat)
}

// ParseDate converts a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
