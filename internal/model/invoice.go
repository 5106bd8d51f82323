package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the closed set of invoice lifecycle states.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
)

func InvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{StatusDraft, StatusSent, StatusPaid, StatusCancelled}
}

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch st := InvoiceStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusDraft, StatusSent, StatusPaid, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("invalid invoice status %q (must be draft, sent, paid or cancelled)", s)
	}
}

// Invoice carries amounts excluding VAT (Subtotal), the VAT amount and the
// total including VAT. Each line keeps its own VAT rate; the header rate is
// presentational only.
type Invoice struct {
	ID        int64
	Number    string
	IssueDate time.Time
	DueDate   time.Time
	Status    InvoiceStatus
	Subtotal  decimal.Decimal
	VATRate   decimal.Decimal
	VAT       decimal.Decimal
	Total     decimal.Decimal
	Notes     string
	ClientID  int64
	CreatedBy int64
	CreatedAt time.Time

	Client *Client
	Lines  []*InvoiceLine
}

type InvoiceLine struct {
	ID        int64
	InvoiceID int64
	ProductID int64
	// Description of the billed item on this line.
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	VATRate     decimal.Decimal
	VAT         decimal.Decimal
	Total       decimal.Decimal
}
