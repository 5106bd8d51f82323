package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a billable item. VATRate is a percentage with at most two
// decimal places (e.g. 20.00), stored as basis points.
type Product struct {
	ID          int64
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	VATRate     decimal.Decimal
	CategoryID  *int64
	CreatedAt   time.Time

	// Category is attached on reads when CategoryID is set.
	Category *Category
}
