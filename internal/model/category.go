package model

import "time"

// Category groups products in the catalog.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}
