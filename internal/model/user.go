package model

import "time"

// User identifies who posted a transaction. Authentication happens outside
// this application; only the identity is recorded.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
