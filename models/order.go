package models

import "time"

// Order is an immutable snapshot of a completed checkout. Orders live in an
// append-only, newest-first sequence; there are no update or delete
// operations.
type Order struct {
	ID    string     `json:"id"`
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
	Date  time.Time  `json:"date"`
}
