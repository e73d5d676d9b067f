package models

import "time"

// Profile is the per-user account record, persisted in the user's
// key-value namespace.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Phone     string    `json:"phone"`
	Provider  string    `json:"provider"` // "password", "google", "guest"
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
