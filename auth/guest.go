package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GuestSession is an anonymous identity with a 24-hour token, letting a
// visitor build a cart before signing in.
type GuestSession struct {
	GuestID   string    `json:"guest_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewGuestSession mints a fresh guest identity.
func NewGuestSession() GuestSession {
	guestID := "guest_" + generateRandomString(16)
	return GuestSession{
		GuestID:   guestID,
		Token:     issueJWT("", "guest", guestID, "Guest", ""),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
