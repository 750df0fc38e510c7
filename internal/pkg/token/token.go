package token

import (
	"crypto/rand"
	"fmt"
	"time"
)

const displayAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const displayTokenLength = 8

// NewDisplayToken returns a short reference code shown to the user after a
// confirmed booking. It is display-only: not an idempotency key, not unique,
// never sent back to the reservation service.
func NewDisplayToken() string {
	buf := make([]byte, displayTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("BK%d", time.Now().UnixNano()%100000000)
	}
	for i, b := range buf {
		buf[i] = displayAlphabet[int(b)%len(displayAlphabet)]
	}
	return string(buf)
}
