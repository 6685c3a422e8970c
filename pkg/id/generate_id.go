package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a 32-char lowercase hex identifier, used as the public
// id for users, products, applications and archive records.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
