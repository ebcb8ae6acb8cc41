package output

import (
	"crypto/rand"
	"encoding/hex"
)

// IDBytes is the number of random bytes in a generated identifier.
const IDBytes = 16

// IDFunc generates a unique identifier.
type IDFunc func() (string, error)

// NewID returns 128 random bits as 32 lowercase hex characters.
func NewID() (string, error) {
	b := make([]byte, IDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
