package token

import (
	"crypto/rand"
	"encoding/hex"
)

// Size is the number of random bytes behind an access token.
const Size = 32

// Generate returns a new guest access token: 64 lowercase hex characters.
func Generate() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
