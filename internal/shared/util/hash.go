package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashInput returns a stable identifier for free-text input, used in logs
// so the raw text never has to be recorded.
func HashInput(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
