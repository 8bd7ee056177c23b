package security

import (
	"crypto/rand"
	"fmt"
)

const tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTempPassword produces a temporary credential for a freshly
// created account: the prefix "temp" followed by 8 random characters.
func GenerateTempPassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating temporary password: %w", err)
	}
	for i, b := range buf {
		buf[i] = tempPasswordAlphabet[int(b)%len(tempPasswordAlphabet)]
	}
	return "temp" + string(buf), nil
}
