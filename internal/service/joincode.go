package service

import (
	"crypto/rand"
	"fmt"
)

const (
	joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	joinCodeLength   = 8
)

// generateJoinCode draws a fixed-length code from the 62-symbol
// alphanumeric alphabet. Uniqueness is not checked here; the caller
// retries on a duplicate-key insert.
func generateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}
