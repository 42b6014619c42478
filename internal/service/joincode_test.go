package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJoinCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateJoinCode()
		assert.NoError(t, err)
		assert.Len(t, code, joinCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(joinCodeAlphabet, c), "unexpected character %q", c)
		}
		seen[code] = true
	}
	// 100 draws from a 62^8 space colliding would point at a broken
	// random source.
	assert.Len(t, seen, 100)
}
