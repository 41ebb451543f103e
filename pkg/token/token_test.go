package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	// URL-safe: must survive cookie and query-string transport unescaped
	assert.NotContains(t, tok, "+")
	assert.NotContains(t, tok, "/")
	assert.NotContains(t, tok, "=")
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok, err := New()
		require.NoError(t, err)
		assert.False(t, seen[tok], "token generated twice: %s", tok)
		seen[tok] = true
	}
}

func TestNewWithLengthRejectsNonPositive(t *testing.T) {
	_, err := NewWithLength(0)
	assert.Error(t, err)

	_, err = NewWithLength(-5)
	assert.Error(t, err)
}
