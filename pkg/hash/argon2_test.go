package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the test fast without changing the format
var testParams = Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestPasswordAndVerify(t *testing.T) {
	encoded, err := PasswordWithParams("s3cretpass", testParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
	assert.NotContains(t, encoded, "s3cretpass")

	ok, err := Verify("s3cretpass", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("wrongpass", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordSaltsDiffer(t *testing.T) {
	first, err := PasswordWithParams("same", testParams)
	require.NoError(t, err)
	second, err := PasswordWithParams("same", testParams)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA"},
		{"missing sections", "$argon2id$v=19$m=8192,t=1,p=1"},
		{"bad base64 salt", "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Verify("whatever", tt.encoded)
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}
