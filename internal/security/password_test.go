package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	ok, err := VerifyPassword("admin123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	encoded, err := HashPassword("admin123")
	require.NoError(t, err)

	ok, err := VerifyPassword("admin124", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("admin123")
	require.NoError(t, err)
	second, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$t=3,m=65536,p=2$c2FsdA$aGFzaA"},
		{"missing sections", "$argon2id$v=19$t=3,m=65536,p=2"},
		{"bad salt encoding", "$argon2id$v=19$t=3,m=65536,p=2$!!!$aGFzaA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := VerifyPassword("admin123", tc.encoded)
			assert.Error(t, err)
		})
	}
}

func TestGenerateTempPassword_Shape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := GenerateTempPassword()
		require.NoError(t, err)
		require.Len(t, pw, 12)
		assert.True(t, strings.HasPrefix(pw, "temp"))
		for _, c := range pw[4:] {
			assert.Contains(t, tempPasswordAlphabet, string(c))
		}
		seen[pw] = true
	}
	assert.Greater(t, len(seen), 1, "temporary passwords should be random")
}
