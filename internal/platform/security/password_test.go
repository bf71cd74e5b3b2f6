package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	passwords := []string{"Tr0ub4dor&3", "C0mplex!Passphrase#2025", "パスワード安全2025!", " spaced out "}

	for _, p := range passwords {
		hashed, err := h.Hash(p)
		require.NoError(t, err)

		assert.NotEqual(t, p, hashed, "hash must not equal plaintext")
		assert.NotContains(t, hashed, p)
		assert.True(t, h.Verify(p, hashed), "verify(p, hash(p)) must hold for %q", p)
		assert.False(t, h.Verify(p+"x", hashed), "a different password must not verify")
		assert.False(t, h.Verify(strings.TrimSpace(p)+"!", hashed))
	}
}

func TestBcryptHasher_UsesCost10(t *testing.T) {
	t.Parallel()

	hashed, err := NewBcryptHasher().Hash("Tr0ub4dor&3")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	first, err := h.Hash("same-password-1!")
	require.NoError(t, err)
	second, err := h.Hash("same-password-1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_VerifyRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	assert.False(t, NewBcryptHasher().Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, NewBcryptHasher().Verify("anything", ""))
}
