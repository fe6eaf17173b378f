package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := Bcrypt{}

	first, err := h.Hash("correct horse battery")
	require.NoError(t, err)
	second, err := h.Hash("correct horse battery")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same plaintext must differ")
	assert.True(t, h.Verify("correct horse battery", first))
	assert.True(t, h.Verify("correct horse battery", second))
	assert.False(t, h.Verify("wrong password", first))
}

func TestLegacyHashAndVerify(t *testing.T) {
	h := Legacy{}

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salts must randomize the output")
	assert.True(t, h.Verify("secret123", first))
	assert.True(t, h.Verify("secret123", second))
	assert.False(t, h.Verify("secret124", first))
}

func TestLegacyVerifyMalformed(t *testing.T) {
	h := Legacy{}

	assert.False(t, h.Verify("anything", "no-separator"))
	assert.False(t, h.Verify("anything", "zz$zz"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewSelectsHasher(t *testing.T) {
	assert.IsType(t, Bcrypt{}, New(""))
	assert.IsType(t, Bcrypt{}, New("bcrypt"))
	assert.IsType(t, Bcrypt{}, New("something-else"))
	assert.IsType(t, Legacy{}, New("legacy"))
	assert.IsType(t, Legacy{}, New(" LEGACY "))
}
