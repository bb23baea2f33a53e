package password

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Deterministic(t *testing.T) {
	t.Parallel()

	salt, err := NewSalt()
	require.NoError(t, err)

	first := Hash("pass1", salt)
	second := Hash("pass1", salt)
	assert.Equal(t, first, second)
}

func TestHash_SaltChangesDigest(t *testing.T) {
	t.Parallel()

	saltA, err := NewSalt()
	require.NoError(t, err)
	saltB, err := NewSalt()
	require.NoError(t, err)
	require.NotEqual(t, saltA, saltB)

	assert.NotEqual(t, Hash("pass1", saltA), Hash("pass1", saltB))
}

func TestHash_PasswordChangesDigest(t *testing.T) {
	t.Parallel()

	salt, err := NewSalt()
	require.NoError(t, err)

	assert.NotEqual(t, Hash("pass1", salt), Hash("pass2", salt))
}

func TestNewSalt_Length(t *testing.T) {
	t.Parallel()

	salt, err := NewSalt()
	require.NoError(t, err)

	raw, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	salt, err := NewSalt()
	require.NoError(t, err)
	digest := Hash("pass1", salt)

	assert.True(t, Verify("pass1", salt, digest))
	assert.False(t, Verify("pass2", salt, digest))
	assert.False(t, Verify("pass1", "00000000000000000000000000000000", digest))
}
