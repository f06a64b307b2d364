package secretbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	box := New("gateway-secret")

	sealed, err := box.Seal("eyJhbGciOiJIUzI1NiJ9.token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "token")

	opened, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.token", opened)
}

func TestSealIsRandomized(t *testing.T) {
	box := New("gateway-secret")

	a, err := box.Seal("same")
	require.NoError(t, err)
	b, err := box.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpenWrongKey(t *testing.T) {
	sealed, err := New("key-a").Seal("secret")
	require.NoError(t, err)

	_, err = New("key-b").Open(sealed)
	assert.Error(t, err)
}

func TestOpenGarbage(t *testing.T) {
	box := New("gateway-secret")

	_, err := box.Open("not base64 at all %%%")
	assert.Error(t, err)

	_, err = box.Open("c2hvcnQ=") // valid base64, shorter than a nonce
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}
