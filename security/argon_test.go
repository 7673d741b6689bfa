package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromPassword(t *testing.T) {
	a := New()

	h1, err := a.GenerateFromPassword("pw123")
	require.NoError(t, err)
	h2, err := a.GenerateFromPassword("pw123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h1, "$argon2id$"))
	assert.NotContains(t, h1, "pw123")

	// Fresh salt every time, so identical passwords never share a hash
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswd(t *testing.T) {
	a := New()

	h, err := a.GenerateFromPassword("pw123")
	require.NoError(t, err)

	ok, err := a.VerifyPasswd("pw123", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong", h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswdMalformedHash(t *testing.T) {
	a := New()

	_, err := a.VerifyPasswd("pw123", "not-a-phc-string")
	assert.Error(t, err)
}
