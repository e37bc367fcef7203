package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}

	stored, err := v.Hash("secret1")
	require.NoError(t, err)
	require.Equal(t, "secret1", stored)

	require.True(t, v.Verify("secret1", stored))
	require.False(t, v.Verify("secret2", stored))
	require.False(t, v.Verify("", stored))
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}

	stored, err := v.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", stored)

	require.True(t, v.Verify("secret1", stored))
	require.False(t, v.Verify("secret2", stored))
}

func TestNewVerifier(t *testing.T) {
	require.IsType(t, BcryptVerifier{}, NewVerifier("bcrypt"))
	require.IsType(t, PlaintextVerifier{}, NewVerifier("plain"))
	require.IsType(t, PlaintextVerifier{}, NewVerifier(""))
}

func TestValidatePassword(t *testing.T) {
	require.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
	require.NoError(t, ValidatePassword("secret"))
}
