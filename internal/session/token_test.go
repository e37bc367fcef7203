package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"watchshelf/internal/models"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	user := models.User{ID: "u1", Email: "a@x.com", Name: "A"}
	token, err := codec.Issue(user)
	require.NoError(t, err)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	require.Equal(t, user, decoded)
}

func TestTokenCodecNeverCarriesPassword(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Issue(models.User{ID: "u1", Email: "a@x.com", Name: "A", Password: "secret"})
	require.NoError(t, err)
	require.NotContains(t, token, "secret")

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	require.Empty(t, decoded.Password)
}

func TestTokenCodecRejectsTampering(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Issue(models.User{ID: "u1", Email: "a@x.com"})
	require.NoError(t, err)

	t.Run("garbage input", func(t *testing.T) {
		_, err := codec.Decode("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenCodec("other-secret")
		_, err := other.Decode(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		mangled := []byte(token)
		mangled[len(mangled)/2] ^= 0x01
		_, err := codec.Decode(string(mangled))
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
