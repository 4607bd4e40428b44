package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftSealer(t *testing.T) {
	sealer, err := NewDraftSealer("draft-secret")
	require.NoError(t, err)

	t.Run("Round Trip", func(t *testing.T) {
		sealed, err := sealer.Seal([]byte(`{"name":"Jane Doe"}`), []byte("session-1"))
		require.NoError(t, err)
		assert.NotContains(t, string(sealed), "Jane Doe", "sealed payload must not contain plaintext")

		opened, err := sealer.Open(sealed, []byte("session-1"))
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Jane Doe"}`, string(opened))
	})

	t.Run("Wrong Associated Data", func(t *testing.T) {
		sealed, err := sealer.Seal([]byte("payload"), []byte("session-1"))
		require.NoError(t, err)

		_, err = sealer.Open(sealed, []byte("session-2"))
		assert.Error(t, err, "a draft must not open under another session id")
	})

	t.Run("Truncated Payload", func(t *testing.T) {
		_, err := sealer.Open([]byte("short"), nil)
		assert.Error(t, err)
	})

	t.Run("Different Secret", func(t *testing.T) {
		sealed, err := sealer.Seal([]byte("payload"), nil)
		require.NoError(t, err)

		other, err := NewDraftSealer("another-secret")
		require.NoError(t, err)
		_, err = other.Open(sealed, nil)
		assert.Error(t, err)
	})
}
