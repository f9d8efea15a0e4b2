package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	t.Run("round trip verifies", func(t *testing.T) {
		encoded, err := hasher.Hash("SecurePass123")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

		ok, err := hasher.Verify(encoded, "SecurePass123")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		encoded, err := hasher.Hash("SecurePass123")
		require.NoError(t, err)

		ok, err := hasher.Verify(encoded, "WrongPass456")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("same password hashes to different strings", func(t *testing.T) {
		first, err := hasher.Hash("SecurePass123")
		require.NoError(t, err)
		second, err := hasher.Hash("SecurePass123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)

		ok, err := hasher.Verify(first, "SecurePass123")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = hasher.Verify(second, "SecurePass123")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name        string
		encodedHash string
	}{
		{"empty string", ""},
		{"not an argon2id hash", "$bcrypt$whatever"},
		{"missing sections", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{"bad params", "$argon2id$v=19$garbage$c2FsdA$aGFzaA"},
		{"unsupported version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"zero rounds", "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA"},
		{"zero parallelism", "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA"},
		{"empty hash section", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Verify(tt.encodedHash, "SecurePass123")
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}
