package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
)

const testSecret = "test-secret-key-with-enough-length!"

func TestTokenService_IssueAndDecode(t *testing.T) {
	ts := NewTokenService(testSecret, 240*time.Hour)

	token, err := ts.Issue("test@example.com", 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Subject)

	// exp should be about ten days out
	expectedExp := time.Now().Add(240 * time.Hour)
	assert.WithinDuration(t, expectedExp, claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	ts := NewTokenService(testSecret, -time.Hour)

	token, err := ts.Issue("test@example.com", 42)
	require.NoError(t, err)

	claims, err := ts.Decode(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("another-secret-key-with-enough-len", 240*time.Hour)
	verifier := NewTokenService(testSecret, 240*time.Hour)

	token, err := issuer.Issue("test@example.com", 42)
	require.NoError(t, err)

	claims, err := verifier.Decode(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenMalformed)
}

func TestTokenService_MalformedToken(t *testing.T) {
	ts := NewTokenService(testSecret, 240*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"wrong structure", "aaaa.bbbb"},
		{"tampered payload", func() string {
			token, _ := ts.Issue("test@example.com", 42)
			return token[:len(token)-4] + "XXXX"
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ts.Decode(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domain.ErrTokenMalformed)
		})
	}
}
