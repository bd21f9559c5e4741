package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name  string
		token *Token
		valid bool
	}{
		{name: "nil", token: nil},
		{name: "no access token", token: &Token{RefreshToken: "refresh"}},
		{name: "no expiry", token: &Token{AccessToken: "access"}, valid: true},
		{name: "expires in an hour", token: &Token{AccessToken: "access", ExpiresAt: now.Add(time.Hour)}, valid: true},
		{name: "expired", token: &Token{AccessToken: "access", ExpiresAt: now.Add(-time.Minute)}},
		{name: "inside the expiry buffer", token: &Token{AccessToken: "access", ExpiresAt: now.Add(constants.TokenExpiryBuffer / 2)}},
		{name: "just past the expiry buffer", token: &Token{AccessToken: "access", ExpiresAt: now.Add(constants.TokenExpiryBuffer + 5*time.Second)}, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, tt.token.Valid())
		})
	}
}

func TestTokenFromOAuth2(t *testing.T) {
	t.Parallel()

	t.Run("keeps previous refresh token", func(t *testing.T) {
		t.Parallel()

		expiry := time.Now().Add(12 * time.Hour)
		token := tokenFromOAuth2(&oauth2.Token{AccessToken: "access", Expiry: expiry}, "previous")

		assert.Equal(t, "access", token.AccessToken)
		assert.Equal(t, "previous", token.RefreshToken)
		assert.Equal(t, constants.DefaultTokenType, token.TokenType)
		assert.Equal(t, expiry, token.ExpiresAt)
		assert.InDelta(t, 12*60*60, token.ExpiresIn, 5)
	})

	t.Run("rotated refresh token wins", func(t *testing.T) {
		t.Parallel()

		token := tokenFromOAuth2(&oauth2.Token{AccessToken: "access", RefreshToken: "rotated", TokenType: "Bearer"}, "previous")

		assert.Equal(t, "rotated", token.RefreshToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Zero(t, token.ExpiresIn)
		assert.True(t, token.ExpiresAt.IsZero())
	})

	t.Run("round trip through x/oauth2", func(t *testing.T) {
		t.Parallel()

		original := &Token{AccessToken: "a", RefreshToken: "r", TokenType: "bearer", ExpiresAt: time.Now().Add(time.Hour)}
		converted := tokenFromOAuth2(original.toOAuth2(), "")

		assert.Equal(t, original.AccessToken, converted.AccessToken)
		assert.Equal(t, original.RefreshToken, converted.RefreshToken)
		assert.Equal(t, original.ExpiresAt, converted.ExpiresAt)
	})
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	store := NewTokenStore()
	assert.Nil(t, store.Get())

	store.Set(&Token{AccessToken: "first"})
	require.NotNil(t, store.Get())
	assert.Equal(t, "first", store.Get().AccessToken)

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 50 {
				if i%2 == 0 {
					store.Set(&Token{AccessToken: "writer"})
				} else {
					_ = store.Get()
				}
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, "writer", store.Get().AccessToken)
}
