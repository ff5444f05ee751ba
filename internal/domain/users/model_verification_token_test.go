package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("token within its window is valid", func(t *testing.T) {
		tok := VerificationToken{ExpiresAt: now.Add(time.Hour)}
		assert.False(t, tok.Expired(now))
	})

	t.Run("token past its window is expired", func(t *testing.T) {
		tok := VerificationToken{ExpiresAt: now.Add(-time.Minute)}
		assert.True(t, tok.Expired(now))
	})

	t.Run("token without an expiry is expired", func(t *testing.T) {
		tok := VerificationToken{}
		assert.True(t, tok.Expired(now))
	})
}
