package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionActive(t *testing.T) {
	now := time.Now()

	live := Session{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, live.Active(now))

	expired := Session{ExpiresAt: now.Add(-time.Minute)}
	assert.False(t, expired.Active(now))

	revokedAt := now.Add(-time.Second)
	revoked := Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}
	assert.False(t, revoked.Active(now))
}
