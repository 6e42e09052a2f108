package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlacklistTokenRoundTrip(t *testing.T) {
	token := "blacklist-roundtrip-token"
	assert.False(t, IsTokenBlacklisted(token))

	BlacklistToken(token, time.Now().Add(time.Hour))
	assert.True(t, IsTokenBlacklisted(token))
}

func TestBlacklistExpiredTokenIgnored(t *testing.T) {
	token := "blacklist-expired-token"
	BlacklistToken(token, time.Now().Add(-time.Minute))
	assert.False(t, IsTokenBlacklisted(token))
}

func TestStateSingleUse(t *testing.T) {
	SaveState("state-abc", time.Minute)

	assert.True(t, ConsumeState("state-abc"))
	assert.False(t, ConsumeState("state-abc"), "state tokens are single use")
	assert.False(t, ConsumeState("never-saved"))
}
