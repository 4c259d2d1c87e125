package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	ep := MatchEndpoint("/health", "GET", DefaultConfig().EndpointConfigs)
	require.NotNil(t, ep)
	assert.Equal(t, 0, ep.Limit)
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := DefaultConfig().EndpointConfigs

	ep := MatchEndpoint("/companies", "POST", configs)
	require.NotNil(t, ep)
	assert.Equal(t, 100, ep.Limit)

	ep = MatchEndpoint("/companies/abc123/communications", "POST", configs)
	require.NotNil(t, ep)
	assert.Equal(t, "/companies/", ep.Path)

	assert.Nil(t, MatchEndpoint("/companies", "GET", configs))
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/companies", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("client-a", "/companies", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := l.Allow("client-a", "/companies", "POST")
	assert.False(t, allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/companies", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
		},
	})
	defer l.Stop()

	allowed, _ := l.Allow("client-a", "/companies", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a", "/companies", "POST")
	assert.False(t, allowed)

	allowed, _ = l.Allow("client-b", "/companies", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("client-a", "/companies", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_HealthNeverLimited(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("client-a", "/health", "GET")
		assert.True(t, allowed)
	}
}
