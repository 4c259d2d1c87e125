// Package ratelimit provides per-client request limiting using a token
// bucket per client.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific
// endpoint. Paths ending in "/" are prefix-matched.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns the limiter configuration for the outreach API:
// write operations are moderately limited, reads fall under the default
// limit, and the health check is unlimited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/companies", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/companies/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/companies/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/companies/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/communications", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/methods", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/methods/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/methods/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/methods/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		},
	}
}

// MatchEndpoint matches a request path and method to an endpoint
// configuration. The health check endpoint is always unlimited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}
	return nil
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// tokenBucket refills at a steady rate up to a burst capacity.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// refill advances the bucket to now. Callers must hold the lock.
func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill(time.Now())
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

func (tb *tokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refill(now)

	remaining = int(tb.tokens)
	resetTime = now
	if tb.tokens < float64(tb.capacity) {
		needed := float64(tb.capacity) - tb.tokens
		resetTime = now.Add(time.Duration(needed / tb.refillRate * float64(time.Second)))
	}
	return remaining, resetTime
}

// Limiter manages one token bucket per (client, endpoint) pair.
type Limiter struct {
	mu         sync.RWMutex
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time
	config     *Config
	stop       chan struct{}
	ticker     *time.Ticker
}

// NewLimiter creates a new rate limiter with the given configuration.
// Passing nil uses DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
		config:     config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		l.ticker = time.NewTicker(config.CleanupInterval)
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether clientID may call path/method now, consuming one
// token if so.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit := l.config.DefaultLimit
	window := l.config.DefaultWindow
	burst := limit
	if ep := MatchEndpoint(path, method, l.config.EndpointConfigs); ep != nil {
		if ep.Limit == 0 {
			// Unlimited endpoint.
			return true, Info{Allowed: true}
		}
		limit = ep.Limit
		window = ep.Window
		burst = ep.Burst
		if burst == 0 {
			burst = limit
		}
	}

	key := clientID + "|" + method + "|" + path
	bucket := l.bucket(key, burst, float64(limit)/window.Seconds())

	allowed := bucket.allow()
	remaining, reset := bucket.status()
	info := Info{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		info.RetryAfter = time.Until(reset)
		if info.RetryAfter < 0 {
			info.RetryAfter = 0
		}
	}
	return allowed, info
}

func (l *Limiter) bucket(key string, capacity int, refillRate float64) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = newTokenBucket(capacity, refillRate)
		l.buckets[key] = b
	}
	l.lastAccess[key] = time.Now()
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup drops buckets idle for more than two cleanup intervals.
func (l *Limiter) cleanup() {
	cutoff := time.Now().Add(-2 * l.config.CleanupInterval)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
