// Package ratelimit implements the per-caller scan quota: a fixed window of
// slots where a single scan costs one slot and a comparison atomically costs
// two.
package ratelimit

import (
	"sync"
	"time"

	"github.com/Arjun0606/cabbageseo-sub003/internal/config"
)

// Limiter grants or denies slot consumption for a caller key.
type Limiter interface {
	// TryConsume atomically takes the given number of slots from the key's
	// current window. It returns false and leaves the window untouched when
	// not enough capacity remains, so multi-slot requests never partially
	// consume.
	TryConsume(key string, slots int) bool
}

// Options configures a limiter.
type Options struct {
	// Limit is the number of slots available per window.
	Limit int
	// Window is the fixed window length. The window is anchored at the
	// caller's first consumption, not aligned to wall-clock hours.
	Window time.Duration
	// Now allows tests to control time. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions builds limiter Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Limit:  cfg.RateLimit.Limit,
		Window: cfg.RateLimit.Window,
	}
}

// window tracks one caller's consumption. A fresh window replaces the old
// one on rollover; counts never carry over.
type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is an in-process Limiter. State lives for the process
// lifetime only.
type MemoryLimiter struct {
	mu      sync.Mutex
	options Options
	windows map[string]*window
}

// NewMemory creates an in-memory limiter.
func NewMemory(options Options) *MemoryLimiter {
	if options.Limit <= 0 {
		options.Limit = 5
	}
	if options.Window <= 0 {
		options.Window = time.Hour
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &MemoryLimiter{
		options: options,
		windows: make(map[string]*window),
	}
}

// TryConsume implements Limiter.
func (m *MemoryLimiter) TryConsume(key string, slots int) bool {
	if slots < 1 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.options.Now()
	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(m.options.Window)}
		m.windows[key] = w
	}

	if w.count+slots > m.options.Limit {
		return false
	}
	w.count += slots

	return true
}

var _ Limiter = (*MemoryLimiter)(nil)
