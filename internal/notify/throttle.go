package notify

import (
	"sync"
	"time"
)

const (
	defaultCooldown = 10 * time.Second
	defaultBurstCap = 5
	overflowEvery   = 10
)

// AlertThrottle rate-limits alert emission per key (one key per incident).
// A key gets at most one alert per cooldown window and at most burstCap
// alerts total; after the cap only every tenth attempt passes, so a
// long-running incident still produces a periodic heartbeat alert.
type AlertThrottle struct {
	mu       sync.Mutex
	cooldown time.Duration
	burstCap int
	state    map[string]*throttleState
	now      func() time.Time
}

type throttleState struct {
	allowed  int
	attempts int
	last     time.Time
}

// NewAlertThrottle creates a throttle with the given cooldown and burst
// cap. Zero values select the defaults (10s, 5).
func NewAlertThrottle(cooldown time.Duration, burstCap int) *AlertThrottle {
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	if burstCap <= 0 {
		burstCap = defaultBurstCap
	}
	return &AlertThrottle{
		cooldown: cooldown,
		burstCap: burstCap,
		state:    make(map[string]*throttleState),
		now:      time.Now,
	}
}

// Allow reports whether an alert for key may be emitted now and records
// the attempt either way.
func (t *AlertThrottle) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.state[key]
	if !ok {
		s = &throttleState{}
		t.state[key] = s
	}

	s.attempts++
	now := t.now()

	if s.allowed > 0 && now.Sub(s.last) < t.cooldown {
		return false
	}
	if s.allowed >= t.burstCap && s.attempts%overflowEvery != 0 {
		return false
	}

	s.allowed++
	s.last = now
	return true
}

// Reset clears the throttle state for one key
func (t *AlertThrottle) Reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.state, key)
}

// ResetAll clears all throttle state and returns how many keys were
// dropped. The next alert for any incident passes immediately.
func (t *AlertThrottle) ResetAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	cleared := len(t.state)
	t.state = make(map[string]*throttleState)
	return cleared
}

// Sweep drops entries idle longer than ttl and returns how many were removed
func (t *AlertThrottle) Sweep(ttl time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-ttl)
	removed := 0
	for key, s := range t.state {
		if s.last.Before(cutoff) {
			delete(t.state, key)
			removed++
		}
	}
	return removed
}
