package worker

import "time"

// Throttle is a token-bucket rate limiter bounding how often the UI may
// restart a crashed worker (spec.md §5 "Lifecycle": "restarts the worker
// ... subject to a token-bucket throttle to avoid crash loops";
// SPEC_FULL.md supplemental feature 5).
type Throttle struct {
	capacity float64
	tokens   float64
	perSec   float64
	last     time.Time
}

// NewThrottle builds a throttle holding at most capacity tokens, refilled
// at perSec tokens per second, starting full.
func NewThrottle(capacity int, perSec float64) *Throttle {
	return &Throttle{capacity: float64(capacity), tokens: float64(capacity), perSec: perSec, last: time.Now()}
}

// Allow reports whether a restart attempt may proceed now, consuming one
// token if so.
func (t *Throttle) Allow() bool {
	now := time.Now()
	t.tokens += now.Sub(t.last).Seconds() * t.perSec
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.last = now
	if t.tokens < 1 {
		return false
	}
	t.tokens--
	return true
}
