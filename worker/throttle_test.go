package worker

import "testing"

func TestThrottleAllowsUpToCapacity(t *testing.T) {
	th := NewThrottle(3, 0) // no refill within the test's timeframe
	for i := 0; i < 3; i++ {
		if !th.Allow() {
			t.Fatalf("Allow() denied on attempt %d, want allowed (capacity 3)", i)
		}
	}
	if th.Allow() {
		t.Fatal("Allow() should deny once capacity is exhausted")
	}
}

func TestThrottleZeroCapacityAlwaysDenies(t *testing.T) {
	th := NewThrottle(0, 1)
	if th.Allow() {
		t.Fatal("a zero-capacity throttle should never allow a restart")
	}
}
