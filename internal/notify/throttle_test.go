package notify

import (
	"testing"
	"time"
)

// throttleAt builds a throttle with a controllable clock
func throttleAt(cooldown time.Duration, burstCap int) (*AlertThrottle, *time.Time) {
	th := NewAlertThrottle(cooldown, burstCap)
	now := time.Now()
	th.now = func() time.Time { return now }
	return th, &now
}

// TestThrottleCooldown verifies at most one alert per cooldown window.
func TestThrottleCooldown(t *testing.T) {
	th, now := throttleAt(10*time.Second, 5)

	if !th.Allow("inc-1") {
		t.Fatal("Expected first alert to pass")
	}
	if th.Allow("inc-1") {
		t.Error("Expected alert inside cooldown to be throttled")
	}

	*now = now.Add(9 * time.Second)
	if th.Allow("inc-1") {
		t.Error("Expected alert at 9s to be throttled")
	}

	*now = now.Add(2 * time.Second)
	if !th.Allow("inc-1") {
		t.Error("Expected alert after cooldown to pass")
	}
}

// TestThrottleBurstCap verifies the per-key cap with the every-tenth
// overflow escape hatch.
func TestThrottleBurstCap(t *testing.T) {
	th, now := throttleAt(10*time.Second, 5)

	// Burn through the cap, stepping past the cooldown each time.
	for i := 0; i < 5; i++ {
		if !th.Allow("inc-1") {
			t.Fatalf("Expected alert %d to pass under the cap", i+1)
		}
		*now = now.Add(11 * time.Second)
	}

	// Capped: attempts 6..9 are denied even outside the cooldown.
	denied := 0
	for i := 0; i < 4; i++ {
		if th.Allow("inc-1") {
			t.Errorf("Expected capped attempt %d to be throttled", i+6)
		} else {
			denied++
		}
		*now = now.Add(11 * time.Second)
	}
	if denied != 4 {
		t.Fatalf("Expected 4 denials, got %d", denied)
	}

	// Attempt 10 is the periodic heartbeat.
	if !th.Allow("inc-1") {
		t.Error("Expected every tenth attempt to pass after the cap")
	}
	*now = now.Add(11 * time.Second)

	// Attempts 11..19 denied, attempt 20 passes again.
	for i := 11; i <= 19; i++ {
		if th.Allow("inc-1") {
			t.Errorf("Expected attempt %d to be throttled", i)
		}
		*now = now.Add(11 * time.Second)
	}
	if !th.Allow("inc-1") {
		t.Error("Expected attempt 20 to pass")
	}
}

// TestThrottleIndependentKeys verifies keys do not share state.
func TestThrottleIndependentKeys(t *testing.T) {
	th, _ := throttleAt(10*time.Second, 5)

	if !th.Allow("inc-1") {
		t.Fatal("Expected inc-1 to pass")
	}
	if !th.Allow("inc-2") {
		t.Error("Expected inc-2 to pass despite inc-1 cooldown")
	}
}

// TestThrottleReset verifies reset clears a key completely.
func TestThrottleReset(t *testing.T) {
	th, _ := throttleAt(10*time.Second, 5)

	th.Allow("inc-1")
	if th.Allow("inc-1") {
		t.Fatal("Expected cooldown before reset")
	}

	th.Reset("inc-1")
	if !th.Allow("inc-1") {
		t.Error("Expected fresh state after reset")
	}
}

// TestThrottleResetAll verifies the global reset clears every key and
// reports how many it dropped.
func TestThrottleResetAll(t *testing.T) {
	th, _ := throttleAt(10*time.Second, 5)

	th.Allow("inc-1")
	th.Allow("inc-2")
	th.Allow("inc-3")

	if cleared := th.ResetAll(); cleared != 3 {
		t.Fatalf("Expected 3 keys cleared, got %d", cleared)
	}
	if !th.Allow("inc-1") || !th.Allow("inc-2") {
		t.Error("Expected all keys fresh after global reset")
	}
	if cleared := th.ResetAll(); cleared != 2 {
		t.Errorf("Expected 2 keys cleared on second reset, got %d", cleared)
	}
}

// TestThrottleSweep verifies idle entries are collected.
func TestThrottleSweep(t *testing.T) {
	th, now := throttleAt(10*time.Second, 5)

	th.Allow("old")
	*now = now.Add(time.Hour)
	th.Allow("fresh")

	if removed := th.Sweep(30 * time.Minute); removed != 1 {
		t.Errorf("Expected 1 entry swept, got %d", removed)
	}
	if !th.Allow("old") {
		t.Error("Expected swept key to behave like a fresh one")
	}
}

// TestThrottleDefaults verifies zero constructor arguments select defaults.
func TestThrottleDefaults(t *testing.T) {
	th := NewAlertThrottle(0, 0)
	if th.cooldown != defaultCooldown {
		t.Errorf("Expected default cooldown, got %v", th.cooldown)
	}
	if th.burstCap != defaultBurstCap {
		t.Errorf("Expected default burst cap, got %d", th.burstCap)
	}
}
