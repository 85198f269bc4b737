package motion

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func uniformFrame(v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 320, 240))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// movedFrame paints a bright block over a dark background, offset by dx so
// consecutive frames show real movement.
func movedFrame(dx int) *image.Gray {
	img := uniformFrame(20)
	for y := 60; y < 180; y++ {
		for x := 60 + dx; x < 180+dx; x++ {
			img.SetGray(x, y, color.Gray{Y: 230})
		}
	}
	return img
}

// TestGateColdStart verifies the first frame of a camera always processes.
func TestGateColdStart(t *testing.T) {
	g := NewGate()
	if !g.ShouldProcess("cam-1", uniformFrame(20), 0.02) {
		t.Error("Expected first frame to process")
	}
}

// TestGateStaticScene verifies an unchanged scene is gated off.
func TestGateStaticScene(t *testing.T) {
	g := NewGate()
	g.ShouldProcess("cam-1", uniformFrame(20), 0.02)

	if g.ShouldProcess("cam-1", uniformFrame(20), 0.02) {
		t.Error("Expected identical frame to be gated")
	}
	// Small uniform brightness drift stays under the pixel delta.
	if g.ShouldProcess("cam-1", uniformFrame(30), 0.02) {
		t.Error("Expected minor brightness drift to be gated")
	}
}

// TestGateDetectsMotion verifies a moved object exceeds the threshold.
func TestGateDetectsMotion(t *testing.T) {
	g := NewGate()
	g.ShouldProcess("cam-1", movedFrame(0), 0.02)

	if !g.ShouldProcess("cam-1", movedFrame(40), 0.02) {
		t.Error("Expected moved block to trigger processing")
	}
}

// TestGateAlwaysUpdatesStoredFrame verifies the comparison baseline advances
// even when a frame is gated, so slow drift eventually stops triggering.
func TestGateAlwaysUpdatesStoredFrame(t *testing.T) {
	g := NewGate()
	g.ShouldProcess("cam-1", movedFrame(0), 0.02)

	// A gated frame becomes the new baseline: comparing the next frame
	// against it, not against the original, keeps the state fresh.
	g.ShouldProcess("cam-1", movedFrame(1), 0.5)
	if g.ShouldProcess("cam-1", movedFrame(1), 0.02) {
		t.Error("Expected frame identical to previous (gated) frame to be gated")
	}
}

// TestGatePerCameraState verifies cameras do not share stored frames.
func TestGatePerCameraState(t *testing.T) {
	g := NewGate()
	g.ShouldProcess("cam-1", uniformFrame(20), 0.02)

	if !g.ShouldProcess("cam-2", uniformFrame(20), 0.02) {
		t.Error("Expected cold start for a different camera")
	}
}

// TestGateInvalidate verifies invalidation restores cold-start behavior.
func TestGateInvalidate(t *testing.T) {
	g := NewGate()
	g.ShouldProcess("cam-1", uniformFrame(20), 0.02)
	g.Invalidate("cam-1")

	if !g.ShouldProcess("cam-1", uniformFrame(20), 0.02) {
		t.Error("Expected cold start after invalidation")
	}
}

// TestGateSweepIdle verifies idle camera state is collected.
func TestGateSweepIdle(t *testing.T) {
	g := NewGate()
	g.ShouldProcess("cam-1", uniformFrame(20), 0.02)
	g.ShouldProcess("cam-2", uniformFrame(20), 0.02)

	g.mu.Lock()
	g.cameras["cam-1"].lastSeen = time.Now().Add(-10 * time.Minute)
	g.mu.Unlock()

	if removed := g.SweepIdle(5 * time.Minute); removed != 1 {
		t.Errorf("Expected 1 entry swept, got %d", removed)
	}
	if !g.ShouldProcess("cam-1", uniformFrame(20), 0.02) {
		t.Error("Expected cold start after sweep")
	}
	if g.ShouldProcess("cam-2", uniformFrame(20), 0.02) {
		t.Error("Expected cam-2 state to survive the sweep")
	}
}

// TestFrameHashStability verifies identical frames hash identically and
// visually different frames do not.
func TestFrameHashStability(t *testing.T) {
	a := FrameHash(movedFrame(0))
	b := FrameHash(movedFrame(0))
	c := FrameHash(movedFrame(60))

	if a != b {
		t.Error("Expected identical frames to produce the same hash")
	}
	if a == c {
		t.Error("Expected different frames to produce different hashes")
	}
}
