package motion

import (
	"image"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
)

const (
	// Frames are compared at a fixed small size regardless of source resolution
	gateWidth  = 160
	gateHeight = 120
	// Per-pixel intensity delta that counts as "changed"
	pixelDelta = 25
)

// Gate is the cheap per-camera pre-filter ahead of the expensive detector.
// It downscales each frame to a small grayscale image, blurs it to suppress
// sensor noise and compares it against the previous stored frame; full
// detection runs only when the changed-pixel fraction exceeds the threshold.
type Gate struct {
	mu      sync.Mutex
	cameras map[string]*cameraState
}

type cameraState struct {
	prev     []uint8
	lastSeen time.Time
}

// NewGate creates a motion gate with no stored frames
func NewGate() *Gate {
	return &Gate{
		cameras: make(map[string]*cameraState),
	}
}

// ShouldProcess decides whether a frame warrants full detection. Returns
// true on cold start (no stored frame for the camera) or when the changed
// fraction exceeds threshold. The stored frame is always replaced, so the
// decision is a pure function of stored state and inputs.
func (g *Gate) ShouldProcess(cameraID string, img image.Image, threshold float32) bool {
	gray := downsample(img)
	blurred := boxBlur(gray, gateWidth, gateHeight)

	g.mu.Lock()
	defer g.mu.Unlock()

	state, exists := g.cameras[cameraID]
	if !exists || len(state.prev) != len(blurred) {
		g.cameras[cameraID] = &cameraState{prev: blurred, lastSeen: time.Now()}
		return true
	}

	changed := 0
	for i := range blurred {
		d := int(blurred[i]) - int(state.prev[i])
		if d < 0 {
			d = -d
		}
		if d > pixelDelta {
			changed++
		}
	}

	state.prev = blurred
	state.lastSeen = time.Now()

	return float32(changed)/float32(len(blurred)) > threshold
}

// Invalidate drops the stored frame for a camera. Called on loop boundaries
// and camera removal so stale state never leaks across a restart.
func (g *Gate) Invalidate(cameraID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.cameras, cameraID)
}

// SweepIdle removes stored frames for cameras idle longer than ttl.
// Returns the number of entries removed.
func (g *Gate) SweepIdle(ttl time.Duration) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, state := range g.cameras {
		if state.lastSeen.Before(cutoff) {
			delete(g.cameras, id)
			removed++
		}
	}
	return removed
}

// downsample scales a frame to the fixed gate size and converts to grayscale
func downsample(img image.Image) []uint8 {
	small := image.NewGray(image.Rect(0, 0, gateWidth, gateHeight))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return small.Pix
}

// boxBlur applies a 3x3 mean filter, leaving the one-pixel border unchanged
func boxBlur(pix []uint8, w, h int) []uint8 {
	out := make([]uint8, len(pix))
	copy(out, pix)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sum += int(pix[(y+dy)*w+(x+dx)])
				}
			}
			out[y*w+x] = uint8(sum / 9)
		}
	}
	return out
}
