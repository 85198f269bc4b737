package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"
)

// stubGate is a motion gate with a scripted answer
type stubGate struct {
	process     bool
	invalidated []string
}

func (g *stubGate) ShouldProcess(cameraID string, img image.Image, threshold float32) bool {
	return g.process
}

func (g *stubGate) Invalidate(cameraID string) {
	g.invalidated = append(g.invalidated, cameraID)
}

func (g *stubGate) SweepIdle(ttl time.Duration) int { return 0 }

// testJPEG encodes a small frame whose top-left corner carries the seed, so
// different seeds produce different perceptual hashes.
func testJPEG(t *testing.T, seed uint8) []byte {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 64, 48))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.SetGray(x, y, color.Gray{Y: seed})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to encode test frame: %v", err)
	}
	return buf.Bytes()
}

func testConfig(cameraID string, skipInterval int) *EffectiveConfig {
	return &EffectiveConfig{
		CameraID:        cameraID,
		Priority:        PriorityNormal,
		SkipInterval:    skipInterval,
		MotionThreshold: 0.02,
		MaxHashSkips:    10,
	}
}

func feed(s *Scheduler, cameraID string, seq uint64, data []byte) {
	s.OnFrame(&FrameData{
		CameraID:  cameraID,
		Data:      data,
		Seq:       seq,
		Timestamp: time.Now(),
	})
}

// TestSchedulerSkipInterval verifies that exactly one of every K captured
// frames reaches the queue when the scene always has motion.
func TestSchedulerSkipInterval(t *testing.T) {
	queue := NewPriorityQueue(100)
	defer queue.Close()
	s := NewScheduler(queue, &stubGate{process: true}, NewEventBus())
	s.Register(testConfig("cam-1", 3))

	// Distinct frames so hash dedup never interferes.
	for i := uint64(1); i <= 9; i++ {
		feed(s, "cam-1", i, testJPEG(t, uint8(i*20)))
	}

	stats := s.Stats("cam-1")
	if stats.FramesCaptured != 9 {
		t.Errorf("Expected 9 captured, got %d", stats.FramesCaptured)
	}
	if stats.FramesSkipped != 6 {
		t.Errorf("Expected 6 interval skips, got %d", stats.FramesSkipped)
	}
	if stats.FramesEnqueued != 3 {
		t.Errorf("Expected 3 enqueued, got %d", stats.FramesEnqueued)
	}
	if queue.Len() != 3 {
		t.Errorf("Expected queue depth 3, got %d", queue.Len())
	}
}

// TestSchedulerHashDedup verifies that repeated identical frames are skipped
// as duplicates and a forced detection fires after MaxHashSkips in a row.
func TestSchedulerHashDedup(t *testing.T) {
	queue := NewPriorityQueue(100)
	defer queue.Close()
	s := NewScheduler(queue, &stubGate{process: true}, NewEventBus())

	cfg := testConfig("cam-1", 1)
	cfg.MaxHashSkips = 4
	s.Register(cfg)

	same := testJPEG(t, 200)
	for i := uint64(1); i <= 6; i++ {
		feed(s, "cam-1", i, same)
	}

	stats := s.Stats("cam-1")
	// Frame 1 enqueues, frames 2-5 are duplicate skips, frame 6 hits the
	// forced-detection ceiling and enqueues again.
	if stats.HashSkips != 4 {
		t.Errorf("Expected 4 hash skips, got %d", stats.HashSkips)
	}
	if stats.FramesEnqueued != 2 {
		t.Errorf("Expected 2 enqueued (first + forced), got %d", stats.FramesEnqueued)
	}

	// The forced pass resets the consecutive-skip counter.
	feed(s, "cam-1", 7, same)
	if s.Stats("cam-1").HashSkips != 5 {
		t.Errorf("Expected skip counter to resume after forced pass, got %d", s.Stats("cam-1").HashSkips)
	}
}

// TestSchedulerMotionGateReuse verifies that a static scene with a prior
// result is skipped and the last detections are re-published for overlays.
func TestSchedulerMotionGateReuse(t *testing.T) {
	queue := NewPriorityQueue(100)
	defer queue.Close()
	bus := NewEventBus()
	defer bus.Close()

	gate := &stubGate{process: true}
	s := NewScheduler(queue, gate, bus)
	s.Register(testConfig("cam-1", 1))

	var skipped []*DetectionResult
	bus.SubscribeKind(EventDetection, EventHandlerFunc(func(evt Event) {
		de := evt.(DetectionEvent)
		if de.Result.Skipped {
			skipped = append(skipped, de.Result)
		}
	}))

	// First frame goes through and produces a result.
	feed(s, "cam-1", 1, testJPEG(t, 10))
	s.OnResult(&DetectionResult{
		CameraID:  "cam-1",
		FrameSeq:  1,
		Timestamp: time.Now(),
		Detections: []Detection{
			{Class: "pistol", Confidence: 0.9, Severity: SeverityCritical},
		},
		ProcessingMs: 40,
	})

	// Scene goes static: the gate blocks and the cached detections ride along.
	gate.process = false
	feed(s, "cam-1", 2, testJPEG(t, 30))

	if len(skipped) != 1 {
		t.Fatalf("Expected 1 skipped result, got %d", len(skipped))
	}
	if skipped[0].SkipReason != "no_motion" {
		t.Errorf("Expected skip reason no_motion, got %q", skipped[0].SkipReason)
	}
	if len(skipped[0].Detections) != 1 || skipped[0].Detections[0].Class != "pistol" {
		t.Errorf("Expected cached pistol detection on skipped frame, got %+v", skipped[0].Detections)
	}

	stats := s.Stats("cam-1")
	if stats.MotionSkips != 1 {
		t.Errorf("Expected 1 motion skip, got %d", stats.MotionSkips)
	}
}

// TestSchedulerMotionGateColdStart verifies that a gated frame with no prior
// result still goes to detection; there is nothing to reuse yet.
func TestSchedulerMotionGateColdStart(t *testing.T) {
	queue := NewPriorityQueue(100)
	defer queue.Close()
	s := NewScheduler(queue, &stubGate{process: false}, NewEventBus())
	s.Register(testConfig("cam-1", 1))

	feed(s, "cam-1", 1, testJPEG(t, 10))

	if s.Stats("cam-1").FramesEnqueued != 1 {
		t.Errorf("Expected cold-start frame to enqueue, got %+v", s.Stats("cam-1"))
	}
}

// TestSchedulerLoopBoundary verifies that a source loop restart clears hash
// state, drops the cached result and invalidates the motion gate.
func TestSchedulerLoopBoundary(t *testing.T) {
	queue := NewPriorityQueue(100)
	defer queue.Close()
	gate := &stubGate{process: true}
	s := NewScheduler(queue, gate, NewEventBus())
	s.Register(testConfig("cam-1", 1))

	same := testJPEG(t, 120)
	feed(s, "cam-1", 1, same)

	s.OnLoopBoundary("cam-1", 1)

	if len(gate.invalidated) != 1 || gate.invalidated[0] != "cam-1" {
		t.Errorf("Expected gate invalidation for cam-1, got %v", gate.invalidated)
	}

	// After the boundary, the identical frame is not a duplicate anymore.
	feed(s, "cam-1", 2, same)
	stats := s.Stats("cam-1")
	if stats.HashSkips != 0 {
		t.Errorf("Expected no hash skip after loop boundary, got %d", stats.HashSkips)
	}
	if stats.FramesEnqueued != 2 {
		t.Errorf("Expected both frames enqueued, got %d", stats.FramesEnqueued)
	}
	if stats.Loops != 1 {
		t.Errorf("Expected 1 loop counted, got %d", stats.Loops)
	}
}

// TestSchedulerQueueSaturation verifies that frames are dropped, not
// blocked, when the shared queue is full.
func TestSchedulerQueueSaturation(t *testing.T) {
	queue := NewPriorityQueue(1)
	defer queue.Close()
	s := NewScheduler(queue, &stubGate{process: true}, NewEventBus())
	s.Register(testConfig("cam-1", 1))

	feed(s, "cam-1", 1, testJPEG(t, 10))
	feed(s, "cam-1", 2, testJPEG(t, 60))

	stats := s.Stats("cam-1")
	if stats.FramesEnqueued != 1 {
		t.Errorf("Expected 1 enqueued, got %d", stats.FramesEnqueued)
	}
	if stats.FramesDropped != 1 {
		t.Errorf("Expected 1 dropped, got %d", stats.FramesDropped)
	}
}

// TestSchedulerAvgProcessingTime verifies the incremental mean over
// completed detections.
func TestSchedulerAvgProcessingTime(t *testing.T) {
	queue := NewPriorityQueue(100)
	defer queue.Close()
	s := NewScheduler(queue, &stubGate{process: true}, NewEventBus())
	s.Register(testConfig("cam-1", 1))

	for _, ms := range []float32{10, 20, 30} {
		s.OnResult(&DetectionResult{CameraID: "cam-1", ProcessingMs: ms})
	}

	stats := s.Stats("cam-1")
	if stats.DetectionsTotal != 3 {
		t.Fatalf("Expected 3 detections, got %d", stats.DetectionsTotal)
	}
	if stats.AvgDetectMs < 19.99 || stats.AvgDetectMs > 20.01 {
		t.Errorf("Expected average 20ms, got %f", stats.AvgDetectMs)
	}
}

// TestSchedulerUnknownCamera verifies frames for unregistered cameras are
// ignored without touching the queue.
func TestSchedulerUnknownCamera(t *testing.T) {
	queue := NewPriorityQueue(100)
	defer queue.Close()
	s := NewScheduler(queue, &stubGate{process: true}, NewEventBus())

	feed(s, "ghost", 1, testJPEG(t, 10))
	if queue.Len() != 0 {
		t.Errorf("Expected empty queue, got depth %d", queue.Len())
	}
}
