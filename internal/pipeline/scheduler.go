package pipeline

import (
	"bytes"
	"image/jpeg"
	"log"
	"sync"
	"time"

	"vigil/internal/motion"
)

// Scheduler decides, per camera, which captured frames are submitted to the
// shared detection queue. It applies the configured skip interval, consults
// the motion gate, deduplicates visually identical frames by perceptual hash
// and tags eligible frames with the camera's priority. Capture never blocks
// on detection backpressure: a full queue drops the frame.
type Scheduler struct {
	queue *PriorityQueue
	gate  MotionGate
	bus   *EventBus

	mu      sync.RWMutex
	cameras map[string]*cameraSched
}

type cameraSched struct {
	mu         sync.Mutex
	cfg        *EffectiveConfig
	counter    uint64
	lastHash   string
	hashSkips  int
	lastResult *DetectionResult
	lastSeen   time.Time
	stats      CameraStats
}

// NewScheduler creates a scheduler feeding the given queue
func NewScheduler(queue *PriorityQueue, gate MotionGate, bus *EventBus) *Scheduler {
	return &Scheduler{
		queue:   queue,
		gate:    gate,
		bus:     bus,
		cameras: make(map[string]*cameraSched),
	}
}

// Register adds scheduling state for a camera
func (s *Scheduler) Register(cfg *EffectiveConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cameras[cfg.CameraID] = &cameraSched{
		cfg: cfg,
		stats: CameraStats{
			CameraID: cfg.CameraID,
		},
	}
}

// Unregister removes scheduling state and motion cache for a camera
func (s *Scheduler) Unregister(cameraID string) {
	s.mu.Lock()
	delete(s.cameras, cameraID)
	s.mu.Unlock()

	s.gate.Invalidate(cameraID)
}

// OnFrame handles one captured frame. Called from the camera's single
// reader goroutine, so per-camera state needs no external serialization.
func (s *Scheduler) OnFrame(frame *FrameData) {
	s.mu.RLock()
	cam, exists := s.cameras[frame.CameraID]
	s.mu.RUnlock()

	if !exists {
		return
	}

	cam.mu.Lock()
	defer cam.mu.Unlock()

	cam.counter++
	cam.lastSeen = frame.Timestamp
	cam.stats.FramesCaptured++
	cam.stats.LastFrameTime = frame.Timestamp.Unix()

	// Skip interval: one of every K captured frames is detection-eligible
	if k := cam.cfg.SkipInterval; k > 1 && cam.counter%uint64(k) != 0 {
		cam.stats.FramesSkipped++
		return
	}

	img, err := jpeg.Decode(bytes.NewReader(frame.Data))
	if err != nil {
		log.Printf("[Scheduler] Camera %s: undecodable frame %d: %v", frame.CameraID, frame.Seq, err)
		return
	}

	// Static scene with a prior result: reuse the last detection set for
	// overlay purposes and skip AI entirely
	if !s.gate.ShouldProcess(frame.CameraID, img, cam.cfg.MotionThreshold) && cam.lastResult != nil {
		cam.stats.MotionSkips++
		s.publishSkipped(cam, frame, "no_motion")
		return
	}

	hash := motion.FrameHash(img)
	if hash == cam.lastHash && cam.hashSkips < cam.cfg.MaxHashSkips {
		cam.hashSkips++
		cam.stats.HashSkips++
		s.publishSkipped(cam, frame, "duplicate_frame")
		return
	}
	cam.hashSkips = 0
	cam.lastHash = hash

	task := &FrameTask{
		CameraID:   frame.CameraID,
		Frame:      frame,
		Priority:   cam.cfg.Priority,
		EnqueuedAt: time.Now(),
		Hash:       hash,
	}

	if err := s.queue.Push(task); err != nil {
		cam.stats.FramesDropped++
		if cam.stats.FramesDropped%50 == 1 {
			log.Printf("[Scheduler] Camera %s: dropping frames, queue saturated (%d dropped)",
				frame.CameraID, cam.stats.FramesDropped)
		}
		return
	}
	cam.stats.FramesEnqueued++
}

// publishSkipped re-emits the camera's last known detections for overlay
// rendering without a new detection pass. Caller holds cam.mu.
func (s *Scheduler) publishSkipped(cam *cameraSched, frame *FrameData, reason string) {
	result := &DetectionResult{
		CameraID:    frame.CameraID,
		FrameSeq:    frame.Seq,
		Timestamp:   frame.Timestamp,
		FrameWidth:  frame.Width,
		FrameHeight: frame.Height,
		Skipped:     true,
		SkipReason:  reason,
	}
	if cam.lastResult != nil {
		result.Detections = cam.lastResult.Detections
	}
	s.bus.Publish(DetectionEvent{Result: result})
}

// OnLoopBoundary invalidates per-camera caches when a looped source
// restarts, so motion and hash state never leak across the restart
func (s *Scheduler) OnLoopBoundary(cameraID string, loop uint64) {
	s.mu.RLock()
	cam, exists := s.cameras[cameraID]
	s.mu.RUnlock()

	if !exists {
		return
	}

	cam.mu.Lock()
	cam.lastHash = ""
	cam.hashSkips = 0
	cam.lastResult = nil
	cam.stats.Loops++
	cam.mu.Unlock()

	s.gate.Invalidate(cameraID)
	s.bus.Publish(LoopBoundaryEvent{CameraID: cameraID, Loop: loop, Timestamp: time.Now()})
}

// OnResult records a completed (non-skipped) detection for a camera.
// The stored result backs overlay reuse for motion-gated frames.
func (s *Scheduler) OnResult(result *DetectionResult) {
	if result.Skipped {
		return
	}

	s.mu.RLock()
	cam, exists := s.cameras[result.CameraID]
	s.mu.RUnlock()

	if !exists {
		return
	}

	cam.mu.Lock()
	defer cam.mu.Unlock()

	cam.lastResult = result
	cam.stats.DetectionsTotal++
	n := float32(cam.stats.DetectionsTotal)
	cam.stats.AvgDetectMs = (cam.stats.AvgDetectMs*(n-1) + result.ProcessingMs) / n
}

// Config returns the effective config for a registered camera, or nil
func (s *Scheduler) Config(cameraID string) *EffectiveConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cam, exists := s.cameras[cameraID]; exists {
		return cam.cfg
	}
	return nil
}

// SetStatus records the camera's lifecycle status in its stats
func (s *Scheduler) SetStatus(cameraID, status string) {
	s.mu.RLock()
	cam, exists := s.cameras[cameraID]
	s.mu.RUnlock()

	if !exists {
		return
	}

	cam.mu.Lock()
	cam.stats.Status = status
	cam.mu.Unlock()
}

// Stats returns a copy of one camera's counters
func (s *Scheduler) Stats(cameraID string) *CameraStats {
	s.mu.RLock()
	cam, exists := s.cameras[cameraID]
	s.mu.RUnlock()

	if !exists {
		return nil
	}

	cam.mu.Lock()
	defer cam.mu.Unlock()

	stats := cam.stats
	return &stats
}

// AllStats returns counters for every registered camera
func (s *Scheduler) AllStats() []CameraStats {
	s.mu.RLock()
	cams := make([]*cameraSched, 0, len(s.cameras))
	for _, cam := range s.cameras {
		cams = append(cams, cam)
	}
	s.mu.RUnlock()

	all := make([]CameraStats, 0, len(cams))
	for _, cam := range cams {
		cam.mu.Lock()
		all = append(all, cam.stats)
		cam.mu.Unlock()
	}
	return all
}

// SweepStale clears hash and overlay caches for cameras idle longer than
// ttl. Registration survives; only cached frame state is dropped.
func (s *Scheduler) SweepStale(ttl time.Duration) int {
	s.mu.RLock()
	cams := make([]*cameraSched, 0, len(s.cameras))
	for _, cam := range s.cameras {
		cams = append(cams, cam)
	}
	s.mu.RUnlock()

	cutoff := time.Now().Add(-ttl)
	cleared := 0
	for _, cam := range cams {
		cam.mu.Lock()
		if !cam.lastSeen.IsZero() && cam.lastSeen.Before(cutoff) && (cam.lastHash != "" || cam.lastResult != nil) {
			cam.lastHash = ""
			cam.hashSkips = 0
			cam.lastResult = nil
			cleared++
		}
		cam.mu.Unlock()
	}
	return cleared
}
