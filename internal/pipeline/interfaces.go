package pipeline

import (
	"context"
	"errors"
	"image"
	"time"
)

// Sentinel errors for the frame pipeline
var (
	// ErrNoFrame signals a transient read failure; the reader loop counts
	// these and gives up after maxReadFailures in a row.
	ErrNoFrame = errors.New("pipeline: no frame available")
	// ErrSourceClosed signals a permanently closed source
	ErrSourceClosed = errors.New("pipeline: source closed")
	// ErrQueueFull signals the shared queue rejected a task (load shedding)
	ErrQueueFull = errors.New("pipeline: queue full")
	// ErrQueueClosed signals the shared queue was shut down
	ErrQueueClosed = errors.New("pipeline: queue closed")
)

// FrameSource abstracts one camera's media origin. Read blocks until a
// frame is available; a transient failure surfaces as ErrNoFrame, a closed
// source as ErrSourceClosed.
type FrameSource interface {
	Open() error
	Read() (*FrameData, error)
	Close() error
}

// Detector runs object detection on a frame. May be slow (hundreds of ms);
// invoked only from detection workers. Ready reports whether the backing
// model is loaded and reachable; Detect before readiness fails fast.
type Detector interface {
	Ready() bool
	Detect(ctx context.Context, frame *FrameData, cfg *EffectiveConfig) ([]Detection, error)
	Close() error
}

// MotionGate is the cheap pre-filter consulted before expensive detection.
// ShouldProcess is deterministic given the stored previous frame and inputs,
// and always updates the stored frame regardless of outcome.
type MotionGate interface {
	ShouldProcess(cameraID string, img image.Image, threshold float32) bool
	Invalidate(cameraID string)
	SweepIdle(ttl time.Duration) int
}

// ResultSink receives every completed detection result (empty or not).
// Sink failures are logged by the router and never block other sinks.
type ResultSink interface {
	Name() string
	OnResult(result *DetectionResult) error
}

// IncidentHandler receives results with non-empty detections
type IncidentHandler interface {
	HandleDetections(result *DetectionResult)
}

// SourceFactory builds a frame source for a camera config. onLoop fires
// when a looped file source wraps to position zero and may be nil.
type SourceFactory func(cfg *CameraConfig, onLoop func(loop uint64)) FrameSource

// EventHandler receives pipeline events from the bus
type EventHandler interface {
	OnEvent(event Event)
}

// EventHandlerFunc adapts a function to the EventHandler interface
type EventHandlerFunc func(event Event)

func (f EventHandlerFunc) OnEvent(event Event) { f(event) }

// QueueStats contains shared-queue counters
type QueueStats struct {
	Depth    int
	Capacity int
	Pushed   uint64
	Popped   uint64
	Dropped  uint64 // Rejected because the queue was full
	Purged   uint64 // Removed on camera cancellation
}

// CameraStats contains per-camera scheduling and capture counters
type CameraStats struct {
	CameraID        string
	FramesCaptured  uint64
	FramesSkipped   uint64 // Dropped by the skip interval
	MotionSkips     uint64 // Skipped by the motion gate
	HashSkips       uint64 // Skipped as duplicate frames
	FramesEnqueued  uint64
	FramesDropped   uint64 // Rejected by the full queue
	DetectionsTotal uint64
	AvgDetectMs     float32
	LastFrameTime   int64 // Unix timestamp
	Loops           uint64
	Status          string
}

// PipelineStats aggregates queue and per-camera counters
type PipelineStats struct {
	Queue   QueueStats
	Cameras []CameraStats
	Workers int
}

// Manager orchestrates the complete pipeline: per-camera reader loops, the
// shared priority queue and the worker pool.
type PipelineManager interface {
	StartCamera(cfg *CameraConfig) error
	StopCamera(cameraID string) error
	CameraStats(cameraID string) *CameraStats
	Stats() *PipelineStats
	Subscribe(handler EventHandler) func()
	Close() error
}
