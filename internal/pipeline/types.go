package pipeline

import (
	"time"
)

// FramePriority orders frames in the shared detection queue.
// Lower values are served first.
type FramePriority int

const (
	// PriorityHigh - pre-alerted or VIP-zone cameras, drained first
	PriorityHigh FramePriority = 1
	// PriorityNormal - default priority class
	PriorityNormal FramePriority = 2
	// PriorityLow - background monitoring
	PriorityLow FramePriority = 3
)

// Severity is the coarse criticality tier derived from a detected class
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// SeverityForClass maps a detector class name to its severity tier.
// Unknown classes default to high so a new model class is never silently
// downgraded.
func SeverityForClass(class string) Severity {
	switch class {
	case "pistol", "rifle", "weapon":
		return SeverityCritical
	case "knife":
		return SeverityHigh
	case "suspicious_object", "other":
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// FrameData represents a captured video frame
type FrameData struct {
	CameraID  string    // Camera identifier
	Data      []byte    // JPEG frame data
	Seq       uint64    // Frame sequence number
	Timestamp time.Time // Capture timestamp
	Width     int       // Frame width (if known)
	Height    int       // Frame height (if known)
}

// BBox represents a bounding box in source-frame pixel coordinates
type BBox struct {
	X1 float32 `json:"x1"` // Left
	Y1 float32 `json:"y1"` // Top
	X2 float32 `json:"x2"` // Right
	Y2 float32 `json:"y2"` // Bottom
}

// Detection represents a single detected object
type Detection struct {
	Class      string   `json:"class"`      // Detector class name (pistol, knife, ...)
	Confidence float32  `json:"confidence"` // Normalized confidence [0-1]
	BBox       BBox     `json:"bbox"`       // Box in source-frame coordinates
	Severity   Severity `json:"severity"`   // Criticality tier for this class
	Kind       string   `json:"kind"`       // Detection type tag (e.g. "weapon")
}

// FrameTask is one unit of scheduled detection work. The scheduler owns it
// until it is enqueued; ownership transfers to whichever worker dequeues it.
type FrameTask struct {
	CameraID   string
	Frame      *FrameData
	Priority   FramePriority
	EnqueuedAt time.Time
	Hash       string // Perceptual hash, empty if not computed
}

// DetectionResult contains the outcome of one detection pass
type DetectionResult struct {
	CameraID     string      `json:"camera_id"`
	FrameSeq     uint64      `json:"frame_seq"`
	Timestamp    time.Time   `json:"timestamp"`
	Detections   []Detection `json:"detections"`
	ProcessingMs float32     `json:"processing_ms"`
	ImageData    []byte      `json:"-"`                     // Annotated frame (optional, not serialized)
	FrameWidth   int         `json:"frame_width,omitempty"`
	FrameHeight  int         `json:"frame_height,omitempty"`
	Skipped      bool        `json:"skipped,omitempty"`     // Frame skipped before detection
	SkipReason   string      `json:"skip_reason,omitempty"` // "no_motion", "duplicate_frame", ...
	Error        string      `json:"error,omitempty"`       // Detector failure, detections empty
}

// TopSeverity returns the most critical severity present in the result,
// or empty string when there are no detections.
func (r *DetectionResult) TopSeverity() Severity {
	rank := func(s Severity) int {
		switch s {
		case SeverityCritical:
			return 0
		case SeverityHigh:
			return 1
		case SeverityMedium:
			return 2
		default:
			return 3
		}
	}

	var top Severity
	for _, d := range r.Detections {
		if top == "" || rank(d.Severity) < rank(top) {
			top = d.Severity
		}
	}
	return top
}

// ROI restricts detection to a sub-region of the source frame,
// in source-frame pixel coordinates.
type ROI struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// CameraConfig describes one registered camera. Immutable after
// registration; changing it requires removing and re-adding the camera.
type CameraConfig struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Location       string        `json:"location" yaml:"location"`
	Source         string        `json:"source" yaml:"source"` // Stream URL or looped file path
	CaptureFPS     int           `json:"capture_fps" yaml:"capture_fps"`
	DetectFPS      int           `json:"detect_fps" yaml:"detect_fps"`
	DetectionScale float32       `json:"detection_scale" yaml:"detection_scale"` // Downscale before detection, 0 or 1 = off
	ROI            *ROI          `json:"roi,omitempty" yaml:"roi,omitempty"`
	Priority       FramePriority `json:"priority" yaml:"priority"`
	AlertCooldown  time.Duration `json:"alert_cooldown" yaml:"alert_cooldown"`

	// Nil means inherit from the global pipeline config
	MotionThreshold     *float32 `json:"motion_threshold,omitempty" yaml:"motion_threshold,omitempty"`
	ConfidenceThreshold *float32 `json:"confidence_threshold,omitempty" yaml:"confidence_threshold,omitempty"`
}

// SkipInterval derives the frame-skip interval K from the capture and
// detection rates: one of every K captured frames is detection-eligible.
func (c *CameraConfig) SkipInterval() int {
	if c.CaptureFPS <= 0 || c.DetectFPS <= 0 || c.DetectFPS >= c.CaptureFPS {
		return 1
	}
	return c.CaptureFPS / c.DetectFPS
}

// GlobalPipelineConfig contains defaults shared by all cameras
type GlobalPipelineConfig struct {
	MotionThreshold     float32       `json:"motion_threshold"`     // Changed-pixel fraction to trigger detection
	ConfidenceThreshold float32       `json:"confidence_threshold"` // Minimum detector confidence
	QueueDepth          int           `json:"queue_depth"`          // Shared priority queue capacity
	Workers             int           `json:"workers"`              // Detection worker count
	MaxHashSkips        int           `json:"max_hash_skips"`       // Consecutive duplicate-hash skips before forcing detection
	JanitorInterval     time.Duration `json:"janitor_interval"`     // Cache sweep period
	CacheTTL            time.Duration `json:"cache_ttl"`            // Idle time before per-camera caches are dropped
	HeartbeatInterval   time.Duration `json:"heartbeat_interval"`   // Liveness event period on the bus
}

// DefaultPipelineConfig returns sensible pipeline defaults
func DefaultPipelineConfig() *GlobalPipelineConfig {
	return &GlobalPipelineConfig{
		MotionThreshold:     0.02,
		ConfidenceThreshold: 0.5,
		QueueDepth:          100,
		Workers:             3,
		MaxHashSkips:        10,
		JanitorInterval:     60 * time.Second,
		CacheTTL:            5 * time.Minute,
		HeartbeatInterval:   30 * time.Second,
	}
}

// EffectiveConfig is the merged per-camera configuration
// (camera overrides applied to global defaults)
type EffectiveConfig struct {
	CameraID            string
	Priority            FramePriority
	SkipInterval        int
	DetectionScale      float32
	ROI                 *ROI
	AlertCooldown       time.Duration
	MotionThreshold     float32
	ConfidenceThreshold float32
	MaxHashSkips        int
}

// Effective merges a camera config with global defaults
func (c *CameraConfig) Effective(global *GlobalPipelineConfig) *EffectiveConfig {
	if global == nil {
		global = DefaultPipelineConfig()
	}

	effective := &EffectiveConfig{
		CameraID:            c.ID,
		Priority:            c.Priority,
		SkipInterval:        c.SkipInterval(),
		DetectionScale:      c.DetectionScale,
		ROI:                 c.ROI,
		AlertCooldown:       c.AlertCooldown,
		MotionThreshold:     global.MotionThreshold,
		ConfidenceThreshold: global.ConfidenceThreshold,
		MaxHashSkips:        global.MaxHashSkips,
	}

	if effective.Priority == 0 {
		effective.Priority = PriorityNormal
	}
	if c.MotionThreshold != nil {
		effective.MotionThreshold = *c.MotionThreshold
	}
	if c.ConfidenceThreshold != nil {
		effective.ConfidenceThreshold = *c.ConfidenceThreshold
	}

	return effective
}
