package pipeline

import "time"

// EventKind discriminates the closed set of pipeline event variants
type EventKind string

const (
	EventDetection      EventKind = "detection"
	EventNewIncident    EventKind = "new_incident"
	EventIncidentUpdate EventKind = "incident_update"
	EventCameraStatus   EventKind = "camera_status"
	EventLoopBoundary   EventKind = "loop_boundary"
	EventHeartbeat      EventKind = "heartbeat"
)

// Event is a tagged pipeline event. The set of implementations is closed;
// transport boundaries switch on Kind for exhaustive handling.
type Event interface {
	Kind() EventKind
	Camera() string // Empty for system-wide events
}

// DetectionEvent carries one completed detection result
type DetectionEvent struct {
	Result *DetectionResult
}

func (e DetectionEvent) Kind() EventKind { return EventDetection }
func (e DetectionEvent) Camera() string  { return e.Result.CameraID }

// NewIncidentEvent signals that a detection opened a new incident
type NewIncidentEvent struct {
	IncidentID  string
	CameraID    string
	CameraName  string
	Location    string
	WeaponType  string
	Severity    Severity
	Confidence  float32
	SnapshotRef string
	Timestamp   time.Time
}

func (e NewIncidentEvent) Kind() EventKind { return EventNewIncident }
func (e NewIncidentEvent) Camera() string  { return e.CameraID }

// IncidentUpdateEvent signals that a detection matched an open incident
type IncidentUpdateEvent struct {
	IncidentID      string
	CameraID        string
	WeaponType      string
	DetectionCount  int
	MaxConfidence   float32
	AvgConfidence   float32
	LastDetectionAt time.Time
}

func (e IncidentUpdateEvent) Kind() EventKind { return EventIncidentUpdate }
func (e IncidentUpdateEvent) Camera() string  { return e.CameraID }

// CameraStatusEvent reports a camera lifecycle transition
type CameraStatusEvent struct {
	CameraID  string
	Status    string // "online", "offline", "failed", "reconnecting"
	Reason    string
	Timestamp time.Time
}

func (e CameraStatusEvent) Kind() EventKind { return EventCameraStatus }
func (e CameraStatusEvent) Camera() string  { return e.CameraID }

// LoopBoundaryEvent signals a looped file source restarting at position zero.
// Downstream caches for the camera must be invalidated so stale motion and
// hash state does not leak across the restart.
type LoopBoundaryEvent struct {
	CameraID  string
	Loop      uint64
	Timestamp time.Time
}

func (e LoopBoundaryEvent) Kind() EventKind { return EventLoopBoundary }
func (e LoopBoundaryEvent) Camera() string  { return e.CameraID }

// HeartbeatEvent is a periodic liveness signal for push clients
type HeartbeatEvent struct {
	Timestamp time.Time
}

func (e HeartbeatEvent) Kind() EventKind { return EventHeartbeat }
func (e HeartbeatEvent) Camera() string  { return "" }
