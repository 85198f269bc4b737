package ws

import (
	"time"

	"vigil/internal/pipeline"
)

// Message type tags
const (
	TypeDetection      = "detection"
	TypeNewIncident    = "new_incident"
	TypeIncidentUpdate = "incident_update"
	TypeCameraStatus   = "camera_status"
	TypeHeartbeat      = "heartbeat"
)

// DetectionMessage broadcasts one processed frame's detections
type DetectionMessage struct {
	Type        string            `json:"type"` // "detection"
	CameraID    string            `json:"camera_id"`
	Timestamp   time.Time         `json:"timestamp"`
	FrameSeq    uint64            `json:"frame_seq"`
	FrameWidth  int               `json:"frame_width"`
	FrameHeight int               `json:"frame_height"`
	Objects     []ObjectDetection `json:"objects"`
	Skipped     bool              `json:"skipped,omitempty"`
	SkipReason  string            `json:"skip_reason,omitempty"`
}

// ObjectDetection is a single detected object
type ObjectDetection struct {
	Class      string    `json:"class"`
	Confidence float32   `json:"confidence"`
	BBox       []float32 `json:"bbox"` // [x1, y1, x2, y2] in source pixels
	Severity   string    `json:"severity"`
}

// NewIncidentMessage announces a freshly opened incident
type NewIncidentMessage struct {
	Type       string    `json:"type"` // "new_incident"
	IncidentID string    `json:"incident_id"`
	CameraID   string    `json:"camera_id"`
	CameraName string    `json:"camera_name"`
	Location   string    `json:"location,omitempty"`
	WeaponType string    `json:"weapon_type"`
	Severity   string    `json:"severity"`
	Confidence float64   `json:"confidence"`
	Snapshot   string    `json:"snapshot,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// IncidentUpdateMessage carries rolling incident counters
type IncidentUpdateMessage struct {
	Type            string    `json:"type"` // "incident_update"
	IncidentID      string    `json:"incident_id"`
	CameraID        string    `json:"camera_id"`
	WeaponType      string    `json:"weapon_type"`
	DetectionCount  int       `json:"detection_count"`
	MaxConfidence   float64   `json:"max_confidence"`
	AvgConfidence   float64   `json:"avg_confidence"`
	LastDetectionAt time.Time `json:"last_detection_at"`
}

// CameraStatusMessage reports a camera lifecycle transition
type CameraStatusMessage struct {
	Type      string    `json:"type"` // "camera_status"
	CameraID  string    `json:"camera_id"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HeartbeatMessage keeps idle connections warm
type HeartbeatMessage struct {
	Type      string    `json:"type"` // "heartbeat"
	Timestamp time.Time `json:"timestamp"`
}

// NewDetectionMessage converts a detection result into its wire form
func NewDetectionMessage(result *pipeline.DetectionResult) *DetectionMessage {
	msg := &DetectionMessage{
		Type:        TypeDetection,
		CameraID:    result.CameraID,
		Timestamp:   result.Timestamp,
		FrameSeq:    result.FrameSeq,
		FrameWidth:  result.FrameWidth,
		FrameHeight: result.FrameHeight,
		Objects:     make([]ObjectDetection, 0, len(result.Detections)),
		Skipped:     result.Skipped,
		SkipReason:  result.SkipReason,
	}
	for _, det := range result.Detections {
		msg.Objects = append(msg.Objects, ObjectDetection{
			Class:      det.Class,
			Confidence: det.Confidence,
			BBox:       []float32{det.BBox.X1, det.BBox.Y1, det.BBox.X2, det.BBox.Y2},
			Severity:   string(det.Severity),
		})
	}
	return msg
}

// NewIncidentOpened converts a new-incident event into its wire form
func NewIncidentOpened(evt *pipeline.NewIncidentEvent) *NewIncidentMessage {
	return &NewIncidentMessage{
		Type:       TypeNewIncident,
		IncidentID: evt.IncidentID,
		CameraID:   evt.CameraID,
		CameraName: evt.CameraName,
		Location:   evt.Location,
		WeaponType: evt.WeaponType,
		Severity:   string(evt.Severity),
		Confidence: float64(evt.Confidence),
		Snapshot:   evt.SnapshotRef,
		Timestamp:  evt.Timestamp,
	}
}

// NewIncidentProgress converts an incident-update event into its wire form
func NewIncidentProgress(evt *pipeline.IncidentUpdateEvent) *IncidentUpdateMessage {
	return &IncidentUpdateMessage{
		Type:            TypeIncidentUpdate,
		IncidentID:      evt.IncidentID,
		CameraID:        evt.CameraID,
		WeaponType:      evt.WeaponType,
		DetectionCount:  evt.DetectionCount,
		MaxConfidence:   float64(evt.MaxConfidence),
		AvgConfidence:   float64(evt.AvgConfidence),
		LastDetectionAt: evt.LastDetectionAt,
	}
}
