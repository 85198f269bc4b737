package ws

import (
	"encoding/json"
	"testing"
	"time"

	"vigil/internal/pipeline"
)

// TestNewDetectionMessage verifies result fields and boxes map to the wire
// shape the dashboard expects.
func TestNewDetectionMessage(t *testing.T) {
	result := &pipeline.DetectionResult{
		CameraID:    "cam-1",
		FrameSeq:    12,
		Timestamp:   time.Now(),
		FrameWidth:  1920,
		FrameHeight: 1080,
		Detections: []pipeline.Detection{
			{
				Class:      "pistol",
				Confidence: 0.87,
				BBox:       pipeline.BBox{X1: 100, Y1: 200, X2: 300, Y2: 400},
				Severity:   pipeline.SeverityCritical,
			},
		},
	}

	msg := NewDetectionMessage(result)
	if msg.Type != TypeDetection {
		t.Errorf("Expected type %q, got %q", TypeDetection, msg.Type)
	}
	if msg.CameraID != "cam-1" || msg.FrameSeq != 12 {
		t.Errorf("Header mismatch: %+v", msg)
	}
	if len(msg.Objects) != 1 {
		t.Fatalf("Expected 1 object, got %d", len(msg.Objects))
	}
	obj := msg.Objects[0]
	if obj.Class != "pistol" || obj.Severity != "critical" {
		t.Errorf("Unexpected object: %+v", obj)
	}
	want := []float32{100, 200, 300, 400}
	for i, v := range want {
		if obj.BBox[i] != v {
			t.Errorf("BBox[%d]: expected %f, got %f", i, v, obj.BBox[i])
		}
	}
}

// TestNewDetectionMessageSkipped verifies skip metadata rides along and an
// empty detection set serializes as an empty array, not null.
func TestNewDetectionMessageSkipped(t *testing.T) {
	msg := NewDetectionMessage(&pipeline.DetectionResult{
		CameraID:   "cam-1",
		Skipped:    true,
		SkipReason: "no_motion",
	})

	if !msg.Skipped || msg.SkipReason != "no_motion" {
		t.Errorf("Expected skip metadata, got %+v", msg)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if string(decoded["objects"]) != "[]" {
		t.Errorf("Expected empty objects array, got %s", decoded["objects"])
	}
}

// TestNewIncidentOpened verifies the incident event's wire form.
func TestNewIncidentOpened(t *testing.T) {
	evt := &pipeline.NewIncidentEvent{
		IncidentID: "inc-1",
		CameraID:   "cam-1",
		CameraName: "Entrance",
		WeaponType: "pistol",
		Severity:   pipeline.SeverityCritical,
		Confidence: 0.9,
		Timestamp:  time.Now(),
	}

	msg := NewIncidentOpened(evt)
	if msg.Type != TypeNewIncident {
		t.Errorf("Expected type %q, got %q", TypeNewIncident, msg.Type)
	}
	if msg.IncidentID != "inc-1" || msg.WeaponType != "pistol" || msg.Severity != "critical" {
		t.Errorf("Unexpected message: %+v", msg)
	}
	if msg.Confidence < 0.899 || msg.Confidence > 0.901 {
		t.Errorf("Expected confidence 0.9, got %f", msg.Confidence)
	}
}

// TestNewIncidentProgress verifies the update event's wire form.
func TestNewIncidentProgress(t *testing.T) {
	now := time.Now()
	msg := NewIncidentProgress(&pipeline.IncidentUpdateEvent{
		IncidentID:      "inc-1",
		CameraID:        "cam-1",
		WeaponType:      "pistol",
		DetectionCount:  4,
		MaxConfidence:   0.95,
		AvgConfidence:   0.8,
		LastDetectionAt: now,
	})

	if msg.Type != TypeIncidentUpdate || msg.DetectionCount != 4 {
		t.Errorf("Unexpected message: %+v", msg)
	}
	if !msg.LastDetectionAt.Equal(now) {
		t.Errorf("Expected timestamp to pass through")
	}
}

// TestHubHasClients verifies the firehose subscription counts for every
// camera scope.
func TestHubHasClients(t *testing.T) {
	h := NewHub()

	if h.HasClients("cam-1") {
		t.Error("Expected no clients on an empty hub")
	}

	h.Register("cam-1", nil)
	if !h.HasClients("cam-1") {
		t.Error("Expected clients for cam-1")
	}
	if h.HasClients("cam-2") {
		t.Error("Expected no clients for cam-2")
	}

	h.Register("", nil)
	if !h.HasClients("cam-2") {
		t.Error("Expected firehose subscriber to count for any camera")
	}

	if h.ClientCount() != 2 {
		t.Errorf("Expected 2 clients, got %d", h.ClientCount())
	}
}
