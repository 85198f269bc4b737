// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system service
//
// Command:
// $ goa gen vigil/design

package system

import (
	"context"
)

// System status and monitoring
type Service interface {
	// Get overall pipeline status
	Status(context.Context) (res *SystemStatus, err error)
	// Clear alert throttle counters for one incident or for all of them
	ResetThrottle(context.Context, *ResetThrottlePayload) (res *ThrottleReset, err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "vigil"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "system"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [2]string{"status", "reset_throttle"}

// Per-camera pipeline counters
type CameraCounters struct {
	// Camera ID
	CameraID string
	// Frames read from the source
	FramesCaptured int64
	// Frames dropped by the skip interval
	FramesSkipped int64
	// Frames skipped by the motion gate
	MotionSkips int64
	// Frames skipped as duplicates
	HashSkips int64
	// Frames handed to the detection queue
	FramesEnqueued int64
	// Frames dropped by a full queue
	FramesDropped int64
	// Detections produced
	DetectionsTotal int64
	// Rolling mean detection latency
	AvgDetectMs float64
	// Looped file restarts
	Loops int64
	// Camera status
	Status string
}

// Shared detection queue counters
type QueueCounters struct {
	// Tasks currently queued
	Depth int
	// Queue capacity
	Capacity int
	// Tasks accepted
	Pushed int64
	// Tasks handed to workers
	Popped int64
	// Tasks rejected by a full queue
	Dropped int64
	// Tasks removed for stopped cameras
	Purged int64
}

// ResetThrottlePayload is the payload type of the system service
// reset_throttle method.
type ResetThrottlePayload struct {
	// Incident to reset; omit to reset every incident
	IncidentID *string
}

// SystemStatus is the result type of the system service status method.
type SystemStatus struct {
	// Per-camera pipeline counters
	Cameras []*CameraCounters
	// Detection queue counters
	Queue *QueueCounters
	// Detection worker count
	Workers int
	// Detector backend readiness
	DetectorReady bool
	// System uptime in seconds
	UptimeSeconds int
}

// ThrottleReset is the result type of the system service reset_throttle method.
type ThrottleReset struct {
	// Throttle entries removed
	Cleared int
}
