// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system HTTP server types
//
// Command:
// $ goa gen vigil/design

package server

import (
	system "vigil/gen/system"
)

// StatusResponseBody is the type of the "system" service "status" endpoint
// HTTP response body.
type StatusResponseBody struct {
	// Per-camera pipeline counters
	Cameras []*CameraCountersResponseBody `form:"cameras" json:"cameras" xml:"cameras"`
	// Detection queue counters
	Queue *QueueCountersResponseBody `form:"queue" json:"queue" xml:"queue"`
	// Detection worker count
	Workers int `form:"workers" json:"workers" xml:"workers"`
	// Detector backend readiness
	DetectorReady bool `form:"detector_ready" json:"detector_ready" xml:"detector_ready"`
	// System uptime in seconds
	UptimeSeconds int `form:"uptime_seconds" json:"uptime_seconds" xml:"uptime_seconds"`
}

// ResetThrottleResponseBody is the type of the "system" service
// "reset_throttle" endpoint HTTP response body.
type ResetThrottleResponseBody struct {
	// Throttle entries removed
	Cleared int `form:"cleared" json:"cleared" xml:"cleared"`
}

// CameraCountersResponseBody is used to define fields on response body types.
type CameraCountersResponseBody struct {
	// Camera ID
	CameraID string `form:"camera_id" json:"camera_id" xml:"camera_id"`
	// Frames read from the source
	FramesCaptured int64 `form:"frames_captured" json:"frames_captured" xml:"frames_captured"`
	// Frames dropped by the skip interval
	FramesSkipped int64 `form:"frames_skipped" json:"frames_skipped" xml:"frames_skipped"`
	// Frames skipped by the motion gate
	MotionSkips int64 `form:"motion_skips" json:"motion_skips" xml:"motion_skips"`
	// Frames skipped as duplicates
	HashSkips int64 `form:"hash_skips" json:"hash_skips" xml:"hash_skips"`
	// Frames handed to the detection queue
	FramesEnqueued int64 `form:"frames_enqueued" json:"frames_enqueued" xml:"frames_enqueued"`
	// Frames dropped by a full queue
	FramesDropped int64 `form:"frames_dropped" json:"frames_dropped" xml:"frames_dropped"`
	// Detections produced
	DetectionsTotal int64 `form:"detections_total" json:"detections_total" xml:"detections_total"`
	// Rolling mean detection latency
	AvgDetectMs float64 `form:"avg_detect_ms" json:"avg_detect_ms" xml:"avg_detect_ms"`
	// Looped file restarts
	Loops int64 `form:"loops" json:"loops" xml:"loops"`
	// Camera status
	Status string `form:"status" json:"status" xml:"status"`
}

// QueueCountersResponseBody is used to define fields on response body types.
type QueueCountersResponseBody struct {
	// Tasks currently queued
	Depth int `form:"depth" json:"depth" xml:"depth"`
	// Queue capacity
	Capacity int `form:"capacity" json:"capacity" xml:"capacity"`
	// Tasks accepted
	Pushed int64 `form:"pushed" json:"pushed" xml:"pushed"`
	// Tasks handed to workers
	Popped int64 `form:"popped" json:"popped" xml:"popped"`
	// Tasks rejected by a full queue
	Dropped int64 `form:"dropped" json:"dropped" xml:"dropped"`
	// Tasks removed for stopped cameras
	Purged int64 `form:"purged" json:"purged" xml:"purged"`
}

// NewStatusResponseBody builds the HTTP response body from the result of the
// "status" endpoint of the "system" service.
func NewStatusResponseBody(res *system.SystemStatus) *StatusResponseBody {
	body := &StatusResponseBody{
		Workers:       res.Workers,
		DetectorReady: res.DetectorReady,
		UptimeSeconds: res.UptimeSeconds,
	}
	if res.Cameras != nil {
		body.Cameras = make([]*CameraCountersResponseBody, len(res.Cameras))
		for i, val := range res.Cameras {
			if val == nil {
				body.Cameras[i] = nil
				continue
			}
			body.Cameras[i] = marshalSystemCameraCountersToCameraCountersResponseBody(val)
		}
	} else {
		body.Cameras = []*CameraCountersResponseBody{}
	}
	if res.Queue != nil {
		body.Queue = marshalSystemQueueCountersToQueueCountersResponseBody(res.Queue)
	}
	return body
}

// NewResetThrottleResponseBody builds the HTTP response body from the result
// of the "reset_throttle" endpoint of the "system" service.
func NewResetThrottleResponseBody(res *system.ThrottleReset) *ResetThrottleResponseBody {
	body := &ResetThrottleResponseBody{
		Cleared: res.Cleared,
	}
	return body
}

// NewResetThrottlePayload builds a system service reset_throttle endpoint
// payload.
func NewResetThrottlePayload(incidentID *string) *system.ResetThrottlePayload {
	v := &system.ResetThrottlePayload{}
	v.IncidentID = incidentID

	return v
}
