// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system HTTP client types
//
// Command:
// $ goa gen vigil/design

package client

import (
	system "vigil/gen/system"

	goa "goa.design/goa/v3/pkg"
)

// StatusResponseBody is the type of the "system" service "status" endpoint
// HTTP response body.
type StatusResponseBody struct {
	// Per-camera pipeline counters
	Cameras []*CameraCountersResponseBody `form:"cameras,omitempty" json:"cameras,omitempty" xml:"cameras,omitempty"`
	// Detection queue counters
	Queue *QueueCountersResponseBody `form:"queue,omitempty" json:"queue,omitempty" xml:"queue,omitempty"`
	// Detection worker count
	Workers *int `form:"workers,omitempty" json:"workers,omitempty" xml:"workers,omitempty"`
	// Detector backend readiness
	DetectorReady *bool `form:"detector_ready,omitempty" json:"detector_ready,omitempty" xml:"detector_ready,omitempty"`
	// System uptime in seconds
	UptimeSeconds *int `form:"uptime_seconds,omitempty" json:"uptime_seconds,omitempty" xml:"uptime_seconds,omitempty"`
}

// ResetThrottleResponseBody is the type of the "system" service
// "reset_throttle" endpoint HTTP response body.
type ResetThrottleResponseBody struct {
	// Throttle entries removed
	Cleared *int `form:"cleared,omitempty" json:"cleared,omitempty" xml:"cleared,omitempty"`
}

// CameraCountersResponseBody is used to define fields on response body types.
type CameraCountersResponseBody struct {
	// Camera ID
	CameraID *string `form:"camera_id,omitempty" json:"camera_id,omitempty" xml:"camera_id,omitempty"`
	// Frames read from the source
	FramesCaptured *int64 `form:"frames_captured,omitempty" json:"frames_captured,omitempty" xml:"frames_captured,omitempty"`
	// Frames dropped by the skip interval
	FramesSkipped *int64 `form:"frames_skipped,omitempty" json:"frames_skipped,omitempty" xml:"frames_skipped,omitempty"`
	// Frames skipped by the motion gate
	MotionSkips *int64 `form:"motion_skips,omitempty" json:"motion_skips,omitempty" xml:"motion_skips,omitempty"`
	// Frames skipped as duplicates
	HashSkips *int64 `form:"hash_skips,omitempty" json:"hash_skips,omitempty" xml:"hash_skips,omitempty"`
	// Frames handed to the detection queue
	FramesEnqueued *int64 `form:"frames_enqueued,omitempty" json:"frames_enqueued,omitempty" xml:"frames_enqueued,omitempty"`
	// Frames dropped by a full queue
	FramesDropped *int64 `form:"frames_dropped,omitempty" json:"frames_dropped,omitempty" xml:"frames_dropped,omitempty"`
	// Detections produced
	DetectionsTotal *int64 `form:"detections_total,omitempty" json:"detections_total,omitempty" xml:"detections_total,omitempty"`
	// Rolling mean detection latency
	AvgDetectMs *float64 `form:"avg_detect_ms,omitempty" json:"avg_detect_ms,omitempty" xml:"avg_detect_ms,omitempty"`
	// Looped file restarts
	Loops *int64 `form:"loops,omitempty" json:"loops,omitempty" xml:"loops,omitempty"`
	// Camera status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
}

// QueueCountersResponseBody is used to define fields on response body types.
type QueueCountersResponseBody struct {
	// Tasks currently queued
	Depth *int `form:"depth,omitempty" json:"depth,omitempty" xml:"depth,omitempty"`
	// Queue capacity
	Capacity *int `form:"capacity,omitempty" json:"capacity,omitempty" xml:"capacity,omitempty"`
	// Tasks accepted
	Pushed *int64 `form:"pushed,omitempty" json:"pushed,omitempty" xml:"pushed,omitempty"`
	// Tasks handed to workers
	Popped *int64 `form:"popped,omitempty" json:"popped,omitempty" xml:"popped,omitempty"`
	// Tasks rejected by a full queue
	Dropped *int64 `form:"dropped,omitempty" json:"dropped,omitempty" xml:"dropped,omitempty"`
	// Tasks removed for stopped cameras
	Purged *int64 `form:"purged,omitempty" json:"purged,omitempty" xml:"purged,omitempty"`
}

// NewStatusSystemStatusOK builds a "system" service "status" endpoint result
// from a HTTP "OK" response.
func NewStatusSystemStatusOK(body *StatusResponseBody) *system.SystemStatus {
	v := &system.SystemStatus{
		Workers:       *body.Workers,
		DetectorReady: *body.DetectorReady,
		UptimeSeconds: *body.UptimeSeconds,
	}
	v.Cameras = make([]*system.CameraCounters, len(body.Cameras))
	for i, val := range body.Cameras {
		if val == nil {
			v.Cameras[i] = nil
			continue
		}
		v.Cameras[i] = unmarshalCameraCountersResponseBodyToSystemCameraCounters(val)
	}
	v.Queue = unmarshalQueueCountersResponseBodyToSystemQueueCounters(body.Queue)

	return v
}

// NewResetThrottleThrottleResetOK builds a "system" service "reset_throttle"
// endpoint result from a HTTP "OK" response.
func NewResetThrottleThrottleResetOK(body *ResetThrottleResponseBody) *system.ThrottleReset {
	v := &system.ThrottleReset{
		Cleared: *body.Cleared,
	}

	return v
}

// ValidateStatusResponseBody runs the validations defined on StatusResponseBody
func ValidateStatusResponseBody(body *StatusResponseBody) (err error) {
	if body.Cameras == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("cameras", "body"))
	}
	if body.Queue == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("queue", "body"))
	}
	if body.Workers == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("workers", "body"))
	}
	if body.DetectorReady == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("detector_ready", "body"))
	}
	if body.UptimeSeconds == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("uptime_seconds", "body"))
	}
	for _, e := range body.Cameras {
		if e != nil {
			if err2 := ValidateCameraCountersResponseBody(e); err2 != nil {
				err = goa.MergeErrors(err, err2)
			}
		}
	}
	if body.Queue != nil {
		if err2 := ValidateQueueCountersResponseBody(body.Queue); err2 != nil {
			err = goa.MergeErrors(err, err2)
		}
	}
	return
}

// ValidateResetThrottleResponseBody runs the validations defined on
// reset_throttle_response_body
func ValidateResetThrottleResponseBody(body *ResetThrottleResponseBody) (err error) {
	if body.Cleared == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("cleared", "body"))
	}
	return
}

// ValidateCameraCountersResponseBody runs the validations defined on
// CameraCountersResponseBody
func ValidateCameraCountersResponseBody(body *CameraCountersResponseBody) (err error) {
	if body.CameraID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("camera_id", "body"))
	}
	if body.FramesCaptured == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("frames_captured", "body"))
	}
	if body.FramesSkipped == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("frames_skipped", "body"))
	}
	if body.MotionSkips == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("motion_skips", "body"))
	}
	if body.HashSkips == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("hash_skips", "body"))
	}
	if body.FramesEnqueued == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("frames_enqueued", "body"))
	}
	if body.FramesDropped == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("frames_dropped", "body"))
	}
	if body.DetectionsTotal == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("detections_total", "body"))
	}
	if body.AvgDetectMs == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("avg_detect_ms", "body"))
	}
	if body.Loops == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("loops", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	return
}

// ValidateQueueCountersResponseBody runs the validations defined on
// QueueCountersResponseBody
func ValidateQueueCountersResponseBody(body *QueueCountersResponseBody) (err error) {
	if body.Depth == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("depth", "body"))
	}
	if body.Capacity == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("capacity", "body"))
	}
	if body.Pushed == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("pushed", "body"))
	}
	if body.Popped == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("popped", "body"))
	}
	if body.Dropped == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("dropped", "body"))
	}
	if body.Purged == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("purged", "body"))
	}
	return
}
