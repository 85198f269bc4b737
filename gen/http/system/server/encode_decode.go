// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system HTTP server encoders and decoders
//
// Command:
// $ goa gen vigil/design

package server

import (
	"context"
	"net/http"
	system "vigil/gen/system"

	goahttp "goa.design/goa/v3/http"
)

// EncodeStatusResponse returns an encoder for responses returned by the system
// status endpoint.
func EncodeStatusResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*system.SystemStatus)
		enc := encoder(ctx, w)
		body := NewStatusResponseBody(res)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// EncodeResetThrottleResponse returns an encoder for responses returned by the
// system reset_throttle endpoint.
func EncodeResetThrottleResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*system.ThrottleReset)
		enc := encoder(ctx, w)
		body := NewResetThrottleResponseBody(res)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// DecodeResetThrottleRequest returns a decoder for requests sent to the system
// reset_throttle endpoint.
func DecodeResetThrottleRequest(mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) func(*http.Request) (*system.ResetThrottlePayload, error) {
	return func(r *http.Request) (*system.ResetThrottlePayload, error) {
		var (
			incidentID *string
		)
		incidentIDRaw := r.URL.Query().Get("incident_id")
		if incidentIDRaw != "" {
			incidentID = &incidentIDRaw
		}
		payload := NewResetThrottlePayload(incidentID)

		return payload, nil
	}
}

// marshalSystemCameraCountersToCameraCountersResponseBody builds a value of
// type *CameraCountersResponseBody from a value of type *system.CameraCounters.
func marshalSystemCameraCountersToCameraCountersResponseBody(v *system.CameraCounters) *CameraCountersResponseBody {
	res := &CameraCountersResponseBody{
		CameraID:        v.CameraID,
		FramesCaptured:  v.FramesCaptured,
		FramesSkipped:   v.FramesSkipped,
		MotionSkips:     v.MotionSkips,
		HashSkips:       v.HashSkips,
		FramesEnqueued:  v.FramesEnqueued,
		FramesDropped:   v.FramesDropped,
		DetectionsTotal: v.DetectionsTotal,
		AvgDetectMs:     v.AvgDetectMs,
		Loops:           v.Loops,
		Status:          v.Status,
	}

	return res
}

// marshalSystemQueueCountersToQueueCountersResponseBody builds a value of type
// *QueueCountersResponseBody from a value of type *system.QueueCounters.
func marshalSystemQueueCountersToQueueCountersResponseBody(v *system.QueueCounters) *QueueCountersResponseBody {
	res := &QueueCountersResponseBody{
		Depth:    v.Depth,
		Capacity: v.Capacity,
		Pushed:   v.Pushed,
		Popped:   v.Popped,
		Dropped:  v.Dropped,
		Purged:   v.Purged,
	}

	return res
}
