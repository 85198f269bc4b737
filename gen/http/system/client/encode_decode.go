// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system HTTP client encoders and decoders
//
// Command:
// $ goa gen vigil/design

package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	system "vigil/gen/system"

	goahttp "goa.design/goa/v3/http"
)

// BuildStatusRequest instantiates a HTTP request object with method and path
// set to call the "system" service "status" endpoint
func (c *Client) BuildStatusRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: StatusSystemPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("system", "status", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeStatusResponse returns a decoder for responses returned by the system
// status endpoint. restoreBody controls whether the response body should be
// restored after having been read.
func DecodeStatusResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body StatusResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("system", "status", err)
			}
			err = ValidateStatusResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("system", "status", err)
			}
			res := NewStatusSystemStatusOK(&body)
			return res, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("system", "status", resp.StatusCode, string(body))
		}
	}
}

// BuildResetThrottleRequest instantiates a HTTP request object with method and
// path set to call the "system" service "reset_throttle" endpoint
func (c *Client) BuildResetThrottleRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ResetThrottleSystemPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("system", "reset_throttle", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeResetThrottleRequest returns an encoder for requests sent to the
// system reset_throttle server.
func EncodeResetThrottleRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*system.ResetThrottlePayload)
		if !ok {
			return goahttp.ErrInvalidType("system", "reset_throttle", "*system.ResetThrottlePayload", v)
		}
		values := req.URL.Query()
		if p.IncidentID != nil {
			values.Add("incident_id", *p.IncidentID)
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeResetThrottleResponse returns a decoder for responses returned by the
// system reset_throttle endpoint. restoreBody controls whether the response
// body should be restored after having been read.
func DecodeResetThrottleResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ResetThrottleResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("system", "reset_throttle", err)
			}
			err = ValidateResetThrottleResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("system", "reset_throttle", err)
			}
			res := NewResetThrottleThrottleResetOK(&body)
			return res, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("system", "reset_throttle", resp.StatusCode, string(body))
		}
	}
}

// unmarshalCameraCountersResponseBodyToSystemCameraCounters builds a value of
// type *system.CameraCounters from a value of type *CameraCountersResponseBody.
func unmarshalCameraCountersResponseBodyToSystemCameraCounters(v *CameraCountersResponseBody) *system.CameraCounters {
	res := &system.CameraCounters{
		CameraID:        *v.CameraID,
		FramesCaptured:  *v.FramesCaptured,
		FramesSkipped:   *v.FramesSkipped,
		MotionSkips:     *v.MotionSkips,
		HashSkips:       *v.HashSkips,
		FramesEnqueued:  *v.FramesEnqueued,
		FramesDropped:   *v.FramesDropped,
		DetectionsTotal: *v.DetectionsTotal,
		AvgDetectMs:     *v.AvgDetectMs,
		Loops:           *v.Loops,
		Status:          *v.Status,
	}

	return res
}

// unmarshalQueueCountersResponseBodyToSystemQueueCounters builds a value of
// type *system.QueueCounters from a value of type *QueueCountersResponseBody.
func unmarshalQueueCountersResponseBodyToSystemQueueCounters(v *QueueCountersResponseBody) *system.QueueCounters {
	res := &system.QueueCounters{
		Depth:    *v.Depth,
		Capacity: *v.Capacity,
		Pushed:   *v.Pushed,
		Popped:   *v.Popped,
		Dropped:  *v.Dropped,
		Purged:   *v.Purged,
	}

	return res
}
