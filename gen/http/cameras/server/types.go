// Code generated by goa v3.24.1, DO NOT EDIT.
//
// cameras HTTP server types
//
// Command:
// $ goa gen vigil/design

package server

import (
	cameras "vigil/gen/cameras"

	goa "goa.design/goa/v3/pkg"
)

// CreateRequestBody is the type of the "cameras" service "create" endpoint
// HTTP request body.
type CreateRequestBody struct {
	// Camera ID, generated when omitted
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Camera display name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Physical location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Stream URL or looped file path
	Source *string `form:"source,omitempty" json:"source,omitempty" xml:"source,omitempty"`
	// Capture frame rate
	CaptureFps *int `form:"capture_fps,omitempty" json:"capture_fps,omitempty" xml:"capture_fps,omitempty"`
	// Detection frame rate
	DetectFps *int `form:"detect_fps,omitempty" json:"detect_fps,omitempty" xml:"detect_fps,omitempty"`
	// Queue priority class
	Priority *int `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
}

// ListResponseBody is the type of the "cameras" service "list" endpoint HTTP
// response body.
type ListResponseBody []*CameraInfoResponse

// GetResponseBody is the type of the "cameras" service "get" endpoint HTTP
// response body.
type GetResponseBody struct {
	// Camera unique identifier
	ID string `form:"id" json:"id" xml:"id"`
	// Camera display name
	Name string `form:"name" json:"name" xml:"name"`
	// Physical location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Stream URL or looped file path
	Source string `form:"source" json:"source" xml:"source"`
	// Capture frame rate
	CaptureFps *int `form:"capture_fps,omitempty" json:"capture_fps,omitempty" xml:"capture_fps,omitempty"`
	// Detection frame rate
	DetectFps *int `form:"detect_fps,omitempty" json:"detect_fps,omitempty" xml:"detect_fps,omitempty"`
	// Queue priority class (1=high, 2=normal, 3=low)
	Priority *int `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Camera status
	Status string `form:"status" json:"status" xml:"status"`
	// Registration timestamp
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
}

// CreateResponseBody is the type of the "cameras" service "create" endpoint
// HTTP response body.
type CreateResponseBody struct {
	// Camera unique identifier
	ID string `form:"id" json:"id" xml:"id"`
	// Camera display name
	Name string `form:"name" json:"name" xml:"name"`
	// Physical location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Stream URL or looped file path
	Source string `form:"source" json:"source" xml:"source"`
	// Capture frame rate
	CaptureFps *int `form:"capture_fps,omitempty" json:"capture_fps,omitempty" xml:"capture_fps,omitempty"`
	// Detection frame rate
	DetectFps *int `form:"detect_fps,omitempty" json:"detect_fps,omitempty" xml:"detect_fps,omitempty"`
	// Queue priority class (1=high, 2=normal, 3=low)
	Priority *int `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Camera status
	Status string `form:"status" json:"status" xml:"status"`
	// Registration timestamp
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
}

// StatsResponseBody is the type of the "cameras" service "stats" endpoint HTTP
// response body.
type StatsResponseBody struct {
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

// GetNotFoundResponseBody is the type of the "cameras" service "get" endpoint
// HTTP response body for the "not_found" error.
type GetNotFoundResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Resource ID
	ID string `form:"id" json:"id" xml:"id"`
}

// CreateBadRequestResponseBody is the type of the "cameras" service "create"
// endpoint HTTP response body for the "bad_request" error.
type CreateBadRequestResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Error details
	Details *string `form:"details,omitempty" json:"details,omitempty" xml:"details,omitempty"`
}

// DeleteNotFoundResponseBody is the type of the "cameras" service "delete"
// endpoint HTTP response body for the "not_found" error.
type DeleteNotFoundResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Resource ID
	ID string `form:"id" json:"id" xml:"id"`
}

// StatsNotFoundResponseBody is the type of the "cameras" service "stats"
// endpoint HTTP response body for the "not_found" error.
type StatsNotFoundResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Resource ID
	ID string `form:"id" json:"id" xml:"id"`
}

// CameraInfoResponse is used to define fields on response body types.
type CameraInfoResponse struct {
	// Camera unique identifier
	ID string `form:"id" json:"id" xml:"id"`
	// Camera display name
	Name string `form:"name" json:"name" xml:"name"`
	// Physical location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Stream URL or looped file path
	Source string `form:"source" json:"source" xml:"source"`
	// Capture frame rate
	CaptureFps *int `form:"capture_fps,omitempty" json:"capture_fps,omitempty" xml:"capture_fps,omitempty"`
	// Detection frame rate
	DetectFps *int `form:"detect_fps,omitempty" json:"detect_fps,omitempty" xml:"detect_fps,omitempty"`
	// Queue priority class (1=high, 2=normal, 3=low)
	Priority *int `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Camera status
	Status string `form:"status" json:"status" xml:"status"`
	// Registration timestamp
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
}

// NewListResponseBody builds the HTTP response body from the result of the
// "list" endpoint of the "cameras" service.
func NewListResponseBody(res []*cameras.CameraInfo) ListResponseBody {
	body := make([]*CameraInfoResponse, len(res))
	for i, val := range res {
		if val == nil {
			body[i] = nil
			continue
		}
		body[i] = marshalCamerasCameraInfoToCameraInfoResponse(val)
	}
	return body
}

// NewGetResponseBody builds the HTTP response body from the result of the
// "get" endpoint of the "cameras" service.
func NewGetResponseBody(res *cameras.CameraInfo) *GetResponseBody {
	body := &GetResponseBody{
		ID:         res.ID,
		Name:       res.Name,
		Location:   res.Location,
		Source:     res.Source,
		CaptureFps: res.CaptureFps,
		DetectFps:  res.DetectFps,
		Priority:   res.Priority,
		Status:     res.Status,
		CreatedAt:  res.CreatedAt,
	}
	return body
}

// NewCreateResponseBody builds the HTTP response body from the result of the
// "create" endpoint of the "cameras" service.
func NewCreateResponseBody(res *cameras.CameraInfo) *CreateResponseBody {
	body := &CreateResponseBody{
		ID:         res.ID,
		Name:       res.Name,
		Location:   res.Location,
		Source:     res.Source,
		CaptureFps: res.CaptureFps,
		DetectFps:  res.DetectFps,
		Priority:   res.Priority,
		Status:     res.Status,
		CreatedAt:  res.CreatedAt,
	}
	return body
}

// NewStatsResponseBody builds the HTTP response body from the result of the
// "stats" endpoint of the "cameras" service.
func NewStatsResponseBody(res *cameras.CameraCounters) *StatsResponseBody {
	body := &StatsResponseBody{
		CameraID:        res.CameraID,
		FramesCaptured:  res.FramesCaptured,
		FramesSkipped:   res.FramesSkipped,
		MotionSkips:     res.MotionSkips,
		HashSkips:       res.HashSkips,
		FramesEnqueued:  res.FramesEnqueued,
		FramesDropped:   res.FramesDropped,
		DetectionsTotal: res.DetectionsTotal,
		AvgDetectMs:     res.AvgDetectMs,
		Loops:           res.Loops,
		Status:          res.Status,
	}
	return body
}

// NewGetNotFoundResponseBody builds the HTTP response body from the result of
// the "get" endpoint of the "cameras" service.
func NewGetNotFoundResponseBody(res *cameras.NotFoundError) *GetNotFoundResponseBody {
	body := &GetNotFoundResponseBody{
		Message: res.Message,
		ID:      res.ID,
	}
	return body
}

// NewCreateBadRequestResponseBody builds the HTTP response body from the
// result of the "create" endpoint of the "cameras" service.
func NewCreateBadRequestResponseBody(res *cameras.BadRequestError) *CreateBadRequestResponseBody {
	body := &CreateBadRequestResponseBody{
		Message: res.Message,
		Details: res.Details,
	}
	return body
}

// NewDeleteNotFoundResponseBody builds the HTTP response body from the result
// of the "delete" endpoint of the "cameras" service.
func NewDeleteNotFoundResponseBody(res *cameras.NotFoundError) *DeleteNotFoundResponseBody {
	body := &DeleteNotFoundResponseBody{
		Message: res.Message,
		ID:      res.ID,
	}
	return body
}

// NewStatsNotFoundResponseBody builds the HTTP response body from the result
// of the "stats" endpoint of the "cameras" service.
func NewStatsNotFoundResponseBody(res *cameras.NotFoundError) *StatsNotFoundResponseBody {
	body := &StatsNotFoundResponseBody{
		Message: res.Message,
		ID:      res.ID,
	}
	return body
}

// NewGetPayload builds a cameras service get endpoint payload.
func NewGetPayload(id string) *cameras.GetPayload {
	v := &cameras.GetPayload{}
	v.ID = id

	return v
}

// NewCreatePayload builds a cameras service create endpoint payload.
func NewCreatePayload(body *CreateRequestBody) *cameras.CreatePayload {
	v := &cameras.CreatePayload{
		ID:       body.ID,
		Name:     *body.Name,
		Location: body.Location,
		Source:   *body.Source,
	}
	if body.CaptureFps != nil {
		v.CaptureFps = *body.CaptureFps
	}
	if body.DetectFps != nil {
		v.DetectFps = *body.DetectFps
	}
	if body.Priority != nil {
		v.Priority = *body.Priority
	}
	if body.CaptureFps == nil {
		v.CaptureFps = 15
	}
	if body.DetectFps == nil {
		v.DetectFps = 5
	}
	if body.Priority == nil {
		v.Priority = 2
	}

	return v
}

// NewDeletePayload builds a cameras service delete endpoint payload.
func NewDeletePayload(id string) *cameras.DeletePayload {
	v := &cameras.DeletePayload{}
	v.ID = id

	return v
}

// NewStatsPayload builds a cameras service stats endpoint payload.
func NewStatsPayload(id string) *cameras.StatsPayload {
	v := &cameras.StatsPayload{}
	v.ID = id

	return v
}

// ValidateCreateRequestBody runs the validations defined on CreateRequestBody
func ValidateCreateRequestBody(body *CreateRequestBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Source == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("source", "body"))
	}
	if body.Priority != nil {
		if *body.Priority < 1 {
			err = goa.MergeErrors(err, goa.InvalidRangeError("body.priority", *body.Priority, 1, true))
		}
	}
	if body.Priority != nil {
		if *body.Priority > 3 {
			err = goa.MergeErrors(err, goa.InvalidRangeError("body.priority", *body.Priority, 3, false))
		}
	}
	return
}
