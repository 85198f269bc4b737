// Code generated by goa v3.24.1, DO NOT EDIT.
//
// cameras HTTP client types
//
// Command:
// $ goa gen vigil/design

package client

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
	Name string `form:"name" json:"name" xml:"name"`
	// Physical location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Stream URL or looped file path
	Source string `form:"source" json:"source" xml:"source"`
	// Capture frame rate
	CaptureFps int `form:"capture_fps" json:"capture_fps" xml:"capture_fps"`
	// Detection frame rate
	DetectFps int `form:"detect_fps" json:"detect_fps" xml:"detect_fps"`
	// Queue priority class
	Priority int `form:"priority" json:"priority" xml:"priority"`
}

// ListResponseBody is the type of the "cameras" service "list" endpoint HTTP
// response body.
type ListResponseBody []*CameraInfoResponse

// GetResponseBody is the type of the "cameras" service "get" endpoint HTTP
// response body.
type GetResponseBody struct {
	// Camera unique identifier
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
	// Queue priority class (1=high, 2=normal, 3=low)
	Priority *int `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Camera status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Registration timestamp
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
}

// CreateResponseBody is the type of the "cameras" service "create" endpoint
// HTTP response body.
type CreateResponseBody struct {
	// Camera unique identifier
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
	// Queue priority class (1=high, 2=normal, 3=low)
	Priority *int `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Camera status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Registration timestamp
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
}

// StatsResponseBody is the type of the "cameras" service "stats" endpoint HTTP
// response body.
type StatsResponseBody struct {
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

// GetNotFoundResponseBody is the type of the "cameras" service "get" endpoint
// HTTP response body for the "not_found" error.
type GetNotFoundResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Resource ID
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
}

// CreateBadRequestResponseBody is the type of the "cameras" service "create"
// endpoint HTTP response body for the "bad_request" error.
type CreateBadRequestResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Error details
	Details *string `form:"details,omitempty" json:"details,omitempty" xml:"details,omitempty"`
}

// DeleteNotFoundResponseBody is the type of the "cameras" service "delete"
// endpoint HTTP response body for the "not_found" error.
type DeleteNotFoundResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Resource ID
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
}

// StatsNotFoundResponseBody is the type of the "cameras" service "stats"
// endpoint HTTP response body for the "not_found" error.
type StatsNotFoundResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Resource ID
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
}

// CameraInfoResponse is used to define fields on response body types.
type CameraInfoResponse struct {
	// Camera unique identifier
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
	// Queue priority class (1=high, 2=normal, 3=low)
	Priority *int `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Camera status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Registration timestamp
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
}

// NewCreateRequestBody builds the HTTP request body from the payload of the
// "create" endpoint of the "cameras" service.
func NewCreateRequestBody(p *cameras.CreatePayload) *CreateRequestBody {
	body := &CreateRequestBody{
		ID:         p.ID,
		Name:       p.Name,
		Location:   p.Location,
		Source:     p.Source,
		CaptureFps: p.CaptureFps,
		DetectFps:  p.DetectFps,
		Priority:   p.Priority,
	}
	{
		var zero int
		if body.CaptureFps == zero {
			body.CaptureFps = 15
		}
	}
	{
		var zero int
		if body.DetectFps == zero {
			body.DetectFps = 5
		}
	}
	{
		var zero int
		if body.Priority == zero {
			body.Priority = 2
		}
	}
	return body
}

// NewListCameraInfoOK builds a "cameras" service "list" endpoint result from a
// HTTP "OK" response.
func NewListCameraInfoOK(body []*CameraInfoResponse) []*cameras.CameraInfo {
	v := make([]*cameras.CameraInfo, len(body))
	for i, val := range body {
		if val == nil {
			v[i] = nil
			continue
		}
		v[i] = unmarshalCameraInfoResponseToCamerasCameraInfo(val)
	}

	return v
}

// NewGetCameraInfoOK builds a "cameras" service "get" endpoint result from a
// HTTP "OK" response.
func NewGetCameraInfoOK(body *GetResponseBody) *cameras.CameraInfo {
	v := &cameras.CameraInfo{
		ID:         *body.ID,
		Name:       *body.Name,
		Location:   body.Location,
		Source:     *body.Source,
		CaptureFps: body.CaptureFps,
		DetectFps:  body.DetectFps,
		Priority:   body.Priority,
		Status:     *body.Status,
		CreatedAt:  body.CreatedAt,
	}

	return v
}

// NewGetNotFound builds a cameras service get endpoint not_found error.
func NewGetNotFound(body *GetNotFoundResponseBody) *cameras.NotFoundError {
	v := &cameras.NotFoundError{
		Message: *body.Message,
		ID:      *body.ID,
	}

	return v
}

// NewCreateCameraInfoCreated builds a "cameras" service "create" endpoint
// result from a HTTP "Created" response.
func NewCreateCameraInfoCreated(body *CreateResponseBody) *cameras.CameraInfo {
	v := &cameras.CameraInfo{
		ID:         *body.ID,
		Name:       *body.Name,
		Location:   body.Location,
		Source:     *body.Source,
		CaptureFps: body.CaptureFps,
		DetectFps:  body.DetectFps,
		Priority:   body.Priority,
		Status:     *body.Status,
		CreatedAt:  body.CreatedAt,
	}

	return v
}

// NewCreateBadRequest builds a cameras service create endpoint bad_request
// error.
func NewCreateBadRequest(body *CreateBadRequestResponseBody) *cameras.BadRequestError {
	v := &cameras.BadRequestError{
		Message: *body.Message,
		Details: body.Details,
	}

	return v
}

// NewDeleteNotFound builds a cameras service delete endpoint not_found error.
func NewDeleteNotFound(body *DeleteNotFoundResponseBody) *cameras.NotFoundError {
	v := &cameras.NotFoundError{
		Message: *body.Message,
		ID:      *body.ID,
	}

	return v
}

// NewStatsCameraCountersOK builds a "cameras" service "stats" endpoint result
// from a HTTP "OK" response.
func NewStatsCameraCountersOK(body *StatsResponseBody) *cameras.CameraCounters {
	v := &cameras.CameraCounters{
		CameraID:        *body.CameraID,
		FramesCaptured:  *body.FramesCaptured,
		FramesSkipped:   *body.FramesSkipped,
		MotionSkips:     *body.MotionSkips,
		HashSkips:       *body.HashSkips,
		FramesEnqueued:  *body.FramesEnqueued,
		FramesDropped:   *body.FramesDropped,
		DetectionsTotal: *body.DetectionsTotal,
		AvgDetectMs:     *body.AvgDetectMs,
		Loops:           *body.Loops,
		Status:          *body.Status,
	}

	return v
}

// NewStatsNotFound builds a cameras service stats endpoint not_found error.
func NewStatsNotFound(body *StatsNotFoundResponseBody) *cameras.NotFoundError {
	v := &cameras.NotFoundError{
		Message: *body.Message,
		ID:      *body.ID,
	}

	return v
}

// ValidateGetResponseBody runs the validations defined on GetResponseBody
func ValidateGetResponseBody(body *GetResponseBody) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Source == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("source", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.Status != nil {
		if !(*body.Status == "online" || *body.Status == "offline" || *body.Status == "reconnecting" || *body.Status == "failed") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"online", "offline", "reconnecting", "failed"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateCreateResponseBody runs the validations defined on CreateResponseBody
func ValidateCreateResponseBody(body *CreateResponseBody) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Source == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("source", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.Status != nil {
		if !(*body.Status == "online" || *body.Status == "offline" || *body.Status == "reconnecting" || *body.Status == "failed") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"online", "offline", "reconnecting", "failed"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateStatsResponseBody runs the validations defined on StatsResponseBody
func ValidateStatsResponseBody(body *StatsResponseBody) (err error) {
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

// ValidateGetNotFoundResponseBody runs the validations defined on
// get_not_found_response_body
func ValidateGetNotFoundResponseBody(body *GetNotFoundResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	return
}

// ValidateCreateBadRequestResponseBody runs the validations defined on
// create_bad_request_response_body
func ValidateCreateBadRequestResponseBody(body *CreateBadRequestResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteNotFoundResponseBody runs the validations defined on
// delete_not_found_response_body
func ValidateDeleteNotFoundResponseBody(body *DeleteNotFoundResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	return
}

// ValidateStatsNotFoundResponseBody runs the validations defined on
// stats_not_found_response_body
func ValidateStatsNotFoundResponseBody(body *StatsNotFoundResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	return
}

// ValidateCameraInfoResponse runs the validations defined on CameraInfoResponse
func ValidateCameraInfoResponse(body *CameraInfoResponse) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Source == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("source", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.Status != nil {
		if !(*body.Status == "online" || *body.Status == "offline" || *body.Status == "reconnecting" || *body.Status == "failed") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"online", "offline", "reconnecting", "failed"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	return
}
