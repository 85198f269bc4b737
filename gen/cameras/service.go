// Code generated by goa v3.24.1, DO NOT EDIT.
//
// cameras service
//
// Command:
// $ goa gen vigil/design

package cameras

import (
	"context"
)

// Camera registry and capture management
type Service interface {
	// List all registered cameras
	List(context.Context) (res []*CameraInfo, err error)
	// Get camera by ID
	Get(context.Context, *GetPayload) (res *CameraInfo, err error)
	// Register a camera and start its capture
	Create(context.Context, *CreatePayload) (res *CameraInfo, err error)
	// Stop and remove a camera
	Delete(context.Context, *DeletePayload) (err error)
	// Get pipeline counters for a camera
	Stats(context.Context, *StatsPayload) (res *CameraCounters, err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "vigil"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "cameras"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [5]string{"list", "get", "create", "delete", "stats"}

// Bad request error
type BadRequestError struct {
	// Error message
	Message string
	// Error details
	Details *string
}

// CameraCounters is the result type of the cameras service stats method.
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

// CameraInfo is the result type of the cameras service get method.
type CameraInfo struct {
	// Camera unique identifier
	ID string
	// Camera display name
	Name string
	// Physical location
	Location *string
	// Stream URL or looped file path
	Source string
	// Capture frame rate
	CaptureFps *int
	// Detection frame rate
	DetectFps *int
	// Queue priority class (1=high, 2=normal, 3=low)
	Priority *int
	// Camera status
	Status string
	// Registration timestamp
	CreatedAt *string
}

// CreatePayload is the payload type of the cameras service create method.
type CreatePayload struct {
	// Camera ID, generated when omitted
	ID *string
	// Camera display name
	Name string
	// Physical location
	Location *string
	// Stream URL or looped file path
	Source string
	// Capture frame rate
	CaptureFps int
	// Detection frame rate
	DetectFps int
	// Queue priority class
	Priority int
}

// DeletePayload is the payload type of the cameras service delete method.
type DeletePayload struct {
	// Camera ID
	ID string
}

// GetPayload is the payload type of the cameras service get method.
type GetPayload struct {
	// Camera ID
	ID string
}

// Resource not found error
type NotFoundError struct {
	// Error message
	Message string
	// Resource ID
	ID string
}

// StatsPayload is the payload type of the cameras service stats method.
type StatsPayload struct {
	// Camera ID
	ID string
}

// Error returns an error description.
func (e *BadRequestError) Error() string {
	return "Bad request error"
}

// ErrorName returns "BadRequestError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *BadRequestError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "BadRequestError".
func (e *BadRequestError) GoaErrorName() string {
	return "bad_request"
}

// Error returns an error description.
func (e *NotFoundError) Error() string {
	return "Resource not found error"
}

// ErrorName returns "NotFoundError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *NotFoundError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "NotFoundError".
func (e *NotFoundError) GoaErrorName() string {
	return "not_found"
}
