// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents service
//
// Command:
// $ goa gen vigil/design

package incidents

import (
	"context"
)

// Incident listing, review and statistics
type Service interface {
	// List incidents, newest first
	List(context.Context, *ListPayload) (res *IncidentPage, err error)
	// Get an incident with its alerts
	Get(context.Context, *GetPayload) (res *IncidentDetail, err error)
	// Apply an operator decision to an incident
	Review(context.Context, *ReviewPayload) (res *Incident, err error)
	// Manually close an active incident
	Close(context.Context, *ClosePayload) (res *Incident, err error)
	// Aggregate incident counters
	Stats(context.Context) (res *IncidentCounters, err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "vigil"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "incidents"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [5]string{"list", "get", "review", "close", "stats"}

// One persisted detection event under an incident
type Alert struct {
	// Alert unique identifier
	ID string
	// Detected weapon class
	WeaponType string
	// Detection confidence (0-1)
	Confidence float64
	// Severity tier
	Severity *string
	// Snapshot object reference
	Snapshot *string
	// Detection box
	Bbox *BoundingBox
	// Alert status
	Status string
	// Detection timestamp
	Timestamp string
}

// Bad request error
type BadRequestError struct {
	// Error message
	Message string
	// Error details
	Details *string
}

// Detection box in source-frame pixel coordinates
type BoundingBox struct {
	// Left
	X1 float64
	// Top
	Y1 float64
	// Right
	X2 float64
	// Bottom
	Y2 float64
}

// ClosePayload is the payload type of the incidents service close method.
type ClosePayload struct {
	// Incident ID
	ID string
}

// GetPayload is the payload type of the incidents service get method.
type GetPayload struct {
	// Incident ID
	ID string
}

// Incident is the result type of the incidents service review method.
type Incident struct {
	// Incident unique identifier
	ID string
	// Camera ID
	CameraID string
	// Camera display name
	CameraName string
	// Camera location
	Location *string
	// Primary weapon class
	WeaponType string
	// Severity tier
	Severity *string
	// Highest detection confidence
	MaxConfidence float64
	// Mean detection confidence
	AvgConfidence float64
	// Detections folded into the incident
	DetectionCount int
	// Alerts emitted for the incident
	AlertCount int
	// Snapshot of the strongest detection
	BestSnapshot *string
	// First detection timestamp
	StartedAt string
	// Most recent detection timestamp
	LastDetectionAt string
	// Close timestamp
	EndedAt *string
	// Incident status
	Status string
	// Reviewer identity
	ReviewedBy *string
	// Review timestamp
	ReviewedAt *string
	// Review notes
	Notes *string
}

// IncidentCounters is the result type of the incidents service stats method.
type IncidentCounters struct {
	// All incidents
	Total int
	// Currently active incidents
	Active int
	// Incident count per status
	ByStatus map[string]int
	// Incident count per camera
	ByCamera map[string]int
}

// IncidentDetail is the result type of the incidents service get method.
type IncidentDetail struct {
	// The incident
	Incident *Incident
	// Alerts, newest first
	Alerts []*Alert
}

// IncidentPage is the result type of the incidents service list method.
type IncidentPage struct {
	// Incidents on this page
	Items []*Incident
	// Total matching incidents
	Total int
	// Page number
	Page int
	// Page size
	PageSize int
}

// ListPayload is the payload type of the incidents service list method.
type ListPayload struct {
	// Filter by status
	Status *string
	// Filter by camera ID
	CameraID *string
	// Page number
	Page int
	// Page size
	PageSize int
}

// Resource not found error
type NotFoundError struct {
	// Error message
	Message string
	// Resource ID
	ID string
}

// ReviewPayload is the payload type of the incidents service review method.
type ReviewPayload struct {
	// Incident ID
	ID string
	// Review decision
	Decision string
	// Reviewer identity
	ReviewedBy string
	// Review notes
	Notes *string
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
