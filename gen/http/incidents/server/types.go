// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents HTTP server types
//
// Command:
// $ goa gen vigil/design

package server

import (
	incidents "vigil/gen/incidents"

	goa "goa.design/goa/v3/pkg"
)

// ReviewRequestBody is the type of the "incidents" service "review" endpoint
// HTTP request body.
type ReviewRequestBody struct {
	// Review decision
	Decision *string `form:"decision,omitempty" json:"decision,omitempty" xml:"decision,omitempty"`
	// Reviewer identity
	ReviewedBy *string `form:"reviewed_by,omitempty" json:"reviewed_by,omitempty" xml:"reviewed_by,omitempty"`
	// Review notes
	Notes *string `form:"notes,omitempty" json:"notes,omitempty" xml:"notes,omitempty"`
}

// ListResponseBody is the type of the "incidents" service "list" endpoint HTTP
// response body.
type ListResponseBody struct {
	// Incidents on this page
	Items []*IncidentResponseBody `form:"items" json:"items" xml:"items"`
	// Total matching incidents
	Total int `form:"total" json:"total" xml:"total"`
	// Page number
	Page int `form:"page" json:"page" xml:"page"`
	// Page size
	PageSize int `form:"page_size" json:"page_size" xml:"page_size"`
}

// GetResponseBody is the type of the "incidents" service "get" endpoint HTTP
// response body.
type GetResponseBody struct {
	// The incident
	Incident *IncidentResponseBody `form:"incident" json:"incident" xml:"incident"`
	// Alerts, newest first
	Alerts []*AlertResponseBody `form:"alerts" json:"alerts" xml:"alerts"`
}

// ReviewResponseBody is the type of the "incidents" service "review" endpoint
// HTTP response body.
type ReviewResponseBody struct {
	// Incident unique identifier
	ID string `form:"id" json:"id" xml:"id"`
	// Camera ID
	CameraID string `form:"camera_id" json:"camera_id" xml:"camera_id"`
	// Camera display name
	CameraName string `form:"camera_name" json:"camera_name" xml:"camera_name"`
	// Camera location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Primary weapon class
	WeaponType string `form:"weapon_type" json:"weapon_type" xml:"weapon_type"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Highest detection confidence
	MaxConfidence float64 `form:"max_confidence" json:"max_confidence" xml:"max_confidence"`
	// Mean detection confidence
	AvgConfidence float64 `form:"avg_confidence" json:"avg_confidence" xml:"avg_confidence"`
	// Detections folded into the incident
	DetectionCount int `form:"detection_count" json:"detection_count" xml:"detection_count"`
	// Alerts emitted for the incident
	AlertCount int `form:"alert_count" json:"alert_count" xml:"alert_count"`
	// Snapshot of the strongest detection
	BestSnapshot *string `form:"best_snapshot,omitempty" json:"best_snapshot,omitempty" xml:"best_snapshot,omitempty"`
	// First detection timestamp
	StartedAt string `form:"started_at" json:"started_at" xml:"started_at"`
	// Most recent detection timestamp
	LastDetectionAt string `form:"last_detection_at" json:"last_detection_at" xml:"last_detection_at"`
	// Close timestamp
	EndedAt *string `form:"ended_at,omitempty" json:"ended_at,omitempty" xml:"ended_at,omitempty"`
	// Incident status
	Status string `form:"status" json:"status" xml:"status"`
	// Reviewer identity
	ReviewedBy *string `form:"reviewed_by,omitempty" json:"reviewed_by,omitempty" xml:"reviewed_by,omitempty"`
	// Review timestamp
	ReviewedAt *string `form:"reviewed_at,omitempty" json:"reviewed_at,omitempty" xml:"reviewed_at,omitempty"`
	// Review notes
	Notes *string `form:"notes,omitempty" json:"notes,omitempty" xml:"notes,omitempty"`
}

// CloseResponseBody is the type of the "incidents" service "close" endpoint
// HTTP response body.
type CloseResponseBody struct {
	// Incident unique identifier
	ID string `form:"id" json:"id" xml:"id"`
	// Camera ID
	CameraID string `form:"camera_id" json:"camera_id" xml:"camera_id"`
	// Camera display name
	CameraName string `form:"camera_name" json:"camera_name" xml:"camera_name"`
	// Camera location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Primary weapon class
	WeaponType string `form:"weapon_type" json:"weapon_type" xml:"weapon_type"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Highest detection confidence
	MaxConfidence float64 `form:"max_confidence" json:"max_confidence" xml:"max_confidence"`
	// Mean detection confidence
	AvgConfidence float64 `form:"avg_confidence" json:"avg_confidence" xml:"avg_confidence"`
	// Detections folded into the incident
	DetectionCount int `form:"detection_count" json:"detection_count" xml:"detection_count"`
	// Alerts emitted for the incident
	AlertCount int `form:"alert_count" json:"alert_count" xml:"alert_count"`
	// Snapshot of the strongest detection
	BestSnapshot *string `form:"best_snapshot,omitempty" json:"best_snapshot,omitempty" xml:"best_snapshot,omitempty"`
	// First detection timestamp
	StartedAt string `form:"started_at" json:"started_at" xml:"started_at"`
	// Most recent detection timestamp
	LastDetectionAt string `form:"last_detection_at" json:"last_detection_at" xml:"last_detection_at"`
	// Close timestamp
	EndedAt *string `form:"ended_at,omitempty" json:"ended_at,omitempty" xml:"ended_at,omitempty"`
	// Incident status
	Status string `form:"status" json:"status" xml:"status"`
	// Reviewer identity
	ReviewedBy *string `form:"reviewed_by,omitempty" json:"reviewed_by,omitempty" xml:"reviewed_by,omitempty"`
	// Review timestamp
	ReviewedAt *string `form:"reviewed_at,omitempty" json:"reviewed_at,omitempty" xml:"reviewed_at,omitempty"`
	// Review notes
	Notes *string `form:"notes,omitempty" json:"notes,omitempty" xml:"notes,omitempty"`
}

// StatsResponseBody is the type of the "incidents" service "stats" endpoint
// HTTP response body.
type StatsResponseBody struct {
	// All incidents
	Total int `form:"total" json:"total" xml:"total"`
	// Currently active incidents
	Active int `form:"active" json:"active" xml:"active"`
	// Incident count per status
	ByStatus map[string]int `form:"by_status" json:"by_status" xml:"by_status"`
	// Incident count per camera
	ByCamera map[string]int `form:"by_camera" json:"by_camera" xml:"by_camera"`
}

// GetNotFoundResponseBody is the type of the "incidents" service "get"
// endpoint HTTP response body for the "not_found" error.
type GetNotFoundResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Resource ID
	ID string `form:"id" json:"id" xml:"id"`
}

// ReviewBadRequestResponseBody is the type of the "incidents" service "review"
// endpoint HTTP response body for the "bad_request" error.
type ReviewBadRequestResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Error details
	Details *string `form:"details,omitempty" json:"details,omitempty" xml:"details,omitempty"`
}

// ReviewNotFoundResponseBody is the type of the "incidents" service "review"
// endpoint HTTP response body for the "not_found" error.
type ReviewNotFoundResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Resource ID
	ID string `form:"id" json:"id" xml:"id"`
}

// CloseNotFoundResponseBody is the type of the "incidents" service "close"
// endpoint HTTP response body for the "not_found" error.
type CloseNotFoundResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Resource ID
	ID string `form:"id" json:"id" xml:"id"`
}

// IncidentResponseBody is used to define fields on response body types.
type IncidentResponseBody struct {
	// Incident unique identifier
	ID string `form:"id" json:"id" xml:"id"`
	// Camera ID
	CameraID string `form:"camera_id" json:"camera_id" xml:"camera_id"`
	// Camera display name
	CameraName string `form:"camera_name" json:"camera_name" xml:"camera_name"`
	// Camera location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Primary weapon class
	WeaponType string `form:"weapon_type" json:"weapon_type" xml:"weapon_type"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Highest detection confidence
	MaxConfidence float64 `form:"max_confidence" json:"max_confidence" xml:"max_confidence"`
	// Mean detection confidence
	AvgConfidence float64 `form:"avg_confidence" json:"avg_confidence" xml:"avg_confidence"`
	// Detections folded into the incident
	DetectionCount int `form:"detection_count" json:"detection_count" xml:"detection_count"`
	// Alerts emitted for the incident
	AlertCount int `form:"alert_count" json:"alert_count" xml:"alert_count"`
	// Snapshot of the strongest detection
	BestSnapshot *string `form:"best_snapshot,omitempty" json:"best_snapshot,omitempty" xml:"best_snapshot,omitempty"`
	// First detection timestamp
	StartedAt string `form:"started_at" json:"started_at" xml:"started_at"`
	// Most recent detection timestamp
	LastDetectionAt string `form:"last_detection_at" json:"last_detection_at" xml:"last_detection_at"`
	// Close timestamp
	EndedAt *string `form:"ended_at,omitempty" json:"ended_at,omitempty" xml:"ended_at,omitempty"`
	// Incident status
	Status string `form:"status" json:"status" xml:"status"`
	// Reviewer identity
	ReviewedBy *string `form:"reviewed_by,omitempty" json:"reviewed_by,omitempty" xml:"reviewed_by,omitempty"`
	// Review timestamp
	ReviewedAt *string `form:"reviewed_at,omitempty" json:"reviewed_at,omitempty" xml:"reviewed_at,omitempty"`
	// Review notes
	Notes *string `form:"notes,omitempty" json:"notes,omitempty" xml:"notes,omitempty"`
}

// AlertResponseBody is used to define fields on response body types.
type AlertResponseBody struct {
	// Alert unique identifier
	ID string `form:"id" json:"id" xml:"id"`
	// Detected weapon class
	WeaponType string `form:"weapon_type" json:"weapon_type" xml:"weapon_type"`
	// Detection confidence (0-1)
	Confidence float64 `form:"confidence" json:"confidence" xml:"confidence"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Snapshot object reference
	Snapshot *string `form:"snapshot,omitempty" json:"snapshot,omitempty" xml:"snapshot,omitempty"`
	// Detection box
	Bbox *BoundingBoxResponseBody `form:"bbox,omitempty" json:"bbox,omitempty" xml:"bbox,omitempty"`
	// Alert status
	Status string `form:"status" json:"status" xml:"status"`
	// Detection timestamp
	Timestamp string `form:"timestamp" json:"timestamp" xml:"timestamp"`
}

// BoundingBoxResponseBody is used to define fields on response body types.
type BoundingBoxResponseBody struct {
	// Left
	X1 float64 `form:"x1" json:"x1" xml:"x1"`
	// Top
	Y1 float64 `form:"y1" json:"y1" xml:"y1"`
	// Right
	X2 float64 `form:"x2" json:"x2" xml:"x2"`
	// Bottom
	Y2 float64 `form:"y2" json:"y2" xml:"y2"`
}

// NewListResponseBody builds the HTTP response body from the result of the
// "list" endpoint of the "incidents" service.
func NewListResponseBody(res *incidents.IncidentPage) *ListResponseBody {
	body := &ListResponseBody{
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
	}
	if res.Items != nil {
		body.Items = make([]*IncidentResponseBody, len(res.Items))
		for i, val := range res.Items {
			if val == nil {
				body.Items[i] = nil
				continue
			}
			body.Items[i] = marshalIncidentsIncidentToIncidentResponseBody(val)
		}
	} else {
		body.Items = []*IncidentResponseBody{}
	}
	return body
}

// NewGetResponseBody builds the HTTP response body from the result of the
// "get" endpoint of the "incidents" service.
func NewGetResponseBody(res *incidents.IncidentDetail) *GetResponseBody {
	body := &GetResponseBody{}
	if res.Incident != nil {
		body.Incident = marshalIncidentsIncidentToIncidentResponseBody(res.Incident)
	}
	if res.Alerts != nil {
		body.Alerts = make([]*AlertResponseBody, len(res.Alerts))
		for i, val := range res.Alerts {
			if val == nil {
				body.Alerts[i] = nil
				continue
			}
			body.Alerts[i] = marshalIncidentsAlertToAlertResponseBody(val)
		}
	} else {
		body.Alerts = []*AlertResponseBody{}
	}
	return body
}

// NewReviewResponseBody builds the HTTP response body from the result of the
// "review" endpoint of the "incidents" service.
func NewReviewResponseBody(res *incidents.Incident) *ReviewResponseBody {
	body := &ReviewResponseBody{
		ID:              res.ID,
		CameraID:        res.CameraID,
		CameraName:      res.CameraName,
		Location:        res.Location,
		WeaponType:      res.WeaponType,
		Severity:        res.Severity,
		MaxConfidence:   res.MaxConfidence,
		AvgConfidence:   res.AvgConfidence,
		DetectionCount:  res.DetectionCount,
		AlertCount:      res.AlertCount,
		BestSnapshot:    res.BestSnapshot,
		StartedAt:       res.StartedAt,
		LastDetectionAt: res.LastDetectionAt,
		EndedAt:         res.EndedAt,
		Status:          res.Status,
		ReviewedBy:      res.ReviewedBy,
		ReviewedAt:      res.ReviewedAt,
		Notes:           res.Notes,
	}
	return body
}

// NewCloseResponseBody builds the HTTP response body from the result of the
// "close" endpoint of the "incidents" service.
func NewCloseResponseBody(res *incidents.Incident) *CloseResponseBody {
	body := &CloseResponseBody{
		ID:              res.ID,
		CameraID:        res.CameraID,
		CameraName:      res.CameraName,
		Location:        res.Location,
		WeaponType:      res.WeaponType,
		Severity:        res.Severity,
		MaxConfidence:   res.MaxConfidence,
		AvgConfidence:   res.AvgConfidence,
		DetectionCount:  res.DetectionCount,
		AlertCount:      res.AlertCount,
		BestSnapshot:    res.BestSnapshot,
		StartedAt:       res.StartedAt,
		LastDetectionAt: res.LastDetectionAt,
		EndedAt:         res.EndedAt,
		Status:          res.Status,
		ReviewedBy:      res.ReviewedBy,
		ReviewedAt:      res.ReviewedAt,
		Notes:           res.Notes,
	}
	return body
}

// NewStatsResponseBody builds the HTTP response body from the result of the
// "stats" endpoint of the "incidents" service.
func NewStatsResponseBody(res *incidents.IncidentCounters) *StatsResponseBody {
	body := &StatsResponseBody{
		Total:  res.Total,
		Active: res.Active,
	}
	if res.ByStatus != nil {
		body.ByStatus = make(map[string]int, len(res.ByStatus))
		for key, val := range res.ByStatus {
			tk := key
			tv := val
			body.ByStatus[tk] = tv
		}
	}
	if res.ByCamera != nil {
		body.ByCamera = make(map[string]int, len(res.ByCamera))
		for key, val := range res.ByCamera {
			tk := key
			tv := val
			body.ByCamera[tk] = tv
		}
	}
	return body
}

// NewGetNotFoundResponseBody builds the HTTP response body from the result of
// the "get" endpoint of the "incidents" service.
func NewGetNotFoundResponseBody(res *incidents.NotFoundError) *GetNotFoundResponseBody {
	body := &GetNotFoundResponseBody{
		Message: res.Message,
		ID:      res.ID,
	}
	return body
}

// NewReviewBadRequestResponseBody builds the HTTP response body from the
// result of the "review" endpoint of the "incidents" service.
func NewReviewBadRequestResponseBody(res *incidents.BadRequestError) *ReviewBadRequestResponseBody {
	body := &ReviewBadRequestResponseBody{
		Message: res.Message,
		Details: res.Details,
	}
	return body
}

// NewReviewNotFoundResponseBody builds the HTTP response body from the result
// of the "review" endpoint of the "incidents" service.
func NewReviewNotFoundResponseBody(res *incidents.NotFoundError) *ReviewNotFoundResponseBody {
	body := &ReviewNotFoundResponseBody{
		Message: res.Message,
		ID:      res.ID,
	}
	return body
}

// NewCloseNotFoundResponseBody builds the HTTP response body from the result
// of the "close" endpoint of the "incidents" service.
func NewCloseNotFoundResponseBody(res *incidents.NotFoundError) *CloseNotFoundResponseBody {
	body := &CloseNotFoundResponseBody{
		Message: res.Message,
		ID:      res.ID,
	}
	return body
}

// NewListPayload builds a incidents service list endpoint payload.
func NewListPayload(status *string, cameraID *string, page int, pageSize int) *incidents.ListPayload {
	v := &incidents.ListPayload{}
	v.Status = status
	v.CameraID = cameraID
	v.Page = page
	v.PageSize = pageSize

	return v
}

// NewGetPayload builds a incidents service get endpoint payload.
func NewGetPayload(id string) *incidents.GetPayload {
	v := &incidents.GetPayload{}
	v.ID = id

	return v
}

// NewReviewPayload builds a incidents service review endpoint payload.
func NewReviewPayload(body *ReviewRequestBody, id string) *incidents.ReviewPayload {
	v := &incidents.ReviewPayload{
		Decision:   *body.Decision,
		ReviewedBy: *body.ReviewedBy,
		Notes:      body.Notes,
	}
	v.ID = id

	return v
}

// NewClosePayload builds a incidents service close endpoint payload.
func NewClosePayload(id string) *incidents.ClosePayload {
	v := &incidents.ClosePayload{}
	v.ID = id

	return v
}

// ValidateReviewRequestBody runs the validations defined on ReviewRequestBody
func ValidateReviewRequestBody(body *ReviewRequestBody) (err error) {
	if body.Decision == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("decision", "body"))
	}
	if body.ReviewedBy == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("reviewed_by", "body"))
	}
	if body.Decision != nil {
		if !(*body.Decision == "confirmed" || *body.Decision == "false_alarm" || *body.Decision == "reviewed") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.decision", *body.Decision, []any{"confirmed", "false_alarm", "reviewed"}))
		}
	}
	return
}
