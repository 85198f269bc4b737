// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents HTTP client types
//
// Command:
// $ goa gen vigil/design

package client

import (
	incidents "vigil/gen/incidents"

	goa "goa.design/goa/v3/pkg"
)

// ReviewRequestBody is the type of the "incidents" service "review" endpoint
// HTTP request body.
type ReviewRequestBody struct {
	// Review decision
	Decision string `form:"decision" json:"decision" xml:"decision"`
	// Reviewer identity
	ReviewedBy string `form:"reviewed_by" json:"reviewed_by" xml:"reviewed_by"`
	// Review notes
	Notes *string `form:"notes,omitempty" json:"notes,omitempty" xml:"notes,omitempty"`
}

// ListResponseBody is the type of the "incidents" service "list" endpoint HTTP
// response body.
type ListResponseBody struct {
	// Incidents on this page
	Items []*IncidentResponseBody `form:"items,omitempty" json:"items,omitempty" xml:"items,omitempty"`
	// Total matching incidents
	Total *int `form:"total,omitempty" json:"total,omitempty" xml:"total,omitempty"`
	// Page number
	Page *int `form:"page,omitempty" json:"page,omitempty" xml:"page,omitempty"`
	// Page size
	PageSize *int `form:"page_size,omitempty" json:"page_size,omitempty" xml:"page_size,omitempty"`
}

// GetResponseBody is the type of the "incidents" service "get" endpoint HTTP
// response body.
type GetResponseBody struct {
	// The incident
	Incident *IncidentResponseBody `form:"incident,omitempty" json:"incident,omitempty" xml:"incident,omitempty"`
	// Alerts, newest first
	Alerts []*AlertResponseBody `form:"alerts,omitempty" json:"alerts,omitempty" xml:"alerts,omitempty"`
}

// ReviewResponseBody is the type of the "incidents" service "review" endpoint
// HTTP response body.
type ReviewResponseBody struct {
	// Incident unique identifier
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Camera ID
	CameraID *string `form:"camera_id,omitempty" json:"camera_id,omitempty" xml:"camera_id,omitempty"`
	// Camera display name
	CameraName *string `form:"camera_name,omitempty" json:"camera_name,omitempty" xml:"camera_name,omitempty"`
	// Camera location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Primary weapon class
	WeaponType *string `form:"weapon_type,omitempty" json:"weapon_type,omitempty" xml:"weapon_type,omitempty"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Highest detection confidence
	MaxConfidence *float64 `form:"max_confidence,omitempty" json:"max_confidence,omitempty" xml:"max_confidence,omitempty"`
	// Mean detection confidence
	AvgConfidence *float64 `form:"avg_confidence,omitempty" json:"avg_confidence,omitempty" xml:"avg_confidence,omitempty"`
	// Detections folded into the incident
	DetectionCount *int `form:"detection_count,omitempty" json:"detection_count,omitempty" xml:"detection_count,omitempty"`
	// Alerts emitted for the incident
	AlertCount *int `form:"alert_count,omitempty" json:"alert_count,omitempty" xml:"alert_count,omitempty"`
	// Snapshot of the strongest detection
	BestSnapshot *string `form:"best_snapshot,omitempty" json:"best_snapshot,omitempty" xml:"best_snapshot,omitempty"`
	// First detection timestamp
	StartedAt *string `form:"started_at,omitempty" json:"started_at,omitempty" xml:"started_at,omitempty"`
	// Most recent detection timestamp
	LastDetectionAt *string `form:"last_detection_at,omitempty" json:"last_detection_at,omitempty" xml:"last_detection_at,omitempty"`
	// Close timestamp
	EndedAt *string `form:"ended_at,omitempty" json:"ended_at,omitempty" xml:"ended_at,omitempty"`
	// Incident status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
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
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Camera ID
	CameraID *string `form:"camera_id,omitempty" json:"camera_id,omitempty" xml:"camera_id,omitempty"`
	// Camera display name
	CameraName *string `form:"camera_name,omitempty" json:"camera_name,omitempty" xml:"camera_name,omitempty"`
	// Camera location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Primary weapon class
	WeaponType *string `form:"weapon_type,omitempty" json:"weapon_type,omitempty" xml:"weapon_type,omitempty"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Highest detection confidence
	MaxConfidence *float64 `form:"max_confidence,omitempty" json:"max_confidence,omitempty" xml:"max_confidence,omitempty"`
	// Mean detection confidence
	AvgConfidence *float64 `form:"avg_confidence,omitempty" json:"avg_confidence,omitempty" xml:"avg_confidence,omitempty"`
	// Detections folded into the incident
	DetectionCount *int `form:"detection_count,omitempty" json:"detection_count,omitempty" xml:"detection_count,omitempty"`
	// Alerts emitted for the incident
	AlertCount *int `form:"alert_count,omitempty" json:"alert_count,omitempty" xml:"alert_count,omitempty"`
	// Snapshot of the strongest detection
	BestSnapshot *string `form:"best_snapshot,omitempty" json:"best_snapshot,omitempty" xml:"best_snapshot,omitempty"`
	// First detection timestamp
	StartedAt *string `form:"started_at,omitempty" json:"started_at,omitempty" xml:"started_at,omitempty"`
	// Most recent detection timestamp
	LastDetectionAt *string `form:"last_detection_at,omitempty" json:"last_detection_at,omitempty" xml:"last_detection_at,omitempty"`
	// Close timestamp
	EndedAt *string `form:"ended_at,omitempty" json:"ended_at,omitempty" xml:"ended_at,omitempty"`
	// Incident status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
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
	Total *int `form:"total,omitempty" json:"total,omitempty" xml:"total,omitempty"`
	// Currently active incidents
	Active *int `form:"active,omitempty" json:"active,omitempty" xml:"active,omitempty"`
	// Incident count per status
	ByStatus map[string]int `form:"by_status,omitempty" json:"by_status,omitempty" xml:"by_status,omitempty"`
	// Incident count per camera
	ByCamera map[string]int `form:"by_camera,omitempty" json:"by_camera,omitempty" xml:"by_camera,omitempty"`
}

// GetNotFoundResponseBody is the type of the "incidents" service "get"
// endpoint HTTP response body for the "not_found" error.
type GetNotFoundResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Resource ID
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
}

// ReviewBadRequestResponseBody is the type of the "incidents" service "review"
// endpoint HTTP response body for the "bad_request" error.
type ReviewBadRequestResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Error details
	Details *string `form:"details,omitempty" json:"details,omitempty" xml:"details,omitempty"`
}

// ReviewNotFoundResponseBody is the type of the "incidents" service "review"
// endpoint HTTP response body for the "not_found" error.
type ReviewNotFoundResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Resource ID
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
}

// CloseNotFoundResponseBody is the type of the "incidents" service "close"
// endpoint HTTP response body for the "not_found" error.
type CloseNotFoundResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Resource ID
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
}

// IncidentResponseBody is used to define fields on response body types.
type IncidentResponseBody struct {
	// Incident unique identifier
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Camera ID
	CameraID *string `form:"camera_id,omitempty" json:"camera_id,omitempty" xml:"camera_id,omitempty"`
	// Camera display name
	CameraName *string `form:"camera_name,omitempty" json:"camera_name,omitempty" xml:"camera_name,omitempty"`
	// Camera location
	Location *string `form:"location,omitempty" json:"location,omitempty" xml:"location,omitempty"`
	// Primary weapon class
	WeaponType *string `form:"weapon_type,omitempty" json:"weapon_type,omitempty" xml:"weapon_type,omitempty"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Highest detection confidence
	MaxConfidence *float64 `form:"max_confidence,omitempty" json:"max_confidence,omitempty" xml:"max_confidence,omitempty"`
	// Mean detection confidence
	AvgConfidence *float64 `form:"avg_confidence,omitempty" json:"avg_confidence,omitempty" xml:"avg_confidence,omitempty"`
	// Detections folded into the incident
	DetectionCount *int `form:"detection_count,omitempty" json:"detection_count,omitempty" xml:"detection_count,omitempty"`
	// Alerts emitted for the incident
	AlertCount *int `form:"alert_count,omitempty" json:"alert_count,omitempty" xml:"alert_count,omitempty"`
	// Snapshot of the strongest detection
	BestSnapshot *string `form:"best_snapshot,omitempty" json:"best_snapshot,omitempty" xml:"best_snapshot,omitempty"`
	// First detection timestamp
	StartedAt *string `form:"started_at,omitempty" json:"started_at,omitempty" xml:"started_at,omitempty"`
	// Most recent detection timestamp
	LastDetectionAt *string `form:"last_detection_at,omitempty" json:"last_detection_at,omitempty" xml:"last_detection_at,omitempty"`
	// Close timestamp
	EndedAt *string `form:"ended_at,omitempty" json:"ended_at,omitempty" xml:"ended_at,omitempty"`
	// Incident status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
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
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Detected weapon class
	WeaponType *string `form:"weapon_type,omitempty" json:"weapon_type,omitempty" xml:"weapon_type,omitempty"`
	// Detection confidence (0-1)
	Confidence *float64 `form:"confidence,omitempty" json:"confidence,omitempty" xml:"confidence,omitempty"`
	// Severity tier
	Severity *string `form:"severity,omitempty" json:"severity,omitempty" xml:"severity,omitempty"`
	// Snapshot object reference
	Snapshot *string `form:"snapshot,omitempty" json:"snapshot,omitempty" xml:"snapshot,omitempty"`
	// Detection box
	Bbox *BoundingBoxResponseBody `form:"bbox,omitempty" json:"bbox,omitempty" xml:"bbox,omitempty"`
	// Alert status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Detection timestamp
	Timestamp *string `form:"timestamp,omitempty" json:"timestamp,omitempty" xml:"timestamp,omitempty"`
}

// BoundingBoxResponseBody is used to define fields on response body types.
type BoundingBoxResponseBody struct {
	// Left
	X1 *float64 `form:"x1,omitempty" json:"x1,omitempty" xml:"x1,omitempty"`
	// Top
	Y1 *float64 `form:"y1,omitempty" json:"y1,omitempty" xml:"y1,omitempty"`
	// Right
	X2 *float64 `form:"x2,omitempty" json:"x2,omitempty" xml:"x2,omitempty"`
	// Bottom
	Y2 *float64 `form:"y2,omitempty" json:"y2,omitempty" xml:"y2,omitempty"`
}

// NewReviewRequestBody builds the HTTP request body from the payload of the
// "review" endpoint of the "incidents" service.
func NewReviewRequestBody(p *incidents.ReviewPayload) *ReviewRequestBody {
	body := &ReviewRequestBody{
		Decision:   p.Decision,
		ReviewedBy: p.ReviewedBy,
		Notes:      p.Notes,
	}
	return body
}

// NewListIncidentPageOK builds a "incidents" service "list" endpoint result
// from a HTTP "OK" response.
func NewListIncidentPageOK(body *ListResponseBody) *incidents.IncidentPage {
	v := &incidents.IncidentPage{
		Total:    *body.Total,
		Page:     *body.Page,
		PageSize: *body.PageSize,
	}
	v.Items = make([]*incidents.Incident, len(body.Items))
	for i, val := range body.Items {
		if val == nil {
			v.Items[i] = nil
			continue
		}
		v.Items[i] = unmarshalIncidentResponseBodyToIncidentsIncident(val)
	}

	return v
}

// NewGetIncidentDetailOK builds a "incidents" service "get" endpoint result
// from a HTTP "OK" response.
func NewGetIncidentDetailOK(body *GetResponseBody) *incidents.IncidentDetail {
	v := &incidents.IncidentDetail{}
	v.Incident = unmarshalIncidentResponseBodyToIncidentsIncident(body.Incident)
	v.Alerts = make([]*incidents.Alert, len(body.Alerts))
	for i, val := range body.Alerts {
		if val == nil {
			v.Alerts[i] = nil
			continue
		}
		v.Alerts[i] = unmarshalAlertResponseBodyToIncidentsAlert(val)
	}

	return v
}

// NewGetNotFound builds a incidents service get endpoint not_found error.
func NewGetNotFound(body *GetNotFoundResponseBody) *incidents.NotFoundError {
	v := &incidents.NotFoundError{
		Message: *body.Message,
		ID:      *body.ID,
	}

	return v
}

// NewReviewIncidentOK builds a "incidents" service "review" endpoint result
// from a HTTP "OK" response.
func NewReviewIncidentOK(body *ReviewResponseBody) *incidents.Incident {
	v := &incidents.Incident{
		ID:              *body.ID,
		CameraID:        *body.CameraID,
		CameraName:      *body.CameraName,
		Location:        body.Location,
		WeaponType:      *body.WeaponType,
		Severity:        body.Severity,
		MaxConfidence:   *body.MaxConfidence,
		AvgConfidence:   *body.AvgConfidence,
		DetectionCount:  *body.DetectionCount,
		AlertCount:      *body.AlertCount,
		BestSnapshot:    body.BestSnapshot,
		StartedAt:       *body.StartedAt,
		LastDetectionAt: *body.LastDetectionAt,
		EndedAt:         body.EndedAt,
		Status:          *body.Status,
		ReviewedBy:      body.ReviewedBy,
		ReviewedAt:      body.ReviewedAt,
		Notes:           body.Notes,
	}

	return v
}

// NewReviewBadRequest builds a incidents service review endpoint bad_request
// error.
func NewReviewBadRequest(body *ReviewBadRequestResponseBody) *incidents.BadRequestError {
	v := &incidents.BadRequestError{
		Message: *body.Message,
		Details: body.Details,
	}

	return v
}

// NewReviewNotFound builds a incidents service review endpoint not_found error.
func NewReviewNotFound(body *ReviewNotFoundResponseBody) *incidents.NotFoundError {
	v := &incidents.NotFoundError{
		Message: *body.Message,
		ID:      *body.ID,
	}

	return v
}

// NewCloseIncidentOK builds a "incidents" service "close" endpoint result from
// a HTTP "OK" response.
func NewCloseIncidentOK(body *CloseResponseBody) *incidents.Incident {
	v := &incidents.Incident{
		ID:              *body.ID,
		CameraID:        *body.CameraID,
		CameraName:      *body.CameraName,
		Location:        body.Location,
		WeaponType:      *body.WeaponType,
		Severity:        body.Severity,
		MaxConfidence:   *body.MaxConfidence,
		AvgConfidence:   *body.AvgConfidence,
		DetectionCount:  *body.DetectionCount,
		AlertCount:      *body.AlertCount,
		BestSnapshot:    body.BestSnapshot,
		StartedAt:       *body.StartedAt,
		LastDetectionAt: *body.LastDetectionAt,
		EndedAt:         body.EndedAt,
		Status:          *body.Status,
		ReviewedBy:      body.ReviewedBy,
		ReviewedAt:      body.ReviewedAt,
		Notes:           body.Notes,
	}

	return v
}

// NewCloseNotFound builds a incidents service close endpoint not_found error.
func NewCloseNotFound(body *CloseNotFoundResponseBody) *incidents.NotFoundError {
	v := &incidents.NotFoundError{
		Message: *body.Message,
		ID:      *body.ID,
	}

	return v
}

// NewStatsIncidentCountersOK builds a "incidents" service "stats" endpoint
// result from a HTTP "OK" response.
func NewStatsIncidentCountersOK(body *StatsResponseBody) *incidents.IncidentCounters {
	v := &incidents.IncidentCounters{
		Total:  *body.Total,
		Active: *body.Active,
	}
	v.ByStatus = make(map[string]int, len(body.ByStatus))
	for key, val := range body.ByStatus {
		tk := key
		tv := val
		v.ByStatus[tk] = tv
	}
	v.ByCamera = make(map[string]int, len(body.ByCamera))
	for key, val := range body.ByCamera {
		tk := key
		tv := val
		v.ByCamera[tk] = tv
	}

	return v
}

// ValidateListResponseBody runs the validations defined on ListResponseBody
func ValidateListResponseBody(body *ListResponseBody) (err error) {
	if body.Items == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("items", "body"))
	}
	if body.Total == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("total", "body"))
	}
	if body.Page == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("page", "body"))
	}
	if body.PageSize == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("page_size", "body"))
	}
	for _, e := range body.Items {
		if e != nil {
			if err2 := ValidateIncidentResponseBody(e); err2 != nil {
				err = goa.MergeErrors(err, err2)
			}
		}
	}
	return
}

// ValidateGetResponseBody runs the validations defined on GetResponseBody
func ValidateGetResponseBody(body *GetResponseBody) (err error) {
	if body.Incident == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("incident", "body"))
	}
	if body.Alerts == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("alerts", "body"))
	}
	if body.Incident != nil {
		if err2 := ValidateIncidentResponseBody(body.Incident); err2 != nil {
			err = goa.MergeErrors(err, err2)
		}
	}
	for _, e := range body.Alerts {
		if e != nil {
			if err2 := ValidateAlertResponseBody(e); err2 != nil {
				err = goa.MergeErrors(err, err2)
			}
		}
	}
	return
}

// ValidateReviewResponseBody runs the validations defined on ReviewResponseBody
func ValidateReviewResponseBody(body *ReviewResponseBody) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.CameraID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("camera_id", "body"))
	}
	if body.CameraName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("camera_name", "body"))
	}
	if body.WeaponType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("weapon_type", "body"))
	}
	if body.MaxConfidence == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("max_confidence", "body"))
	}
	if body.AvgConfidence == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("avg_confidence", "body"))
	}
	if body.DetectionCount == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("detection_count", "body"))
	}
	if body.AlertCount == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("alert_count", "body"))
	}
	if body.StartedAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("started_at", "body"))
	}
	if body.LastDetectionAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("last_detection_at", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.StartedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.started_at", *body.StartedAt, goa.FormatDateTime))
	}
	if body.LastDetectionAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.last_detection_at", *body.LastDetectionAt, goa.FormatDateTime))
	}
	if body.EndedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.ended_at", *body.EndedAt, goa.FormatDateTime))
	}
	if body.Status != nil {
		if !(*body.Status == "active" || *body.Status == "closed" || *body.Status == "reviewed" || *body.Status == "confirmed" || *body.Status == "false_alarm") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"active", "closed", "reviewed", "confirmed", "false_alarm"}))
		}
	}
	if body.ReviewedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.reviewed_at", *body.ReviewedAt, goa.FormatDateTime))
	}
	return
}

// ValidateCloseResponseBody runs the validations defined on CloseResponseBody
func ValidateCloseResponseBody(body *CloseResponseBody) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.CameraID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("camera_id", "body"))
	}
	if body.CameraName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("camera_name", "body"))
	}
	if body.WeaponType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("weapon_type", "body"))
	}
	if body.MaxConfidence == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("max_confidence", "body"))
	}
	if body.AvgConfidence == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("avg_confidence", "body"))
	}
	if body.DetectionCount == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("detection_count", "body"))
	}
	if body.AlertCount == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("alert_count", "body"))
	}
	if body.StartedAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("started_at", "body"))
	}
	if body.LastDetectionAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("last_detection_at", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.StartedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.started_at", *body.StartedAt, goa.FormatDateTime))
	}
	if body.LastDetectionAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.last_detection_at", *body.LastDetectionAt, goa.FormatDateTime))
	}
	if body.EndedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.ended_at", *body.EndedAt, goa.FormatDateTime))
	}
	if body.Status != nil {
		if !(*body.Status == "active" || *body.Status == "closed" || *body.Status == "reviewed" || *body.Status == "confirmed" || *body.Status == "false_alarm") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"active", "closed", "reviewed", "confirmed", "false_alarm"}))
		}
	}
	if body.ReviewedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.reviewed_at", *body.ReviewedAt, goa.FormatDateTime))
	}
	return
}

// ValidateStatsResponseBody runs the validations defined on StatsResponseBody
func ValidateStatsResponseBody(body *StatsResponseBody) (err error) {
	if body.Total == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("total", "body"))
	}
	if body.Active == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("active", "body"))
	}
	if body.ByStatus == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("by_status", "body"))
	}
	if body.ByCamera == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("by_camera", "body"))
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

// ValidateReviewBadRequestResponseBody runs the validations defined on
// review_bad_request_response_body
func ValidateReviewBadRequestResponseBody(body *ReviewBadRequestResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateReviewNotFoundResponseBody runs the validations defined on
// review_not_found_response_body
func ValidateReviewNotFoundResponseBody(body *ReviewNotFoundResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	return
}

// ValidateCloseNotFoundResponseBody runs the validations defined on
// close_not_found_response_body
func ValidateCloseNotFoundResponseBody(body *CloseNotFoundResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	return
}

// ValidateIncidentResponseBody runs the validations defined on
// IncidentResponseBody
func ValidateIncidentResponseBody(body *IncidentResponseBody) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.CameraID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("camera_id", "body"))
	}
	if body.CameraName == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("camera_name", "body"))
	}
	if body.WeaponType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("weapon_type", "body"))
	}
	if body.MaxConfidence == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("max_confidence", "body"))
	}
	if body.AvgConfidence == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("avg_confidence", "body"))
	}
	if body.DetectionCount == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("detection_count", "body"))
	}
	if body.AlertCount == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("alert_count", "body"))
	}
	if body.StartedAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("started_at", "body"))
	}
	if body.LastDetectionAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("last_detection_at", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.StartedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.started_at", *body.StartedAt, goa.FormatDateTime))
	}
	if body.LastDetectionAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.last_detection_at", *body.LastDetectionAt, goa.FormatDateTime))
	}
	if body.EndedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.ended_at", *body.EndedAt, goa.FormatDateTime))
	}
	if body.Status != nil {
		if !(*body.Status == "active" || *body.Status == "closed" || *body.Status == "reviewed" || *body.Status == "confirmed" || *body.Status == "false_alarm") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"active", "closed", "reviewed", "confirmed", "false_alarm"}))
		}
	}
	if body.ReviewedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.reviewed_at", *body.ReviewedAt, goa.FormatDateTime))
	}
	return
}

// ValidateAlertResponseBody runs the validations defined on AlertResponseBody
func ValidateAlertResponseBody(body *AlertResponseBody) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.WeaponType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("weapon_type", "body"))
	}
	if body.Confidence == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("confidence", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.Timestamp == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timestamp", "body"))
	}
	if body.Bbox != nil {
		if err2 := ValidateBoundingBoxResponseBody(body.Bbox); err2 != nil {
			err = goa.MergeErrors(err, err2)
		}
	}
	if body.Status != nil {
		if !(*body.Status == "new" || *body.Status == "under_review" || *body.Status == "confirmed" || *body.Status == "false_alarm") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"new", "under_review", "confirmed", "false_alarm"}))
		}
	}
	if body.Timestamp != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.timestamp", *body.Timestamp, goa.FormatDateTime))
	}
	return
}

// ValidateBoundingBoxResponseBody runs the validations defined on
// BoundingBoxResponseBody
func ValidateBoundingBoxResponseBody(body *BoundingBoxResponseBody) (err error) {
	if body.X1 == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("x1", "body"))
	}
	if body.Y1 == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("y1", "body"))
	}
	if body.X2 == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("x2", "body"))
	}
	if body.Y2 == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("y2", "body"))
	}
	return
}
