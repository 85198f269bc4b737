package services

import (
	"context"
	"time"

	incidents "vigil/gen/incidents"
	"vigil/internal/database"
	"vigil/internal/incident"
	"vigil/internal/middleware"
)

// IncidentsImplementation implements the incidents service
type IncidentsImplementation struct {
	engine *incident.Engine
}

// NewIncidentsService creates a new incidents service implementation
func NewIncidentsService(engine *incident.Engine) incidents.Service {
	return &IncidentsImplementation{engine: engine}
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toIncident(rec *database.IncidentRecord) *incidents.Incident {
	return &incidents.Incident{
		ID:              rec.ID,
		CameraID:        rec.CameraID,
		CameraName:      rec.CameraName,
		Location:        optStr(rec.Location),
		WeaponType:      rec.PrimaryWeaponType,
		Severity:        optStr(rec.Severity),
		MaxConfidence:   rec.MaxConfidence,
		AvgConfidence:   rec.AvgConfidence,
		DetectionCount:  rec.DetectionCount,
		AlertCount:      rec.AlertCount,
		BestSnapshot:    optStr(rec.BestSnapshot),
		StartedAt:       rec.StartedAt.Format(time.RFC3339),
		LastDetectionAt: rec.LastDetectionAt.Format(time.RFC3339),
		EndedAt:         optTime(rec.EndedAt),
		Status:          rec.Status,
		ReviewedBy:      optStr(rec.ReviewedBy),
		ReviewedAt:      optTime(rec.ReviewedAt),
		Notes:           optStr(rec.Notes),
	}
}

func toAlert(rec *database.AlertRecord) *incidents.Alert {
	alert := &incidents.Alert{
		ID:         rec.ID,
		WeaponType: rec.WeaponType,
		Confidence: rec.Confidence,
		Severity:   optStr(rec.Severity),
		Snapshot:   optStr(rec.Snapshot),
		Status:     rec.Status,
		Timestamp:  rec.Timestamp.Format(time.RFC3339),
	}
	if rec.BBox != nil {
		alert.Bbox = &incidents.BoundingBox{
			X1: rec.BBox.X1,
			Y1: rec.BBox.Y1,
			X2: rec.BBox.X2,
			Y2: rec.BBox.Y2,
		}
	}
	return alert
}

// List returns a filtered page of incidents
func (s *IncidentsImplementation) List(ctx context.Context, p *incidents.ListPayload) (*incidents.IncidentPage, error) {
	filter := database.IncidentFilter{
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if p.Status != nil {
		filter.Status = *p.Status
	}
	if p.CameraID != nil {
		filter.CameraID = *p.CameraID
	}

	records, total, err := s.engine.List(filter)
	if err != nil {
		return nil, err
	}

	items := make([]*incidents.Incident, len(records))
	for i, rec := range records {
		items[i] = toIncident(rec)
	}
	return &incidents.IncidentPage{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// Get returns an incident with its alerts
func (s *IncidentsImplementation) Get(ctx context.Context, p *incidents.GetPayload) (*incidents.IncidentDetail, error) {
	rec, alertRecs, err := s.engine.Get(p.ID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &incidents.NotFoundError{
			Message: "Incident not found",
			ID:      p.ID,
		}
	}

	alerts := make([]*incidents.Alert, len(alertRecs))
	for i, a := range alertRecs {
		alerts[i] = toAlert(a)
	}
	return &incidents.IncidentDetail{
		Incident: toIncident(rec),
		Alerts:   alerts,
	}, nil
}

// Review applies an operator decision to an incident. When the request is
// authenticated the token identity wins over the payload's reviewed_by, so
// reviews are attributed to the operator who actually made them.
func (s *IncidentsImplementation) Review(ctx context.Context, p *incidents.ReviewPayload) (*incidents.Incident, error) {
	notes := ""
	if p.Notes != nil {
		notes = *p.Notes
	}
	reviewer := p.ReviewedBy
	if name, ok := middleware.ReviewerFromContext(ctx); ok {
		reviewer = name
	}

	rec, err := s.engine.Review(p.ID, incident.ReviewDecision(p.Decision), reviewer, notes)
	if err != nil {
		return nil, &incidents.NotFoundError{
			Message: err.Error(),
			ID:      p.ID,
		}
	}
	return toIncident(rec), nil
}

// Close manually closes an active incident
func (s *IncidentsImplementation) Close(ctx context.Context, p *incidents.ClosePayload) (*incidents.Incident, error) {
	rec, err := s.engine.CloseNow(p.ID)
	if err != nil {
		return nil, &incidents.NotFoundError{
			Message: err.Error(),
			ID:      p.ID,
		}
	}
	return toIncident(rec), nil
}

// Stats returns aggregate incident counters
func (s *IncidentsImplementation) Stats(ctx context.Context) (*incidents.IncidentCounters, error) {
	stats, err := s.engine.Stats()
	if err != nil {
		return nil, err
	}
	return &incidents.IncidentCounters{
		Total:    stats.Total,
		Active:   stats.Active,
		ByStatus: stats.ByStatus,
		ByCamera: stats.ByCamera,
	}, nil
}
