package incident

import (
	"context"
	"sync"
	"testing"
	"time"

	"vigil/internal/database"
	"vigil/internal/pipeline"
)

// memStore is an in-memory Store double enforcing the same at-most-one-active
// constraint as the SQLite unique index.
type memStore struct {
	mu        sync.Mutex
	incidents map[string]*database.IncidentRecord
	alerts    []*database.AlertRecord
}

func newMemStore() *memStore {
	return &memStore{incidents: make(map[string]*database.IncidentRecord)}
}

func (s *memStore) FindActiveIncident(cameraID, weaponType string, cutoff time.Time) (*database.IncidentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inc := range s.incidents {
		if inc.CameraID == cameraID && inc.PrimaryWeaponType == weaponType &&
			inc.Status == database.IncidentActive && !inc.LastDetectionAt.Before(cutoff) {
			cp := *inc
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) CreateIncident(inc *database.IncidentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.incidents {
		if existing.CameraID == inc.CameraID && existing.PrimaryWeaponType == inc.PrimaryWeaponType &&
			existing.Status == database.IncidentActive {
			return database.ErrActiveConflict
		}
	}
	cp := *inc
	s.incidents[inc.ID] = &cp
	return nil
}

func (s *memStore) UpdateIncident(inc *database.IncidentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *inc
	s.incidents[inc.ID] = &cp
	return nil
}

func (s *memStore) GetIncident(id string) (*database.IncidentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inc, ok := s.incidents[id]
	if !ok {
		return nil, nil
	}
	cp := *inc
	return &cp, nil
}

func (s *memStore) ListIncidents(filter database.IncidentFilter) ([]*database.IncidentRecord, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.IncidentRecord
	for _, inc := range s.incidents {
		if filter.Status != "" && inc.Status != filter.Status {
			continue
		}
		if filter.CameraID != "" && inc.CameraID != filter.CameraID {
			continue
		}
		cp := *inc
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (s *memStore) CloseStaleIncidents(cutoff, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var closed int64
	for _, inc := range s.incidents {
		if inc.Status == database.IncidentActive && inc.LastDetectionAt.Before(cutoff) {
			inc.Status = database.IncidentClosed
			ended := now
			inc.EndedAt = &ended
			closed++
		}
	}
	return closed, nil
}

func (s *memStore) CreateAlert(alert *database.AlertRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *alert
	s.alerts = append(s.alerts, &cp)
	return nil
}

func (s *memStore) ListAlertsByIncident(incidentID string) ([]*database.AlertRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.AlertRecord
	for _, a := range s.alerts {
		if a.IncidentID == incidentID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memStore) CascadeAlertStatus(incidentID, status string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, a := range s.alerts {
		if a.IncidentID == incidentID {
			a.Status = status
			n++
		}
	}
	return n, nil
}

func (s *memStore) Stats() (*database.IncidentStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &database.IncidentStats{
		ByStatus: make(map[string]int),
		ByCamera: make(map[string]int),
	}
	for _, inc := range s.incidents {
		stats.Total++
		stats.ByStatus[inc.Status]++
		stats.ByCamera[inc.CameraID]++
		if inc.Status == database.IncidentActive {
			stats.Active++
		}
	}
	return stats, nil
}

func (s *memStore) activeIncidents() []*database.IncidentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.IncidentRecord
	for _, inc := range s.incidents {
		if inc.Status == database.IncidentActive {
			cp := *inc
			out = append(out, &cp)
		}
	}
	return out
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []*pipeline.NewIncidentEvent
}

func (n *recordingNotifier) Name() string { return "recorder" }

func (n *recordingNotifier) NotifyIncident(ctx context.Context, evt *pipeline.NewIncidentEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, evt)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

type openThrottle struct{}

func (openThrottle) Allow(key string) bool { return true }

type closedThrottle struct{}

func (closedThrottle) Allow(key string) bool { return false }

func detectionResult(cameraID, class string, confidence float32, severity pipeline.Severity, ts time.Time) *pipeline.DetectionResult {
	return &pipeline.DetectionResult{
		CameraID:  cameraID,
		Timestamp: ts,
		Detections: []pipeline.Detection{
			{Class: class, Confidence: confidence, Severity: severity},
		},
	}
}

// TestEngineOpensIncident verifies the first detection opens an incident,
// persists it as active and notifies external channels exactly once.
func TestEngineOpensIncident(t *testing.T) {
	store := newMemStore()
	bus := pipeline.NewEventBus()
	defer bus.Close()
	notifier := &recordingNotifier{}

	engine := NewEngine(store, nil, openThrottle{}, nil, bus)
	engine.AddNotifier(notifier)

	var opened int
	bus.SubscribeKind(pipeline.EventNewIncident, pipeline.EventHandlerFunc(func(evt pipeline.Event) {
		opened++
	}))

	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.8, pipeline.SeverityCritical, time.Now()))

	active := store.activeIncidents()
	if len(active) != 1 {
		t.Fatalf("Expected 1 active incident, got %d", len(active))
	}
	inc := active[0]
	if inc.PrimaryWeaponType != "pistol" || inc.MaxConfidence < 0.799 || inc.MaxConfidence > 0.801 || inc.DetectionCount != 1 {
		t.Errorf("Unexpected incident: %+v", inc)
	}
	if opened != 1 {
		t.Errorf("Expected 1 new-incident event, got %d", opened)
	}
	if notifier.count() != 1 {
		t.Errorf("Expected 1 notification, got %d", notifier.count())
	}
}

// TestEngineExtendsIncident verifies detections inside the window fold into
// the open incident with an incremental average and monotone max, and that
// follow-up detections never re-notify.
func TestEngineExtendsIncident(t *testing.T) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())
	engine.AddNotifier(notifier)

	base := time.Now()
	for i, conf := range []float32{0.5, 0.7, 0.9} {
		engine.HandleDetections(detectionResult("cam-1", "pistol", conf, pipeline.SeverityCritical,
			base.Add(time.Duration(i)*time.Second)))
	}

	active := store.activeIncidents()
	if len(active) != 1 {
		t.Fatalf("Expected 1 active incident, got %d", len(active))
	}
	inc := active[0]
	if inc.DetectionCount != 3 {
		t.Errorf("Expected detection count 3, got %d", inc.DetectionCount)
	}
	if inc.AvgConfidence < 0.699 || inc.AvgConfidence > 0.701 {
		t.Errorf("Expected average 0.7, got %f", inc.AvgConfidence)
	}
	if inc.MaxConfidence < 0.899 || inc.MaxConfidence > 0.901 {
		t.Errorf("Expected max 0.9, got %f", inc.MaxConfidence)
	}
	if notifier.count() != 1 {
		t.Errorf("Expected a single notification for the incident, got %d", notifier.count())
	}
}

// TestEngineMaxNeverDecreases verifies a weaker follow-up detection lowers
// the average but not the maximum.
func TestEngineMaxNeverDecreases(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())

	base := time.Now()
	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.9, pipeline.SeverityCritical, base))
	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.3, pipeline.SeverityCritical, base.Add(time.Second)))

	inc := store.activeIncidents()[0]
	if inc.MaxConfidence < 0.899 {
		t.Errorf("Expected max to stay at 0.9, got %f", inc.MaxConfidence)
	}
	if inc.AvgConfidence > 0.601 || inc.AvgConfidence < 0.599 {
		t.Errorf("Expected average 0.6, got %f", inc.AvgConfidence)
	}
}

// TestEngineSeparateIncidentsPerWeaponType verifies a frame with two weapon
// classes opens two incidents on the same camera.
func TestEngineSeparateIncidentsPerWeaponType(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())

	result := &pipeline.DetectionResult{
		CameraID:  "cam-1",
		Timestamp: time.Now(),
		Detections: []pipeline.Detection{
			{Class: "pistol", Confidence: 0.8, Severity: pipeline.SeverityCritical},
			{Class: "knife", Confidence: 0.6, Severity: pipeline.SeverityHigh},
		},
	}
	engine.HandleDetections(result)

	active := store.activeIncidents()
	if len(active) != 2 {
		t.Fatalf("Expected 2 active incidents, got %d", len(active))
	}
}

// TestEngineNewIncidentAfterTimeout verifies a detection falling outside the
// grouping window opens a fresh incident instead of extending the old one.
func TestEngineNewIncidentAfterTimeout(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())

	base := time.Now()
	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.8, pipeline.SeverityCritical, base))

	// The stale incident is auto-closed by the sweep before the next
	// detection arrives.
	store.CloseStaleIncidents(base.Add(IncidentTimeout+time.Minute).Add(-IncidentTimeout), base.Add(IncidentTimeout))

	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.7, pipeline.SeverityCritical,
		base.Add(IncidentTimeout+time.Minute)))

	stats, _ := store.Stats()
	if stats.Total != 2 {
		t.Fatalf("Expected 2 incidents total, got %d", stats.Total)
	}
	if stats.Active != 1 {
		t.Errorf("Expected 1 active incident, got %d", stats.Active)
	}
}

// TestEngineStaleActiveReplaced verifies that when the sweep has not yet
// closed a timed-out incident, a new detection closes it in place and opens
// a fresh one rather than failing.
func TestEngineStaleActiveReplaced(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())

	base := time.Now()
	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.8, pipeline.SeverityCritical, base))
	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.7, pipeline.SeverityCritical,
		base.Add(IncidentTimeout+time.Minute)))

	stats, _ := store.Stats()
	if stats.Total != 2 {
		t.Fatalf("Expected 2 incidents, got %d", stats.Total)
	}
	if stats.Active != 1 {
		t.Fatalf("Expected 1 active incident, got %d", stats.Active)
	}

	active := store.activeIncidents()[0]
	if active.MaxConfidence < 0.699 || active.MaxConfidence > 0.701 || active.DetectionCount != 1 {
		t.Errorf("Expected a fresh incident, got %+v", active)
	}
}

// TestEngineAtMostOneActive verifies concurrent detections for the same
// camera and weapon type never produce two active incidents.
func TestEngineAtMostOneActive(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())

	const writers = 100
	var wg sync.WaitGroup
	base := time.Now()
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engine.HandleDetections(detectionResult("cam-1", "pistol", 0.8, pipeline.SeverityCritical,
				base.Add(time.Duration(i)*time.Millisecond)))
		}(i)
	}
	wg.Wait()

	active := store.activeIncidents()
	if len(active) != 1 {
		t.Fatalf("Expected exactly 1 active incident, got %d", len(active))
	}
	if active[0].DetectionCount != writers {
		t.Errorf("Expected all %d detections folded in, got %d", writers, active[0].DetectionCount)
	}
}

// TestEngineCriticalAlertPersisted verifies critical detections create an
// alert and bump the incident's alert count; non-critical ones do not.
func TestEngineCriticalAlertPersisted(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())

	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.9, pipeline.SeverityCritical, time.Now()))
	engine.HandleDetections(detectionResult("cam-2", "knife", 0.9, pipeline.SeverityHigh, time.Now()))

	if len(store.alerts) != 1 {
		t.Fatalf("Expected 1 alert, got %d", len(store.alerts))
	}
	if store.alerts[0].WeaponType != "pistol" || store.alerts[0].Status != database.AlertNew {
		t.Errorf("Unexpected alert: %+v", store.alerts[0])
	}

	for _, inc := range store.activeIncidents() {
		switch inc.CameraID {
		case "cam-1":
			if inc.AlertCount != 1 {
				t.Errorf("Expected alert count 1 on cam-1 incident, got %d", inc.AlertCount)
			}
		case "cam-2":
			if inc.AlertCount != 0 {
				t.Errorf("Expected alert count 0 on cam-2 incident, got %d", inc.AlertCount)
			}
		}
	}
}

// TestEngineThrottledAlert verifies a denied throttle suppresses the alert
// row but the incident still updates.
func TestEngineThrottledAlert(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, closedThrottle{}, nil, pipeline.NewEventBus())

	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.9, pipeline.SeverityCritical, time.Now()))

	if len(store.alerts) != 0 {
		t.Errorf("Expected no alerts under throttle, got %d", len(store.alerts))
	}
	if len(store.activeIncidents()) != 1 {
		t.Error("Expected the incident to open regardless of throttling")
	}
}

// TestEngineReviewCascade verifies each review decision lands on the
// incident and cascades the matching status to its alerts.
func TestEngineReviewCascade(t *testing.T) {
	cases := []struct {
		decision    ReviewDecision
		alertStatus string
	}{
		{DecisionConfirmed, database.AlertConfirmed},
		{DecisionFalseAlarm, database.AlertFalseAlarm},
		{DecisionReviewed, database.AlertUnderReview},
	}

	for _, tc := range cases {
		store := newMemStore()
		engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())
		engine.HandleDetections(detectionResult("cam-1", "pistol", 0.9, pipeline.SeverityCritical, time.Now()))

		id := store.activeIncidents()[0].ID
		reviewed, err := engine.Review(id, tc.decision, "operator-7", "checked the footage")
		if err != nil {
			t.Fatalf("Review(%s) failed: %v", tc.decision, err)
		}

		if reviewed.Status != string(tc.decision) {
			t.Errorf("Expected status %s, got %s", tc.decision, reviewed.Status)
		}
		if reviewed.ReviewedBy != "operator-7" || reviewed.ReviewedAt == nil {
			t.Errorf("Expected review stamp, got %+v", reviewed)
		}
		if reviewed.EndedAt == nil {
			t.Errorf("Expected review to end the incident")
		}

		alerts, _ := store.ListAlertsByIncident(id)
		for _, a := range alerts {
			if a.Status != tc.alertStatus {
				t.Errorf("Decision %s: expected alert status %s, got %s", tc.decision, tc.alertStatus, a.Status)
			}
		}
	}
}

// TestEngineReviewInvalidDecision verifies unknown verdicts are rejected.
func TestEngineReviewInvalidDecision(t *testing.T) {
	engine := NewEngine(newMemStore(), nil, openThrottle{}, nil, pipeline.NewEventBus())
	if _, err := engine.Review("inc-1", ReviewDecision("maybe"), "op", ""); err == nil {
		t.Error("Expected error for invalid decision")
	}
}

// TestEngineCloseNow verifies manual close transitions only active incidents
// and is a no-op on anything else.
func TestEngineCloseNow(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())
	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.9, pipeline.SeverityCritical, time.Now()))

	id := store.activeIncidents()[0].ID
	closed, err := engine.CloseNow(id)
	if err != nil {
		t.Fatalf("CloseNow failed: %v", err)
	}
	if closed.Status != database.IncidentClosed || closed.EndedAt == nil {
		t.Errorf("Expected closed incident with end time, got %+v", closed)
	}

	// Second close leaves the record as-is.
	again, err := engine.CloseNow(id)
	if err != nil {
		t.Fatalf("Second CloseNow failed: %v", err)
	}
	if !again.EndedAt.Equal(*closed.EndedAt) {
		t.Error("Expected second close to be a no-op")
	}
}

// TestEngineListSweepsFirst verifies stale incidents are auto-closed before
// a listing is served.
func TestEngineListSweepsFirst(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store, nil, openThrottle{}, nil, pipeline.NewEventBus())

	stale := time.Now().Add(-2 * IncidentTimeout)
	engine.HandleDetections(detectionResult("cam-1", "pistol", 0.9, pipeline.SeverityCritical, stale))

	incs, total, err := engine.List(database.IncidentFilter{Status: database.IncidentClosed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(incs) != 1 {
		t.Fatalf("Expected the stale incident to appear closed, got %d", total)
	}
	if incs[0].EndedAt == nil {
		t.Error("Expected auto-closed incident to carry an end time")
	}
}
