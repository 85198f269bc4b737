package incident

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"vigil/internal/database"
	"vigil/internal/pipeline"
)

// IncidentTimeout is the sliding window that groups detections into one
// incident. An Active incident whose last detection is older than this is
// closed and never extended.
const IncidentTimeout = 5 * time.Minute

const sweepInterval = 30 * time.Second

// Store is the persistence surface the engine needs. *database.Database
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	FindActiveIncident(cameraID, weaponType string, cutoff time.Time) (*database.IncidentRecord, error)
	CreateIncident(inc *database.IncidentRecord) error
	UpdateIncident(inc *database.IncidentRecord) error
	GetIncident(id string) (*database.IncidentRecord, error)
	ListIncidents(filter database.IncidentFilter) ([]*database.IncidentRecord, int, error)
	CloseStaleIncidents(cutoff, now time.Time) (int64, error)
	CreateAlert(alert *database.AlertRecord) error
	ListAlertsByIncident(incidentID string) ([]*database.AlertRecord, error)
	CascadeAlertStatus(incidentID, status string) (int64, error)
	Stats() (*database.IncidentStats, error)
}

var _ Store = (*database.Database)(nil)

// SnapshotStore persists annotated frames and returns a stable reference
type SnapshotStore interface {
	Put(ctx context.Context, cameraID string, jpeg []byte, ts time.Time) (string, error)
}

// Notifier delivers a newly opened incident to an external channel
type Notifier interface {
	Name() string
	NotifyIncident(ctx context.Context, evt *pipeline.NewIncidentEvent) error
}

// Throttle rate-limits alert emission per incident
type Throttle interface {
	Allow(key string) bool
}

// CameraInfo resolves camera metadata for incident rows
type CameraInfo interface {
	CameraMeta(cameraID string) (name, location string)
}

// ReviewDecision is an operator verdict on an incident
type ReviewDecision string

const (
	DecisionConfirmed  ReviewDecision = "confirmed"
	DecisionFalseAlarm ReviewDecision = "false_alarm"
	DecisionReviewed   ReviewDecision = "reviewed"
)

// alertCascade maps an incident review decision to the status applied to
// every alert under the incident.
var alertCascade = map[ReviewDecision]string{
	DecisionConfirmed:  database.AlertConfirmed,
	DecisionFalseAlarm: database.AlertFalseAlarm,
	DecisionReviewed:   database.AlertUnderReview,
}

// Engine turns raw detections into incidents: it groups detections on the
// same camera and weapon type within IncidentTimeout into a single incident,
// persists per-detection alerts for critical severities, and emits events.
type Engine struct {
	store     Store
	snapshots SnapshotStore
	throttle  Throttle
	cameras   CameraInfo
	bus       *pipeline.EventBus
	notifiers []Notifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex // keyed by cameraID + weapon type

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewEngine creates an incident engine. snapshots, throttle and cameras
// may be nil; the corresponding behavior is skipped.
func NewEngine(store Store, snapshots SnapshotStore, throttle Throttle, cameras CameraInfo, bus *pipeline.EventBus) *Engine {
	return &Engine{
		store:     store,
		snapshots: snapshots,
		throttle:  throttle,
		cameras:   cameras,
		bus:       bus,
		locks:     make(map[string]*sync.Mutex),
		stopCh:    make(chan struct{}),
	}
}

// AddNotifier registers an external notification channel
func (e *Engine) AddNotifier(n Notifier) {
	e.notifiers = append(e.notifiers, n)
}

// Run sweeps stale incidents until Stop is called
func (e *Engine) Run() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopCh:
			return
		case <-ticker.C:
			e.sweep()
		}
	}
}

// Stop terminates the sweep loop
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
}

func (e *Engine) sweep() {
	now := time.Now().UTC()
	closed, err := e.store.CloseStaleIncidents(now.Add(-IncidentTimeout), now)
	if err != nil {
		log.Printf("[IncidentEngine] Sweep failed: %v", err)
		return
	}
	if closed > 0 {
		log.Printf("[IncidentEngine] Auto-closed %d stale incidents", closed)
	}

	// Throttle entries are keyed by incident id, so anything idle past the
	// incident window belongs to a closed incident.
	if sweeper, ok := e.throttle.(interface{ Sweep(ttl time.Duration) int }); ok {
		sweeper.Sweep(IncidentTimeout)
	}
}

func (e *Engine) lockFor(cameraID, weaponType string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := cameraID + "/" + weaponType
	l, ok := e.locks[key]
	if !ok {
		l = &sync.Mutex{}
		e.locks[key] = l
	}
	return l
}

// HandleDetections folds one detection result into the incident state.
// Implements pipeline.IncidentHandler.
func (e *Engine) HandleDetections(result *pipeline.DetectionResult) {
	if len(result.Detections) == 0 {
		return
	}

	// One incident per weapon type: the strongest detection of each class
	// drives the incident update, the rest only raise the detection count.
	byClass := lo.GroupBy(result.Detections, func(d pipeline.Detection) string {
		return d.Class
	})

	for class, group := range byClass {
		best := lo.MaxBy(group, func(a, b pipeline.Detection) bool {
			return a.Confidence > b.Confidence
		})
		if err := e.ingest(result, class, best, len(group)); err != nil {
			log.Printf("[IncidentEngine] Failed to ingest %s on %s: %v", class, result.CameraID, err)
		}
	}
}

func (e *Engine) ingest(result *pipeline.DetectionResult, weaponType string, best pipeline.Detection, count int) error {
	l := e.lockFor(result.CameraID, weaponType)
	l.Lock()
	defer l.Unlock()

	now := result.Timestamp.UTC()
	cutoff := now.Add(-IncidentTimeout)

	inc, err := e.store.FindActiveIncident(result.CameraID, weaponType, cutoff)
	if err != nil {
		return err
	}

	snapshotRef := e.storeSnapshot(result, now)

	if inc == nil {
		inc, err = e.openIncident(result, weaponType, best, count, snapshotRef, now)
		if err != nil {
			return err
		}
	} else {
		if err := e.extendIncident(inc, best, count, snapshotRef, now); err != nil {
			return err
		}
	}

	if best.Severity == pipeline.SeverityCritical {
		e.recordAlert(inc, result, best, snapshotRef, now)
	}
	return nil
}

func (e *Engine) openIncident(result *pipeline.DetectionResult, weaponType string, best pipeline.Detection, count int, snapshotRef string, now time.Time) (*database.IncidentRecord, error) {
	name, location := result.CameraID, ""
	if e.cameras != nil {
		name, location = e.cameras.CameraMeta(result.CameraID)
	}

	inc := &database.IncidentRecord{
		ID:                uuid.New().String(),
		CameraID:          result.CameraID,
		CameraName:        name,
		Location:          location,
		PrimaryWeaponType: weaponType,
		Severity:          string(best.Severity),
		MaxConfidence:     float64(best.Confidence),
		AvgConfidence:     float64(best.Confidence),
		DetectionCount:    count,
		BestSnapshot:      snapshotRef,
		StartedAt:         now,
		LastDetectionAt:   now,
		Status:            database.IncidentActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := e.store.CreateIncident(inc)
	if err == database.ErrActiveConflict {
		// Lost the race to another writer: fold into the winner instead.
		existing, findErr := e.store.FindActiveIncident(result.CameraID, weaponType, now.Add(-IncidentTimeout))
		if findErr != nil {
			return nil, findErr
		}
		if existing != nil {
			if err := e.extendIncident(existing, best, count, snapshotRef, now); err != nil {
				return nil, err
			}
			return existing, nil
		}

		// The conflicting incident is active but stale (the sweep has not
		// reached it yet). Close it and take its place.
		stale, findErr := e.store.FindActiveIncident(result.CameraID, weaponType, time.Time{})
		if findErr != nil {
			return nil, findErr
		}
		if stale == nil {
			return nil, fmt.Errorf("active incident conflict but none found for %s/%s", result.CameraID, weaponType)
		}
		stale.Status = database.IncidentClosed
		ended := stale.LastDetectionAt
		stale.EndedAt = &ended
		if err := e.store.UpdateIncident(stale); err != nil {
			return nil, err
		}
		if err := e.store.CreateIncident(inc); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	log.Printf("[IncidentEngine] New incident %s: %s on camera %s (%.2f)",
		inc.ID, weaponType, result.CameraID, best.Confidence)

	evt := &pipeline.NewIncidentEvent{
		IncidentID:  inc.ID,
		CameraID:    inc.CameraID,
		CameraName:  inc.CameraName,
		Location:    inc.Location,
		WeaponType:  weaponType,
		Severity:    best.Severity,
		Confidence:  best.Confidence,
		SnapshotRef: snapshotRef,
		Timestamp:   now,
	}
	if e.bus != nil {
		e.bus.Publish(evt)
	}
	e.notify(evt)
	return inc, nil
}

func (e *Engine) extendIncident(inc *database.IncidentRecord, best pipeline.Detection, count int, snapshotRef string, now time.Time) error {
	prevMax := inc.MaxConfidence
	conf := float64(best.Confidence)

	for i := 0; i < count; i++ {
		inc.DetectionCount++
		n := float64(inc.DetectionCount)
		inc.AvgConfidence = (inc.AvgConfidence*(n-1) + conf) / n
	}
	if conf > inc.MaxConfidence {
		inc.MaxConfidence = conf
	}
	if conf > prevMax && snapshotRef != "" {
		inc.BestSnapshot = snapshotRef
	}
	if now.After(inc.LastDetectionAt) {
		inc.LastDetectionAt = now
	}

	if err := e.store.UpdateIncident(inc); err != nil {
		return err
	}

	if e.bus != nil {
		e.bus.Publish(&pipeline.IncidentUpdateEvent{
			IncidentID:      inc.ID,
			CameraID:        inc.CameraID,
			WeaponType:      inc.PrimaryWeaponType,
			DetectionCount:  inc.DetectionCount,
			MaxConfidence:   float32(inc.MaxConfidence),
			AvgConfidence:   float32(inc.AvgConfidence),
			LastDetectionAt: inc.LastDetectionAt,
		})
	}
	return nil
}

func (e *Engine) storeSnapshot(result *pipeline.DetectionResult, now time.Time) string {
	if e.snapshots == nil || len(result.ImageData) == 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ref, err := e.snapshots.Put(ctx, result.CameraID, result.ImageData, now)
	if err != nil {
		log.Printf("[IncidentEngine] Snapshot upload failed for %s: %v", result.CameraID, err)
		return ""
	}
	return ref
}

func (e *Engine) recordAlert(inc *database.IncidentRecord, result *pipeline.DetectionResult, best pipeline.Detection, snapshotRef string, now time.Time) {
	if e.throttle != nil && !e.throttle.Allow(inc.ID) {
		return
	}

	alert := &database.AlertRecord{
		ID:         uuid.New().String(),
		IncidentID: inc.ID,
		CameraID:   inc.CameraID,
		CameraName: inc.CameraName,
		Location:   inc.Location,
		WeaponType: best.Class,
		Confidence: float64(best.Confidence),
		Severity:   string(best.Severity),
		Snapshot:   snapshotRef,
		BBox: &database.BBoxRecord{
			X1: float64(best.BBox.X1), Y1: float64(best.BBox.Y1),
			X2: float64(best.BBox.X2), Y2: float64(best.BBox.Y2),
		},
		Status:    database.AlertNew,
		Timestamp: now,
		CreatedAt: now,
	}

	if err := e.store.CreateAlert(alert); err != nil {
		log.Printf("[IncidentEngine] Failed to persist alert for incident %s: %v", inc.ID, err)
		return
	}

	inc.AlertCount++
	if err := e.store.UpdateIncident(inc); err != nil {
		log.Printf("[IncidentEngine] Failed to bump alert count for incident %s: %v", inc.ID, err)
	}
}

func (e *Engine) notify(evt *pipeline.NewIncidentEvent) {
	for _, n := range e.notifiers {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := n.NotifyIncident(ctx, evt); err != nil {
			log.Printf("[IncidentEngine] Notifier %s failed: %v", n.Name(), err)
		}
		cancel()
	}
}

// List closes stale incidents first so the page reflects current state,
// then returns a filtered page plus total count.
func (e *Engine) List(filter database.IncidentFilter) ([]*database.IncidentRecord, int, error) {
	e.sweep()
	return e.store.ListIncidents(filter)
}

// Get returns an incident with its alerts
func (e *Engine) Get(id string) (*database.IncidentRecord, []*database.AlertRecord, error) {
	inc, err := e.store.GetIncident(id)
	if err != nil || inc == nil {
		return inc, nil, err
	}
	alerts, err := e.store.ListAlertsByIncident(id)
	if err != nil {
		return nil, nil, err
	}
	return inc, alerts, nil
}

// Review applies an operator decision to an incident and cascades the
// matching status to its alerts. Reviewing is idempotent: repeating the
// same decision leaves the record unchanged apart from the review stamp.
func (e *Engine) Review(id string, decision ReviewDecision, reviewer, notes string) (*database.IncidentRecord, error) {
	cascade, ok := alertCascade[decision]
	if !ok {
		return nil, fmt.Errorf("invalid review decision %q", decision)
	}

	inc, err := e.store.GetIncident(id)
	if err != nil {
		return nil, err
	}
	if inc == nil {
		return nil, fmt.Errorf("incident %s not found", id)
	}

	now := time.Now().UTC()
	inc.Status = string(decision)
	inc.ReviewedBy = reviewer
	inc.ReviewedAt = &now
	inc.Notes = notes
	if inc.EndedAt == nil {
		inc.EndedAt = &now
	}

	if err := e.store.UpdateIncident(inc); err != nil {
		return nil, err
	}
	if _, err := e.store.CascadeAlertStatus(id, cascade); err != nil {
		return nil, err
	}
	return inc, nil
}

// CloseNow manually closes an Active incident
func (e *Engine) CloseNow(id string) (*database.IncidentRecord, error) {
	inc, err := e.store.GetIncident(id)
	if err != nil {
		return nil, err
	}
	if inc == nil {
		return nil, fmt.Errorf("incident %s not found", id)
	}
	if inc.Status != database.IncidentActive {
		return inc, nil
	}

	now := time.Now().UTC()
	inc.Status = database.IncidentClosed
	inc.EndedAt = &now
	if err := e.store.UpdateIncident(inc); err != nil {
		return nil, err
	}
	return inc, nil
}

// Stats returns aggregate incident counters
func (e *Engine) Stats() (*database.IncidentStats, error) {
	return e.store.Stats()
}
