package database

import (
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *Database {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migration failed: %v", err)
	}
	return db
}

// seedCameras inserts camera rows so incident foreign keys resolve
func seedCameras(t *testing.T, db *Database, ids ...string) {
	t.Helper()
	for _, id := range ids {
		err := db.SaveCamera(&CameraRecord{
			ID: id, Name: id, Source: "rtsp://host/" + id,
			CaptureFPS: 15, DetectFPS: 5, Priority: 2, Status: "online", CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("Failed to seed camera %s: %v", id, err)
		}
	}
}

func testIncident(id, cameraID, weaponType, status string, lastDetection time.Time) *IncidentRecord {
	return &IncidentRecord{
		ID:                id,
		CameraID:          cameraID,
		CameraName:        cameraID,
		PrimaryWeaponType: weaponType,
		Severity:          "critical",
		MaxConfidence:     0.8,
		AvgConfidence:     0.8,
		DetectionCount:    1,
		StartedAt:         lastDetection,
		LastDetectionAt:   lastDetection,
		Status:            status,
		CreatedAt:         lastDetection,
		UpdatedAt:         lastDetection,
	}
}

// TestCameraCRUD covers save, upsert, get, list and delete.
func TestCameraCRUD(t *testing.T) {
	db := testDB(t)

	cam := &CameraRecord{
		ID: "cam-1", Name: "Entrance", Location: "Lobby", Source: "rtsp://host/1",
		CaptureFPS: 15, DetectFPS: 5, Priority: 2, Status: "offline", CreatedAt: time.Now().UTC(),
	}
	if err := db.SaveCamera(cam); err != nil {
		t.Fatalf("SaveCamera failed: %v", err)
	}

	got, err := db.GetCamera("cam-1")
	if err != nil {
		t.Fatalf("GetCamera failed: %v", err)
	}
	if got == nil || got.Name != "Entrance" || got.CaptureFPS != 15 {
		t.Errorf("Unexpected camera: %+v", got)
	}

	// Upsert updates in place.
	cam.Name = "Main Entrance"
	if err := db.SaveCamera(cam); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	got, _ = db.GetCamera("cam-1")
	if got.Name != "Main Entrance" {
		t.Errorf("Expected upserted name, got %q", got.Name)
	}

	if err := db.UpdateCameraStatus("cam-1", "online"); err != nil {
		t.Fatalf("UpdateCameraStatus failed: %v", err)
	}
	got, _ = db.GetCamera("cam-1")
	if got.Status != "online" {
		t.Errorf("Expected status online, got %q", got.Status)
	}

	cams, err := db.ListCameras()
	if err != nil || len(cams) != 1 {
		t.Fatalf("ListCameras: %v, %d cameras", err, len(cams))
	}

	if err := db.DeleteCamera("cam-1"); err != nil {
		t.Fatalf("DeleteCamera failed: %v", err)
	}
	if got, _ := db.GetCamera("cam-1"); got != nil {
		t.Error("Expected nil after delete")
	}
}

// TestGetCameraMissing verifies a missing camera is (nil, nil), not an error.
func TestGetCameraMissing(t *testing.T) {
	db := testDB(t)
	got, err := db.GetCamera("ghost")
	if err != nil || got != nil {
		t.Errorf("Expected (nil, nil), got (%v, %v)", got, err)
	}
}

// TestIncidentUniqueActive verifies the partial unique index rejects a
// second active incident for the same camera and weapon type, while closed
// history and other weapon types are unaffected.
func TestIncidentUniqueActive(t *testing.T) {
	db := testDB(t)
	seedCameras(t, db, "cam-1")
	now := time.Now().UTC()

	if err := db.CreateIncident(testIncident("inc-1", "cam-1", "pistol", IncidentActive, now)); err != nil {
		t.Fatalf("CreateIncident failed: %v", err)
	}

	err := db.CreateIncident(testIncident("inc-2", "cam-1", "pistol", IncidentActive, now))
	if err != ErrActiveConflict {
		t.Fatalf("Expected ErrActiveConflict, got %v", err)
	}

	// A different weapon type on the same camera is fine.
	if err := db.CreateIncident(testIncident("inc-3", "cam-1", "knife", IncidentActive, now)); err != nil {
		t.Errorf("Expected knife incident to coexist: %v", err)
	}
	// Closed history for the same pair is fine.
	if err := db.CreateIncident(testIncident("inc-4", "cam-1", "pistol", IncidentClosed, now.Add(-time.Hour))); err != nil {
		t.Errorf("Expected closed incident to coexist: %v", err)
	}
}

// TestFindActiveIncident verifies the match requires active status and a
// recent enough last detection.
func TestFindActiveIncident(t *testing.T) {
	db := testDB(t)
	seedCameras(t, db, "cam-1")
	now := time.Now().UTC()

	db.CreateIncident(testIncident("inc-1", "cam-1", "pistol", IncidentActive, now.Add(-time.Minute)))

	inc, err := db.FindActiveIncident("cam-1", "pistol", now.Add(-5*time.Minute))
	if err != nil {
		t.Fatalf("FindActiveIncident failed: %v", err)
	}
	if inc == nil || inc.ID != "inc-1" {
		t.Fatalf("Expected inc-1, got %+v", inc)
	}

	// Cutoff after the last detection excludes it.
	if inc, _ := db.FindActiveIncident("cam-1", "pistol", now); inc != nil {
		t.Error("Expected no match past the cutoff")
	}
	// Wrong weapon type or camera excludes it.
	if inc, _ := db.FindActiveIncident("cam-1", "knife", now.Add(-5*time.Minute)); inc != nil {
		t.Error("Expected no match for a different weapon type")
	}
	if inc, _ := db.FindActiveIncident("cam-2", "pistol", now.Add(-5*time.Minute)); inc != nil {
		t.Error("Expected no match for a different camera")
	}
}

// TestUpdateIncidentRoundTrip verifies mutable fields and nullable review
// columns survive an update and rescan.
func TestUpdateIncidentRoundTrip(t *testing.T) {
	db := testDB(t)
	seedCameras(t, db, "cam-1")
	now := time.Now().UTC().Truncate(time.Second)

	inc := testIncident("inc-1", "cam-1", "pistol", IncidentActive, now)
	db.CreateIncident(inc)

	reviewed := now.Add(time.Minute)
	inc.Status = IncidentConfirmed
	inc.MaxConfidence = 0.95
	inc.DetectionCount = 7
	inc.ReviewedBy = "operator-1"
	inc.ReviewedAt = &reviewed
	inc.EndedAt = &reviewed
	inc.Notes = "verified on playback"
	if err := db.UpdateIncident(inc); err != nil {
		t.Fatalf("UpdateIncident failed: %v", err)
	}

	got, err := db.GetIncident("inc-1")
	if err != nil {
		t.Fatalf("GetIncident failed: %v", err)
	}
	if got.Status != IncidentConfirmed || got.DetectionCount != 7 || got.ReviewedBy != "operator-1" {
		t.Errorf("Unexpected incident: %+v", got)
	}
	if got.ReviewedAt == nil || got.EndedAt == nil {
		t.Error("Expected review and end timestamps to persist")
	}
	if got.Notes != "verified on playback" {
		t.Errorf("Expected notes to persist, got %q", got.Notes)
	}
}

// TestListIncidentsFilterAndPaging verifies status/camera filters and the
// page window with an accurate total.
func TestListIncidentsFilterAndPaging(t *testing.T) {
	db := testDB(t)
	seedCameras(t, db, "cam-1", "cam-2")
	base := time.Now().UTC()

	db.CreateIncident(testIncident("inc-1", "cam-1", "pistol", IncidentActive, base))
	db.CreateIncident(testIncident("inc-2", "cam-1", "knife", IncidentClosed, base.Add(-time.Hour)))
	db.CreateIncident(testIncident("inc-3", "cam-2", "pistol", IncidentClosed, base.Add(-2*time.Hour)))

	incs, total, err := db.ListIncidents(IncidentFilter{Status: IncidentClosed})
	if err != nil {
		t.Fatalf("ListIncidents failed: %v", err)
	}
	if total != 2 || len(incs) != 2 {
		t.Errorf("Expected 2 closed incidents, got total=%d len=%d", total, len(incs))
	}

	incs, total, _ = db.ListIncidents(IncidentFilter{CameraID: "cam-1"})
	if total != 2 {
		t.Errorf("Expected 2 incidents for cam-1, got %d", total)
	}
	// Newest first.
	if len(incs) == 2 && incs[0].ID != "inc-1" {
		t.Errorf("Expected inc-1 first, got %s", incs[0].ID)
	}

	incs, total, _ = db.ListIncidents(IncidentFilter{Page: 2, PageSize: 2})
	if total != 3 || len(incs) != 1 {
		t.Errorf("Expected page 2 to hold 1 of 3, got total=%d len=%d", total, len(incs))
	}
}

// TestCloseStaleIncidents verifies only timed-out active incidents close.
func TestCloseStaleIncidents(t *testing.T) {
	db := testDB(t)
	seedCameras(t, db, "cam-1", "cam-2")
	now := time.Now().UTC()

	db.CreateIncident(testIncident("stale", "cam-1", "pistol", IncidentActive, now.Add(-10*time.Minute)))
	db.CreateIncident(testIncident("fresh", "cam-2", "pistol", IncidentActive, now.Add(-time.Minute)))

	closed, err := db.CloseStaleIncidents(now.Add(-5*time.Minute), now)
	if err != nil {
		t.Fatalf("CloseStaleIncidents failed: %v", err)
	}
	if closed != 1 {
		t.Fatalf("Expected 1 closed, got %d", closed)
	}

	got, _ := db.GetIncident("stale")
	if got.Status != IncidentClosed || got.EndedAt == nil {
		t.Errorf("Expected stale incident closed with end time, got %+v", got)
	}
	if got, _ := db.GetIncident("fresh"); got.Status != IncidentActive {
		t.Errorf("Expected fresh incident untouched, got %s", got.Status)
	}

	// Idempotent: nothing left to close.
	if closed, _ := db.CloseStaleIncidents(now.Add(-5*time.Minute), now); closed != 0 {
		t.Errorf("Expected second sweep to close 0, got %d", closed)
	}
}

// TestAlertsRoundTripAndCascade verifies alert persistence, bbox JSON and
// the review cascade update.
func TestAlertsRoundTripAndCascade(t *testing.T) {
	db := testDB(t)
	seedCameras(t, db, "cam-1")
	now := time.Now().UTC().Truncate(time.Second)

	db.CreateIncident(testIncident("inc-1", "cam-1", "pistol", IncidentActive, now))

	for i, id := range []string{"al-1", "al-2"} {
		alert := &AlertRecord{
			ID: id, IncidentID: "inc-1", CameraID: "cam-1", CameraName: "Entrance",
			WeaponType: "pistol", Confidence: 0.9, Severity: "critical",
			BBox:   &BBoxRecord{X1: 10, Y1: 20, X2: 110, Y2: 220},
			Status: AlertNew, Timestamp: now.Add(time.Duration(i) * time.Second), CreatedAt: now,
		}
		if err := db.CreateAlert(alert); err != nil {
			t.Fatalf("CreateAlert failed: %v", err)
		}
	}

	alerts, err := db.ListAlertsByIncident("inc-1")
	if err != nil {
		t.Fatalf("ListAlertsByIncident failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("Expected 2 alerts, got %d", len(alerts))
	}
	// Newest first.
	if alerts[0].ID != "al-2" {
		t.Errorf("Expected al-2 first, got %s", alerts[0].ID)
	}
	if alerts[0].BBox == nil || alerts[0].BBox.X2 != 110 {
		t.Errorf("Expected bbox to round-trip, got %+v", alerts[0].BBox)
	}

	n, err := db.CascadeAlertStatus("inc-1", AlertConfirmed)
	if err != nil || n != 2 {
		t.Fatalf("CascadeAlertStatus: %v, %d rows", err, n)
	}
	alerts, _ = db.ListAlertsByIncident("inc-1")
	for _, a := range alerts {
		if a.Status != AlertConfirmed {
			t.Errorf("Expected confirmed, got %s", a.Status)
		}
	}
}

// TestStats verifies the aggregate counters.
func TestStats(t *testing.T) {
	db := testDB(t)
	seedCameras(t, db, "cam-1", "cam-2")
	now := time.Now().UTC()

	db.CreateIncident(testIncident("inc-1", "cam-1", "pistol", IncidentActive, now))
	db.CreateIncident(testIncident("inc-2", "cam-1", "knife", IncidentClosed, now))
	db.CreateIncident(testIncident("inc-3", "cam-2", "pistol", IncidentFalseAlarm, now))

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 3 || stats.Active != 1 {
		t.Errorf("Expected total=3 active=1, got %+v", stats)
	}
	if stats.ByStatus[IncidentClosed] != 1 || stats.ByCamera["cam-1"] != 2 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
}
