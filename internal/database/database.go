package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Database handles SQLite database operations
type Database struct {
	db *sql.DB
}

// Incident status values
const (
	IncidentActive     = "active"
	IncidentClosed     = "closed"
	IncidentReviewed   = "reviewed"
	IncidentConfirmed  = "confirmed"
	IncidentFalseAlarm = "false_alarm"
)

// Alert status values
const (
	AlertNew         = "new"
	AlertUnderReview = "under_review"
	AlertConfirmed   = "confirmed"
	AlertFalseAlarm  = "false_alarm"
)

// ErrActiveConflict signals the at-most-one-active unique index rejected an
// insert because a concurrent writer created the incident first. Callers
// re-query for the now-existing incident instead of surfacing the error.
var ErrActiveConflict = fmt.Errorf("database: active incident already exists")

// CameraRecord represents a registered camera
type CameraRecord struct {
	ID         string
	Name       string
	Location   string
	Source     string
	CaptureFPS int
	DetectFPS  int
	Priority   int
	Status     string
	CreatedAt  time.Time
}

// IncidentRecord is the durable incident aggregate
type IncidentRecord struct {
	ID                string
	CameraID          string
	CameraName        string
	Location          string
	PrimaryWeaponType string
	Severity          string
	MaxConfidence     float64
	AvgConfidence     float64
	AlertCount        int
	DetectionCount    int
	BestSnapshot      string
	StartedAt         time.Time
	LastDetectionAt   time.Time
	EndedAt           *time.Time
	Status            string
	ReviewedBy        string
	ReviewedAt        *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AlertRecord is one persisted raw detection event
type AlertRecord struct {
	ID         string
	IncidentID string
	CameraID   string
	CameraName string
	Location   string
	WeaponType string
	Confidence float64
	Severity   string
	Snapshot   string
	BBox       *BBoxRecord
	Status     string
	Timestamp  time.Time
	CreatedAt  time.Time
}

// BBoxRecord stores alert box coordinates as JSON
type BBoxRecord struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// IncidentFilter narrows incident listing
type IncidentFilter struct {
	Status   string
	CameraID string
	Page     int
	PageSize int
}

// IncidentStats aggregates incident counters for dashboards
type IncidentStats struct {
	Total    int
	Active   int
	ByStatus map[string]int
	ByCamera map[string]int
}

// New creates a new database connection
func New(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Database{db: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// Migrate runs database migrations
func (d *Database) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS cameras (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT,
			source TEXT NOT NULL,
			capture_fps INTEGER DEFAULT 15,
			detect_fps INTEGER DEFAULT 5,
			priority INTEGER DEFAULT 2,
			status TEXT DEFAULT 'offline',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS incidents (
			id TEXT PRIMARY KEY,
			camera_id TEXT NOT NULL,
			camera_name TEXT NOT NULL,
			location TEXT,
			primary_weapon_type TEXT NOT NULL,
			severity TEXT,
			max_confidence REAL DEFAULT 0,
			avg_confidence REAL DEFAULT 0,
			alert_count INTEGER DEFAULT 0,
			detection_count INTEGER DEFAULT 0,
			best_snapshot TEXT,
			started_at DATETIME NOT NULL,
			last_detection_at DATETIME NOT NULL,
			ended_at DATETIME,
			status TEXT NOT NULL DEFAULT 'active',
			reviewed_by TEXT,
			reviewed_at DATETIME,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (camera_id) REFERENCES cameras(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS alerts (
			id TEXT PRIMARY KEY,
			incident_id TEXT,
			camera_id TEXT NOT NULL,
			camera_name TEXT NOT NULL,
			location TEXT,
			weapon_type TEXT NOT NULL,
			confidence REAL NOT NULL,
			severity TEXT,
			snapshot TEXT,
			bbox TEXT,
			status TEXT NOT NULL DEFAULT 'new',
			timestamp DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (incident_id) REFERENCES incidents(id) ON DELETE CASCADE
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_incidents_one_active
			ON incidents(camera_id, primary_weapon_type) WHERE status = 'active'`,
		`CREATE INDEX IF NOT EXISTS idx_incidents_status ON incidents(status, last_detection_at)`,
		`CREATE INDEX IF NOT EXISTS idx_incidents_camera ON incidents(camera_id, started_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_incident ON alerts(incident_id, timestamp DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_camera_time ON alerts(camera_id, timestamp DESC)`,
	}

	for _, migration := range migrations {
		if _, err := d.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveCamera saves or updates a camera
func (d *Database) SaveCamera(cam *CameraRecord) error {
	query := `INSERT INTO cameras (id, name, location, source, capture_fps, detect_fps, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			source = excluded.source,
			capture_fps = excluded.capture_fps,
			detect_fps = excluded.detect_fps,
			priority = excluded.priority,
			status = excluded.status`

	_, err := d.db.Exec(query, cam.ID, cam.Name, cam.Location, cam.Source,
		cam.CaptureFPS, cam.DetectFPS, cam.Priority, cam.Status, cam.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save camera: %w", err)
	}
	return nil
}

// GetCamera retrieves a camera by ID
func (d *Database) GetCamera(id string) (*CameraRecord, error) {
	query := `SELECT id, name, location, source, capture_fps, detect_fps, priority, status, created_at
		FROM cameras WHERE id = ?`

	var cam CameraRecord
	err := d.db.QueryRow(query, id).Scan(&cam.ID, &cam.Name, &cam.Location, &cam.Source,
		&cam.CaptureFPS, &cam.DetectFPS, &cam.Priority, &cam.Status, &cam.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get camera: %w", err)
	}
	return &cam, nil
}

// ListCameras returns all cameras
func (d *Database) ListCameras() ([]*CameraRecord, error) {
	query := `SELECT id, name, location, source, capture_fps, detect_fps, priority, status, created_at
		FROM cameras ORDER BY created_at DESC`

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cameras: %w", err)
	}
	defer rows.Close()

	var cameras []*CameraRecord
	for rows.Next() {
		var cam CameraRecord
		if err := rows.Scan(&cam.ID, &cam.Name, &cam.Location, &cam.Source,
			&cam.CaptureFPS, &cam.DetectFPS, &cam.Priority, &cam.Status, &cam.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan camera: %w", err)
		}
		cameras = append(cameras, &cam)
	}
	return cameras, nil
}

// DeleteCamera deletes a camera by ID
func (d *Database) DeleteCamera(id string) error {
	_, err := d.db.Exec("DELETE FROM cameras WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete camera: %w", err)
	}
	return nil
}

// UpdateCameraStatus updates only the status of a camera
func (d *Database) UpdateCameraStatus(id, status string) error {
	_, err := d.db.Exec("UPDATE cameras SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update camera status: %w", err)
	}
	return nil
}

const incidentColumns = `id, camera_id, camera_name, location, primary_weapon_type, severity,
	max_confidence, avg_confidence, alert_count, detection_count, best_snapshot,
	started_at, last_detection_at, ended_at, status, reviewed_by, reviewed_at, notes,
	created_at, updated_at`

func scanIncident(row interface{ Scan(...any) error }) (*IncidentRecord, error) {
	var inc IncidentRecord
	var reviewedBy, notes sql.NullString
	var endedAt, reviewedAt sql.NullTime

	err := row.Scan(&inc.ID, &inc.CameraID, &inc.CameraName, &inc.Location,
		&inc.PrimaryWeaponType, &inc.Severity, &inc.MaxConfidence, &inc.AvgConfidence,
		&inc.AlertCount, &inc.DetectionCount, &inc.BestSnapshot,
		&inc.StartedAt, &inc.LastDetectionAt, &endedAt, &inc.Status,
		&reviewedBy, &reviewedAt, &notes, &inc.CreatedAt, &inc.UpdatedAt)
	if err != nil {
		return nil, err
	}

	inc.ReviewedBy = reviewedBy.String
	inc.Notes = notes.String
	if endedAt.Valid {
		inc.EndedAt = &endedAt.Time
	}
	if reviewedAt.Valid {
		inc.ReviewedAt = &reviewedAt.Time
	}
	return &inc, nil
}

// CreateIncident inserts a new incident row. A concurrent writer racing on
// the same (camera, weapon, active) key surfaces as ErrActiveConflict.
func (d *Database) CreateIncident(inc *IncidentRecord) error {
	query := `INSERT INTO incidents (id, camera_id, camera_name, location, primary_weapon_type,
		severity, max_confidence, avg_confidence, alert_count, detection_count, best_snapshot,
		started_at, last_detection_at, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := d.db.Exec(query, inc.ID, inc.CameraID, inc.CameraName, inc.Location,
		inc.PrimaryWeaponType, inc.Severity, inc.MaxConfidence, inc.AvgConfidence,
		inc.AlertCount, inc.DetectionCount, inc.BestSnapshot,
		inc.StartedAt, inc.LastDetectionAt, inc.Status, inc.CreatedAt, inc.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrActiveConflict
		}
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// UpdateIncident rewrites an incident's mutable fields
func (d *Database) UpdateIncident(inc *IncidentRecord) error {
	query := `UPDATE incidents SET
		severity = ?, max_confidence = ?, avg_confidence = ?, alert_count = ?,
		detection_count = ?, best_snapshot = ?, last_detection_at = ?, ended_at = ?,
		status = ?, reviewed_by = ?, reviewed_at = ?, notes = ?, updated_at = ?
		WHERE id = ?`

	var endedAt, reviewedAt any
	if inc.EndedAt != nil {
		endedAt = *inc.EndedAt
	}
	if inc.ReviewedAt != nil {
		reviewedAt = *inc.ReviewedAt
	}

	_, err := d.db.Exec(query, inc.Severity, inc.MaxConfidence, inc.AvgConfidence,
		inc.AlertCount, inc.DetectionCount, inc.BestSnapshot, inc.LastDetectionAt,
		endedAt, inc.Status, inc.ReviewedBy, reviewedAt, inc.Notes, time.Now().UTC(), inc.ID)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	return nil
}

// GetIncident retrieves an incident by ID
func (d *Database) GetIncident(id string) (*IncidentRecord, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = ?`

	inc, err := scanIncident(d.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return inc, nil
}

// FindActiveIncident returns the open incident for a (camera, weapon) pair
// with a detection at or after cutoff, or nil
func (d *Database) FindActiveIncident(cameraID, weaponType string, cutoff time.Time) (*IncidentRecord, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents
		WHERE camera_id = ? AND primary_weapon_type = ? AND status = ? AND last_detection_at >= ?
		ORDER BY last_detection_at DESC LIMIT 1`

	inc, err := scanIncident(d.db.QueryRow(query, cameraID, weaponType, IncidentActive, cutoff))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active incident: %w", err)
	}
	return inc, nil
}

// ListIncidents returns a filtered page of incidents plus the total count
func (d *Database) ListIncidents(filter IncidentFilter) ([]*IncidentRecord, int, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.CameraID != "" {
		where += " AND camera_id = ?"
		args = append(args, filter.CameraID)
	}

	var total int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM incidents"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := `SELECT ` + incidentColumns + ` FROM incidents` + where +
		` ORDER BY started_at DESC LIMIT ? OFFSET ?`
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*IncidentRecord
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan incident: %w", err)
		}
		incidents = append(incidents, inc)
	}
	return incidents, total, nil
}

// CloseStaleIncidents transitions Active incidents whose last detection
// precedes cutoff to Closed with ended_at = now. Returns the number closed.
func (d *Database) CloseStaleIncidents(cutoff, now time.Time) (int64, error) {
	result, err := d.db.Exec(
		`UPDATE incidents SET status = ?, ended_at = ?, updated_at = ? WHERE status = ? AND last_detection_at < ?`,
		IncidentClosed, now, now, IncidentActive, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale incidents: %w", err)
	}
	return result.RowsAffected()
}

// Stats aggregates incident counters
func (d *Database) Stats() (*IncidentStats, error) {
	stats := &IncidentStats{
		ByStatus: make(map[string]int),
		ByCamera: make(map[string]int),
	}

	rows, err := d.db.Query("SELECT status, COUNT(*) FROM incidents GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate incident statuses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
		if status == IncidentActive {
			stats.Active = count
		}
	}

	camRows, err := d.db.Query("SELECT camera_id, COUNT(*) FROM incidents GROUP BY camera_id")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate incident cameras: %w", err)
	}
	defer camRows.Close()

	for camRows.Next() {
		var cameraID string
		var count int
		if err := camRows.Scan(&cameraID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan camera count: %w", err)
		}
		stats.ByCamera[cameraID] = count
	}

	return stats, nil
}

// CreateAlert inserts one alert row
func (d *Database) CreateAlert(alert *AlertRecord) error {
	var bboxJSON any
	if alert.BBox != nil {
		data, err := json.Marshal(alert.BBox)
		if err != nil {
			return fmt.Errorf("failed to marshal bbox: %w", err)
		}
		bboxJSON = string(data)
	}

	query := `INSERT INTO alerts (id, incident_id, camera_id, camera_name, location,
		weapon_type, confidence, severity, snapshot, bbox, status, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := d.db.Exec(query, alert.ID, alert.IncidentID, alert.CameraID, alert.CameraName,
		alert.Location, alert.WeaponType, alert.Confidence, alert.Severity, alert.Snapshot,
		bboxJSON, alert.Status, alert.Timestamp, alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// ListAlertsByIncident returns an incident's alerts, newest first
func (d *Database) ListAlertsByIncident(incidentID string) ([]*AlertRecord, error) {
	query := `SELECT id, incident_id, camera_id, camera_name, location, weapon_type,
		confidence, severity, snapshot, bbox, status, timestamp, created_at
		FROM alerts WHERE incident_id = ? ORDER BY timestamp DESC`

	rows, err := d.db.Query(query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*AlertRecord
	for rows.Next() {
		var alert AlertRecord
		var incidentID, bboxJSON sql.NullString

		if err := rows.Scan(&alert.ID, &incidentID, &alert.CameraID, &alert.CameraName,
			&alert.Location, &alert.WeaponType, &alert.Confidence, &alert.Severity,
			&alert.Snapshot, &bboxJSON, &alert.Status, &alert.Timestamp, &alert.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}

		alert.IncidentID = incidentID.String
		if bboxJSON.Valid && bboxJSON.String != "" {
			if err := json.Unmarshal([]byte(bboxJSON.String), &alert.BBox); err != nil {
				return nil, fmt.Errorf("failed to unmarshal bbox: %w", err)
			}
		}
		alerts = append(alerts, &alert)
	}
	return alerts, nil
}

// CascadeAlertStatus sets the status of every alert under an incident.
// Used by incident review so alert-level state follows incident-level state.
func (d *Database) CascadeAlertStatus(incidentID, status string) (int64, error) {
	result, err := d.db.Exec("UPDATE alerts SET status = ? WHERE incident_id = ?", status, incidentID)
	if err != nil {
		return 0, fmt.Errorf("failed to cascade alert status: %w", err)
	}
	return result.RowsAffected()
}
