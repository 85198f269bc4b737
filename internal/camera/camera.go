package camera

import (
	"fmt"
	"log"
	"sync"
	"time"

	"vigil/internal/database"
	"vigil/internal/pipeline"
)

const (
	maxReconnectAttempts = 5
	reconnectDelay       = 2 * time.Second
)

// Camera is a registered camera with its live status
type Camera struct {
	Config    *pipeline.CameraConfig
	Status    string
	CreatedAt time.Time

	attempts int
}

// Manager owns the camera registry: it persists camera definitions, drives
// the capture pipeline, and restarts failed sources with a bounded backoff.
type Manager struct {
	db *database.Database
	pm pipeline.PipelineManager

	mu      sync.RWMutex
	cameras map[string]*Camera

	unsubscribe func()
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewManager creates a camera manager. db may be nil for ephemeral setups.
func NewManager(db *database.Database, pm pipeline.PipelineManager) *Manager {
	return &Manager{
		db:      db,
		pm:      pm,
		cameras: make(map[string]*Camera),
		stopCh:  make(chan struct{}),
	}
}

// Watch subscribes to camera status events and drives the reconnect policy
func (m *Manager) Watch(bus *pipeline.EventBus) {
	m.unsubscribe = bus.SubscribeKind(pipeline.EventCameraStatus,
		pipeline.EventHandlerFunc(m.onStatus))
}

// LoadRegistry registers cameras from the static registry, persisting each
// and starting its capture. Registry entries override stored rows.
func (m *Manager) LoadRegistry(configs []pipeline.CameraConfig) error {
	for i := range configs {
		cfg := configs[i]
		if err := m.Add(&cfg); err != nil {
			return fmt.Errorf("failed to add camera %s: %w", cfg.ID, err)
		}
	}
	log.Printf("[CameraManager] Loaded %d cameras from registry", len(configs))
	return nil
}

// Add registers a camera, persists it and starts its capture loop
func (m *Manager) Add(cfg *pipeline.CameraConfig) error {
	if cfg == nil || cfg.ID == "" {
		return fmt.Errorf("camera config missing id")
	}

	m.mu.Lock()
	if _, exists := m.cameras[cfg.ID]; exists {
		m.mu.Unlock()
		return fmt.Errorf("camera %s already registered", cfg.ID)
	}
	cam := &Camera{
		Config:    cfg,
		Status:    "offline",
		CreatedAt: time.Now().UTC(),
	}
	m.cameras[cfg.ID] = cam
	m.mu.Unlock()

	if m.db != nil {
		record := &database.CameraRecord{
			ID:         cfg.ID,
			Name:       cfg.Name,
			Location:   cfg.Location,
			Source:     cfg.Source,
			CaptureFPS: cfg.CaptureFPS,
			DetectFPS:  cfg.DetectFPS,
			Priority:   int(cfg.Priority),
			Status:     cam.Status,
			CreatedAt:  cam.CreatedAt,
		}
		if err := m.db.SaveCamera(record); err != nil {
			log.Printf("[CameraManager] Warning: failed to persist camera %s: %v", cfg.ID, err)
		}
	}

	if err := m.pm.StartCamera(cfg); err != nil {
		m.mu.Lock()
		delete(m.cameras, cfg.ID)
		m.mu.Unlock()
		return err
	}
	return nil
}

// Remove stops a camera's capture and deletes it from the registry
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	_, exists := m.cameras[id]
	delete(m.cameras, id)
	m.mu.Unlock()

	if !exists {
		return fmt.Errorf("camera %s not found", id)
	}

	if err := m.pm.StopCamera(id); err != nil {
		log.Printf("[CameraManager] Warning: stop failed for %s: %v", id, err)
	}
	if m.db != nil {
		if err := m.db.DeleteCamera(id); err != nil {
			log.Printf("[CameraManager] Warning: failed to delete camera %s: %v", id, err)
		}
	}
	return nil
}

// Get returns a camera by ID
func (m *Manager) Get(id string) (*Camera, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cam, exists := m.cameras[id]
	if !exists {
		return nil, fmt.Errorf("camera %s not found", id)
	}
	return cam, nil
}

// List returns all registered cameras
func (m *Manager) List() []*Camera {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cameras := make([]*Camera, 0, len(m.cameras))
	for _, cam := range m.cameras {
		cameras = append(cameras, cam)
	}
	return cameras
}

// CameraMeta resolves display metadata for a camera ID
func (m *Manager) CameraMeta(cameraID string) (name, location string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if cam, ok := m.cameras[cameraID]; ok {
		return cam.Config.Name, cam.Config.Location
	}
	return cameraID, ""
}

// onStatus tracks camera transitions and schedules reconnects for failed
// sources: up to maxReconnectAttempts, reconnectDelay apart. A successful
// reconnect resets the budget.
func (m *Manager) onStatus(evt pipeline.Event) {
	statusEvt, ok := evt.(pipeline.CameraStatusEvent)
	if !ok {
		return
	}

	m.mu.Lock()
	cam, exists := m.cameras[statusEvt.CameraID]
	if !exists {
		m.mu.Unlock()
		return
	}
	cam.Status = statusEvt.Status

	var retry bool
	switch statusEvt.Status {
	case "online":
		cam.attempts = 0
	case "failed":
		if cam.attempts < maxReconnectAttempts {
			cam.attempts++
			cam.Status = "reconnecting"
			retry = true
		} else {
			log.Printf("[CameraManager] Camera %s: reconnect budget exhausted", statusEvt.CameraID)
		}
	}
	attempt := cam.attempts
	cfg := cam.Config
	status := cam.Status
	m.mu.Unlock()

	if m.db != nil {
		if err := m.db.UpdateCameraStatus(statusEvt.CameraID, status); err != nil {
			log.Printf("[CameraManager] Warning: failed to update status for %s: %v", statusEvt.CameraID, err)
		}
	}

	if retry {
		log.Printf("[CameraManager] Camera %s: scheduling reconnect %d/%d",
			statusEvt.CameraID, attempt, maxReconnectAttempts)
		go m.reconnect(cfg)
	}
}

func (m *Manager) reconnect(cfg *pipeline.CameraConfig) {
	select {
	case <-m.stopCh:
		return
	case <-time.After(reconnectDelay):
	}

	m.mu.RLock()
	_, exists := m.cameras[cfg.ID]
	m.mu.RUnlock()
	if !exists {
		return
	}

	// The failed reader loop exits on its own; release its slot first.
	if err := m.pm.StopCamera(cfg.ID); err != nil {
		log.Printf("[CameraManager] Camera %s: cleanup before reconnect: %v", cfg.ID, err)
	}
	if err := m.pm.StartCamera(cfg); err != nil {
		log.Printf("[CameraManager] Camera %s: reconnect failed: %v", cfg.ID, err)
	}
}

// Close stops the watcher and all cameras
func (m *Manager) Close() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
	})
}
