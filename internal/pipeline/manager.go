package pipeline

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// maxReadFailures is the consecutive read-failure budget before a camera's
// reader loop gives up and marks the source failed
const maxReadFailures = 10

// Manager orchestrates the full pipeline: one reader goroutine per camera
// feeding the shared priority queue, a fixed worker pool draining it, the
// router fanning results out, and the janitor bounding cache memory.
type Manager struct {
	global    *GlobalPipelineConfig
	bus       *EventBus
	queue     *PriorityQueue
	scheduler *Scheduler
	router    *Router
	pool      *WorkerPool
	janitor   *Janitor

	sourceFactory SourceFactory

	tapMu    sync.RWMutex
	frameTap func(cameraID string, jpeg []byte)

	mu      sync.Mutex
	cameras map[string]*cameraRunner
	closed  bool

	stopHeartbeat chan struct{}
}

type cameraRunner struct {
	cfg    *CameraConfig
	source FrameSource
	stopCh chan struct{}
	done   chan struct{}
}

// NewManager wires the pipeline together. The motion gate and detector are
// injected so tests can substitute both.
func NewManager(detector Detector, gate MotionGate, global *GlobalPipelineConfig, bus *EventBus) *Manager {
	if global == nil {
		global = DefaultPipelineConfig()
	}

	queue := NewPriorityQueue(global.QueueDepth)
	scheduler := NewScheduler(queue, gate, bus)
	router := NewRouter(bus, scheduler)
	pool := NewWorkerPool(global.Workers, queue, detector, router, scheduler)
	janitor := NewJanitor(gate, scheduler, queue, global.JanitorInterval, global.CacheTTL)

	m := &Manager{
		global:        global,
		bus:           bus,
		queue:         queue,
		scheduler:     scheduler,
		router:        router,
		pool:          pool,
		janitor:       janitor,
		sourceFactory: NewSource,
		cameras:       make(map[string]*cameraRunner),
		stopHeartbeat: make(chan struct{}),
	}

	pool.Start()
	go janitor.Run()
	go m.heartbeatLoop()

	return m
}

// heartbeatLoop publishes a periodic liveness event so push transports can
// tell idle clients the pipeline is still running
func (m *Manager) heartbeatLoop() {
	ticker := time.NewTicker(m.global.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopHeartbeat:
			return
		case <-ticker.C:
			m.bus.Publish(HeartbeatEvent{Timestamp: time.Now().UTC()})
		}
	}
}

// Router exposes the router for sink and incident-handler registration
func (m *Manager) Router() *Router {
	return m.router
}

// SetFrameTap installs a callback receiving every captured frame before
// scheduling. Used by the live view so viewers get full capture fps, not
// just the detection fps.
func (m *Manager) SetFrameTap(tap func(cameraID string, jpeg []byte)) {
	m.tapMu.Lock()
	m.frameTap = tap
	m.tapMu.Unlock()
}

// StartCamera registers a camera and starts its reader loop
func (m *Manager) StartCamera(cfg *CameraConfig) error {
	if cfg == nil || cfg.ID == "" {
		return fmt.Errorf("camera config missing id")
	}
	if cfg.Source == "" {
		return fmt.Errorf("camera %s has no source", cfg.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("pipeline manager closed")
	}
	if _, exists := m.cameras[cfg.ID]; exists {
		return fmt.Errorf("camera %s already started", cfg.ID)
	}

	m.scheduler.Register(cfg.Effective(m.global))

	runner := &cameraRunner{
		cfg:    cfg,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	runner.source = m.sourceFactory(cfg, func(loop uint64) {
		m.scheduler.OnLoopBoundary(cfg.ID, loop)
	})

	m.cameras[cfg.ID] = runner
	go m.runCamera(runner)

	log.Printf("[Pipeline] Started camera %s (priority %d, skip interval %d)",
		cfg.ID, cfg.Priority, cfg.SkipInterval())
	return nil
}

// runCamera is the per-camera reader loop: open the source, forward frames
// to the scheduler, and exit after maxReadFailures consecutive failures.
// Reconnection policy belongs to the camera manager, which watches the
// camera status events this loop publishes.
func (m *Manager) runCamera(r *cameraRunner) {
	defer close(r.done)

	cameraID := r.cfg.ID

	if err := r.source.Open(); err != nil {
		log.Printf("[Pipeline] Camera %s: source open failed: %v", cameraID, err)
		m.setStatus(cameraID, "failed", err.Error())
		return
	}
	m.setStatus(cameraID, "online", "")

	failures := 0
	for {
		select {
		case <-r.stopCh:
			m.setStatus(cameraID, "offline", "stopped")
			return
		default:
		}

		frame, err := r.source.Read()
		if err == ErrSourceClosed {
			select {
			case <-r.stopCh:
				m.setStatus(cameraID, "offline", "stopped")
			default:
				m.setStatus(cameraID, "failed", "source closed")
			}
			return
		}
		if err != nil {
			failures++
			if failures >= maxReadFailures {
				log.Printf("[Pipeline] Camera %s: %d consecutive read failures, giving up", cameraID, failures)
				m.setStatus(cameraID, "failed", "read failures exceeded")
				return
			}
			continue
		}

		failures = 0

		m.tapMu.RLock()
		tap := m.frameTap
		m.tapMu.RUnlock()
		if tap != nil {
			tap(cameraID, frame.Data)
		}

		m.scheduler.OnFrame(frame)
	}
}

func (m *Manager) setStatus(cameraID, status, reason string) {
	m.scheduler.SetStatus(cameraID, status)
	m.bus.Publish(CameraStatusEvent{
		CameraID:  cameraID,
		Status:    status,
		Reason:    reason,
		Timestamp: time.Now(),
	})
}

// StopCamera cancels a camera's reader loop and releases its source.
// Queued tasks for the camera are purged from the shared queue so a
// removed camera never occupies worker capacity.
func (m *Manager) StopCamera(cameraID string) error {
	m.mu.Lock()
	runner, exists := m.cameras[cameraID]
	if !exists {
		m.mu.Unlock()
		return fmt.Errorf("camera %s not found", cameraID)
	}
	delete(m.cameras, cameraID)
	m.mu.Unlock()

	close(runner.stopCh)
	runner.source.Close()

	select {
	case <-runner.done:
	case <-time.After(5 * time.Second):
		log.Printf("[Pipeline] Camera %s: reader loop slow to exit", cameraID)
	}

	purged := m.queue.Purge(cameraID)
	m.scheduler.Unregister(cameraID)

	log.Printf("[Pipeline] Stopped camera %s (purged %d queued frames)", cameraID, purged)
	return nil
}

// CameraStats returns counters for one camera
func (m *Manager) CameraStats(cameraID string) *CameraStats {
	return m.scheduler.Stats(cameraID)
}

// Stats returns queue and per-camera counters
func (m *Manager) Stats() *PipelineStats {
	return &PipelineStats{
		Queue:   m.queue.Stats(),
		Cameras: m.scheduler.AllStats(),
		Workers: m.pool.Size(),
	}
}

// Subscribe registers an event handler on the pipeline bus
func (m *Manager) Subscribe(handler EventHandler) func() {
	return m.bus.Subscribe(handler)
}

// Close stops all cameras, drains the queue and waits for the workers
func (m *Manager) Close() error {
	m.mu.Lock()
	m.closed = true
	ids := make([]string, 0, len(m.cameras))
	for id := range m.cameras {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.StopCamera(id)
	}

	close(m.stopHeartbeat)
	m.janitor.Stop()
	m.queue.Close()
	m.pool.Wait()

	log.Printf("[Pipeline] Closed")
	return nil
}

var _ PipelineManager = (*Manager)(nil)
