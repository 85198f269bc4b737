package pipeline

import (
	"sync"
	"testing"
	"time"
)

// fakeSource serves scripted reads and then blocks until closed
type fakeSource struct {
	mu      sync.Mutex
	frames  []*FrameData
	errs    []error
	closed  chan struct{}
	openErr error
}

func newFakeSource() *fakeSource {
	return &fakeSource{closed: make(chan struct{})}
}

func (s *fakeSource) Open() error { return s.openErr }

func (s *fakeSource) Read() (*FrameData, error) {
	s.mu.Lock()
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		s.mu.Unlock()
		return nil, err
	}
	if len(s.frames) > 0 {
		frame := s.frames[0]
		s.frames = s.frames[1:]
		s.mu.Unlock()
		return frame, nil
	}
	s.mu.Unlock()

	<-s.closed
	return nil, ErrSourceClosed
}

func (s *fakeSource) Close() error {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
	return nil
}

type statusRecorder struct {
	mu       sync.Mutex
	statuses []string
}

func (r *statusRecorder) watch(bus *EventBus) {
	bus.SubscribeKind(EventCameraStatus, EventHandlerFunc(func(evt Event) {
		se := evt.(CameraStatusEvent)
		r.mu.Lock()
		r.statuses = append(r.statuses, se.Status)
		r.mu.Unlock()
	}))
}

func (r *statusRecorder) waitFor(t *testing.T, status string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		for _, s := range r.statuses {
			if s == status {
				r.mu.Unlock()
				return
			}
		}
		r.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t.Fatalf("Timed out waiting for status %q, saw %v", status, r.statuses)
}

func managerFixture(t *testing.T, source FrameSource) (*Manager, *statusRecorder) {
	t.Helper()

	bus := NewEventBus()
	recorder := &statusRecorder{}
	recorder.watch(bus)

	m := NewManager(&scriptedDetector{}, &stubGate{process: true}, DefaultPipelineConfig(), bus)
	m.sourceFactory = func(cfg *CameraConfig, onLoop func(loop uint64)) FrameSource {
		return source
	}
	t.Cleanup(func() { m.Close() })
	return m, recorder
}

func cameraConfig(id string) *CameraConfig {
	return &CameraConfig{ID: id, Source: "test://" + id, CaptureFPS: 15, DetectFPS: 5}
}

// TestManagerCameraLifecycle covers start, duplicate start rejection, frame
// delivery to the scheduler and stop.
func TestManagerCameraLifecycle(t *testing.T) {
	source := newFakeSource()
	source.frames = []*FrameData{
		{CameraID: "cam-1", Seq: 1, Timestamp: time.Now(), Data: []byte("x")},
		{CameraID: "cam-1", Seq: 2, Timestamp: time.Now(), Data: []byte("x")},
	}

	m, recorder := managerFixture(t, source)
	if err := m.StartCamera(cameraConfig("cam-1")); err != nil {
		t.Fatalf("StartCamera failed: %v", err)
	}
	if err := m.StartCamera(cameraConfig("cam-1")); err == nil {
		t.Error("Expected duplicate start to fail")
	}

	recorder.waitFor(t, "online")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && m.CameraStats("cam-1").FramesCaptured < 2 {
		time.Sleep(5 * time.Millisecond)
	}
	if got := m.CameraStats("cam-1").FramesCaptured; got != 2 {
		t.Errorf("Expected 2 captured frames, got %d", got)
	}

	if err := m.StopCamera("cam-1"); err != nil {
		t.Fatalf("StopCamera failed: %v", err)
	}
	recorder.waitFor(t, "offline")

	if m.CameraStats("cam-1") != nil {
		t.Error("Expected stats gone after stop")
	}
	if err := m.StopCamera("cam-1"); err == nil {
		t.Error("Expected stop of unknown camera to fail")
	}
}

// TestManagerReadFailureBudget verifies the reader gives up and reports
// failed after the consecutive-failure budget.
func TestManagerReadFailureBudget(t *testing.T) {
	source := newFakeSource()
	for i := 0; i < maxReadFailures; i++ {
		source.errs = append(source.errs, ErrNoFrame)
	}

	m, recorder := managerFixture(t, source)
	if err := m.StartCamera(cameraConfig("cam-1")); err != nil {
		t.Fatalf("StartCamera failed: %v", err)
	}

	recorder.waitFor(t, "failed")
}

// TestManagerTransientFailuresRecover verifies sporadic failures below the
// budget do not kill the reader.
func TestManagerTransientFailuresRecover(t *testing.T) {
	source := newFakeSource()
	source.errs = []error{ErrNoFrame, ErrNoFrame}
	source.frames = []*FrameData{{CameraID: "cam-1", Seq: 1, Timestamp: time.Now(), Data: []byte("x")}}

	m, recorder := managerFixture(t, source)
	if err := m.StartCamera(cameraConfig("cam-1")); err != nil {
		t.Fatalf("StartCamera failed: %v", err)
	}
	recorder.waitFor(t, "online")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && m.CameraStats("cam-1").FramesCaptured < 1 {
		time.Sleep(5 * time.Millisecond)
	}
	if got := m.CameraStats("cam-1").FramesCaptured; got != 1 {
		t.Errorf("Expected the frame after transient failures, got %d", got)
	}
}

// TestManagerFrameTap verifies tapped frames arrive at capture rate before
// scheduling.
func TestManagerFrameTap(t *testing.T) {
	source := newFakeSource()
	source.frames = []*FrameData{
		{CameraID: "cam-1", Seq: 1, Timestamp: time.Now(), Data: []byte("frame-1")},
	}

	m, _ := managerFixture(t, source)

	var mu sync.Mutex
	var tapped [][]byte
	m.SetFrameTap(func(cameraID string, jpeg []byte) {
		mu.Lock()
		tapped = append(tapped, jpeg)
		mu.Unlock()
	})

	if err := m.StartCamera(cameraConfig("cam-1")); err != nil {
		t.Fatalf("StartCamera failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(tapped)
		mu.Unlock()
		if n >= 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(tapped) != 1 || string(tapped[0]) != "frame-1" {
		t.Errorf("Expected tapped frame-1, got %v", tapped)
	}
}
