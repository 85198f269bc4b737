package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// scriptedDetector returns a canned answer, error or panic per call
type scriptedDetector struct {
	mu         sync.Mutex
	detections []Detection
	err        error
	panicMsg   string
	calls      int
}

func (d *scriptedDetector) Ready() bool { return true }

func (d *scriptedDetector) Detect(ctx context.Context, frame *FrameData, cfg *EffectiveConfig) ([]Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.panicMsg != "" {
		panic(d.panicMsg)
	}
	return d.detections, d.err
}

func (d *scriptedDetector) setPanic(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.panicMsg = msg
}

func (d *scriptedDetector) Close() error { return nil }

// collectSink records routed results
type collectSink struct {
	mu      sync.Mutex
	results []*DetectionResult
}

func (s *collectSink) Name() string { return "collect" }

func (s *collectSink) OnResult(result *DetectionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *collectSink) wait(t *testing.T, n int) []*DetectionResult {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		if len(s.results) >= n {
			out := append([]*DetectionResult(nil), s.results...)
			s.mu.Unlock()
			return out
		}
		s.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %d results", n)
	return nil
}

type recordingHandler struct {
	mu      sync.Mutex
	results []*DetectionResult
}

func (h *recordingHandler) HandleDetections(result *DetectionResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.results = append(h.results, result)
}

func poolFixture(detector Detector) (*PriorityQueue, *Scheduler, *Router, *collectSink, *recordingHandler) {
	queue := NewPriorityQueue(100)
	bus := NewEventBus()
	scheduler := NewScheduler(queue, &stubGate{process: true}, bus)
	scheduler.Register(testConfig("cam-1", 1))
	router := NewRouter(bus, scheduler)

	sink := &collectSink{}
	router.AddSink(sink)
	handler := &recordingHandler{}
	router.SetIncidentHandler(handler)

	return queue, scheduler, router, sink, handler
}

// TestWorkerRoutesDetections verifies a successful pass reaches sinks and
// the incident handler.
func TestWorkerRoutesDetections(t *testing.T) {
	detector := &scriptedDetector{
		detections: []Detection{{Class: "pistol", Confidence: 0.9, Severity: SeverityCritical}},
	}
	queue, scheduler, router, sink, handler := poolFixture(detector)

	pool := NewWorkerPool(2, queue, detector, router, scheduler)
	pool.Start()

	queue.Push(task("cam-1", PriorityNormal, time.Now()))
	results := sink.wait(t, 1)
	queue.Close()
	pool.Wait()

	if len(results[0].Detections) != 1 || results[0].Detections[0].Class != "pistol" {
		t.Errorf("Unexpected result: %+v", results[0])
	}
	if len(handler.results) != 1 {
		t.Errorf("Expected incident handler to receive the result, got %d", len(handler.results))
	}
	if scheduler.Stats("cam-1").DetectionsTotal != 1 {
		t.Errorf("Expected scheduler stats to record the detection")
	}
}

// TestWorkerResultCarriesFrame verifies the result keeps the frame bytes so
// downstream snapshot storage and overlay rendering have pixels to work with.
func TestWorkerResultCarriesFrame(t *testing.T) {
	detector := &scriptedDetector{
		detections: []Detection{{Class: "pistol", Confidence: 0.9, Severity: SeverityCritical}},
	}
	queue, scheduler, router, sink, _ := poolFixture(detector)

	pool := NewWorkerPool(1, queue, detector, router, scheduler)
	pool.Start()

	frame := task("cam-1", PriorityNormal, time.Now())
	frame.Frame.Data = []byte{0xFF, 0xD8, 0x01, 0x02, 0xFF, 0xD9}
	queue.Push(frame)
	results := sink.wait(t, 1)
	queue.Close()
	pool.Wait()

	if len(results[0].ImageData) == 0 {
		t.Fatal("Expected the result to carry the frame bytes")
	}
	if string(results[0].ImageData) != string(frame.Frame.Data) {
		t.Errorf("Result frame bytes do not match the task frame")
	}
}

// TestWorkerDetectorError verifies a detector failure degrades to an empty
// tagged result that never reaches the incident handler.
func TestWorkerDetectorError(t *testing.T) {
	detector := &scriptedDetector{err: errors.New("model overloaded")}
	queue, scheduler, router, sink, handler := poolFixture(detector)

	pool := NewWorkerPool(1, queue, detector, router, scheduler)
	pool.Start()

	queue.Push(task("cam-1", PriorityNormal, time.Now()))
	results := sink.wait(t, 1)
	queue.Close()
	pool.Wait()

	if results[0].Error != "model overloaded" {
		t.Errorf("Expected tagged error, got %q", results[0].Error)
	}
	if len(results[0].Detections) != 0 {
		t.Errorf("Expected no detections on error, got %d", len(results[0].Detections))
	}
	if len(handler.results) != 0 {
		t.Errorf("Expected no incident ingestion on error, got %d", len(handler.results))
	}
}

// TestWorkerDetectorPanic verifies a panicking detector does not kill the
// worker; the frame degrades and the next frame still processes.
func TestWorkerDetectorPanic(t *testing.T) {
	detector := &scriptedDetector{panicMsg: "index out of range"}
	queue, scheduler, router, sink, _ := poolFixture(detector)

	pool := NewWorkerPool(1, queue, detector, router, scheduler)
	pool.Start()

	queue.Push(task("cam-1", PriorityNormal, time.Now()))
	results := sink.wait(t, 1)

	if results[0].Error == "" {
		t.Error("Expected panic to surface as a tagged error")
	}

	// Worker survived: it can still serve the next frame.
	detector.setPanic("")
	queue.Push(task("cam-1", PriorityNormal, time.Now()))
	sink.wait(t, 2)

	queue.Close()
	pool.Wait()
}

// TestRouterSkippedResultsBypassIncidents verifies cached detections on
// skipped frames never re-enter the incident path.
func TestRouterSkippedResultsBypassIncidents(t *testing.T) {
	_, _, router, sink, handler := poolFixture(&scriptedDetector{})

	router.Route(&DetectionResult{
		CameraID:   "cam-1",
		Skipped:    true,
		SkipReason: "no_motion",
		Detections: []Detection{{Class: "pistol", Confidence: 0.9, Severity: SeverityCritical}},
	})

	if len(handler.results) != 0 {
		t.Errorf("Expected skipped result to bypass incidents, got %d", len(handler.results))
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.results) != 1 {
		t.Errorf("Expected sinks to still see the result, got %d", len(sink.results))
	}
}
