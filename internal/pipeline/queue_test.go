package pipeline

import (
	"sync"
	"testing"
	"time"
)

func task(cameraID string, priority FramePriority, ts time.Time) *FrameTask {
	return &FrameTask{
		CameraID: cameraID,
		Priority: priority,
		Frame:    &FrameData{CameraID: cameraID, Timestamp: ts},
	}
}

// TestQueueOrdering verifies that tasks pop in priority order, with
// timestamp breaking priority ties and push order breaking exact ties.
func TestQueueOrdering(t *testing.T) {
	q := NewPriorityQueue(10)
	defer q.Close()

	base := time.Now()

	// Pushed deliberately out of order.
	if err := q.Push(task("low", PriorityLow, base)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := q.Push(task("normal-late", PriorityNormal, base.Add(time.Second))); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := q.Push(task("high", PriorityHigh, base.Add(2*time.Second))); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := q.Push(task("normal-early", PriorityNormal, base)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	want := []string{"high", "normal-early", "normal-late", "low"}
	for _, expected := range want {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop returned closed while expecting %s", expected)
		}
		if got.CameraID != expected {
			t.Errorf("Expected %s, got %s", expected, got.CameraID)
		}
	}
}

// TestQueueFIFOWithinTies verifies that tasks with equal priority and equal
// timestamp keep their push order.
func TestQueueFIFOWithinTies(t *testing.T) {
	q := NewPriorityQueue(10)
	defer q.Close()

	ts := time.Now()
	for _, id := range []string{"a", "b", "c"} {
		if err := q.Push(task(id, PriorityNormal, ts)); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
	}

	for _, expected := range []string{"a", "b", "c"} {
		got, _ := q.Pop()
		if got.CameraID != expected {
			t.Errorf("Expected %s, got %s", expected, got.CameraID)
		}
	}
}

// TestQueueDropOnFull verifies that a full queue rejects the push instead
// of blocking or evicting queued work.
func TestQueueDropOnFull(t *testing.T) {
	q := NewPriorityQueue(2)
	defer q.Close()

	ts := time.Now()
	if err := q.Push(task("a", PriorityNormal, ts)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := q.Push(task("b", PriorityNormal, ts)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := q.Push(task("c", PriorityHigh, ts)); err != ErrQueueFull {
		t.Fatalf("Expected ErrQueueFull, got %v", err)
	}

	stats := q.Stats()
	if stats.Dropped != 1 {
		t.Errorf("Expected 1 dropped, got %d", stats.Dropped)
	}
	if stats.Pushed != 2 {
		t.Errorf("Expected 2 pushed, got %d", stats.Pushed)
	}

	// The queued tasks survive the rejected push.
	got, _ := q.Pop()
	if got.CameraID != "a" {
		t.Errorf("Expected a, got %s", got.CameraID)
	}
}

// TestQueuePurge verifies that all of one camera's tasks are removed while
// other cameras' tasks stay ordered.
func TestQueuePurge(t *testing.T) {
	q := NewPriorityQueue(10)
	defer q.Close()

	base := time.Now()
	q.Push(task("cam-1", PriorityNormal, base))
	q.Push(task("cam-2", PriorityNormal, base.Add(time.Millisecond)))
	q.Push(task("cam-1", PriorityHigh, base.Add(2*time.Millisecond)))
	q.Push(task("cam-3", PriorityLow, base.Add(3*time.Millisecond)))

	removed := q.Purge("cam-1")
	if removed != 2 {
		t.Fatalf("Expected 2 purged, got %d", removed)
	}
	if q.Len() != 2 {
		t.Fatalf("Expected 2 remaining, got %d", q.Len())
	}

	first, _ := q.Pop()
	second, _ := q.Pop()
	if first.CameraID != "cam-2" || second.CameraID != "cam-3" {
		t.Errorf("Expected cam-2 then cam-3, got %s then %s", first.CameraID, second.CameraID)
	}

	if q.Stats().Purged != 2 {
		t.Errorf("Expected purged counter 2, got %d", q.Stats().Purged)
	}
}

// TestQueueCloseDrains verifies that Close wakes blocked consumers, queued
// tasks still drain and Pop reports closed only once the queue is empty.
func TestQueueCloseDrains(t *testing.T) {
	q := NewPriorityQueue(10)

	q.Push(task("a", PriorityNormal, time.Now()))
	q.Close()

	if err := q.Push(task("b", PriorityNormal, time.Now())); err != ErrQueueClosed {
		t.Errorf("Expected ErrQueueClosed after Close, got %v", err)
	}

	got, ok := q.Pop()
	if !ok || got.CameraID != "a" {
		t.Fatalf("Expected queued task to drain after Close, got %v ok=%v", got, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Error("Expected Pop to report closed on empty queue")
	}
}

// TestQueueCloseWakesBlockedConsumers verifies that consumers parked in Pop
// return promptly when the queue closes.
func TestQueueCloseWakesBlockedConsumers(t *testing.T) {
	q := NewPriorityQueue(10)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Pop()
		}()
	}

	time.Sleep(50 * time.Millisecond)
	q.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Blocked consumers did not wake after Close")
	}
}
