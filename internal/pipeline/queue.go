package pipeline

import (
	"container/heap"
	"sync"
)

// PriorityQueue is the single structure shared between all camera loops and
// the detection worker pool. Ordering is priority ascending (more urgent
// first), then capture timestamp ascending, with a push counter breaking
// exact ties so one camera's tasks are never reordered relative to each
// other. Push never blocks: a full queue rejects the task (load shedding).
type PriorityQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    taskHeap
	capacity int
	closed   bool

	pushed  uint64
	popped  uint64
	dropped uint64
	purged  uint64
	seq     uint64
}

type queuedTask struct {
	task *FrameTask
	seq  uint64 // Push order, final tie-break
}

type taskHeap []queuedTask

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.task.Priority != b.task.Priority {
		return a.task.Priority < b.task.Priority
	}
	if !a.task.Frame.Timestamp.Equal(b.task.Frame.Timestamp) {
		return a.task.Frame.Timestamp.Before(b.task.Frame.Timestamp)
	}
	return a.seq < b.seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(queuedTask)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedTask{}
	*h = old[:n-1]
	return item
}

// NewPriorityQueue creates a bounded priority queue
func NewPriorityQueue(capacity int) *PriorityQueue {
	if capacity <= 0 {
		capacity = 100
	}
	q := &PriorityQueue{
		capacity: capacity,
		items:    make(taskHeap, 0, capacity),
	}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Push enqueues a task. Returns ErrQueueFull when at capacity and
// ErrQueueClosed after Close; the caller drops the frame in both cases.
func (q *PriorityQueue) Push(task *FrameTask) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	if len(q.items) >= q.capacity {
		q.dropped++
		return ErrQueueFull
	}

	q.seq++
	heap.Push(&q.items, queuedTask{task: task, seq: q.seq})
	q.pushed++
	q.notEmpty.Signal()
	return nil
}

// Pop blocks until a task is available or the queue is closed.
// Returns false only after Close once the queue has drained.
func (q *PriorityQueue) Pop() (*FrameTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closed {
			return nil, false
		}
		q.notEmpty.Wait()
	}

	item := heap.Pop(&q.items).(queuedTask)
	q.popped++
	return item.task, true
}

// Purge removes all queued tasks for a camera. Used on camera removal so a
// cancelled camera's frames do not occupy worker capacity.
func (q *PriorityQueue) Purge(cameraID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	removed := 0
	for _, item := range q.items {
		if item.task.CameraID == cameraID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	q.items = kept
	heap.Init(&q.items)
	q.purged += uint64(removed)
	return removed
}

// Len returns the current queue depth
func (q *PriorityQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Stats returns a snapshot of queue counters
func (q *PriorityQueue) Stats() QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return QueueStats{
		Depth:    len(q.items),
		Capacity: q.capacity,
		Pushed:   q.pushed,
		Popped:   q.popped,
		Dropped:  q.dropped,
		Purged:   q.purged,
	}
}

// Close wakes all blocked consumers. Queued tasks continue to drain;
// Pop returns false once the queue is empty.
func (q *PriorityQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notEmpty.Broadcast()
}
