package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// WorkerPool is a fixed-size pool draining the shared priority queue.
// Pool size bounds total concurrent detector load independent of camera
// count: adding cameras raises queue pressure and drop rate, not
// parallelism. A detector failure converts to an empty-detections result
// tagged with the error; workers never crash on a bad frame.
type WorkerPool struct {
	queue     *PriorityQueue
	detector  Detector
	router    *Router
	scheduler *Scheduler
	workers   int
	wg        sync.WaitGroup
}

// NewWorkerPool creates a pool with n workers (clamped to [1,8])
func NewWorkerPool(n int, queue *PriorityQueue, detector Detector, router *Router, scheduler *Scheduler) *WorkerPool {
	if n < 1 {
		n = 1
	}
	if n > 8 {
		n = 8
	}
	return &WorkerPool{
		queue:     queue,
		detector:  detector,
		router:    router,
		scheduler: scheduler,
		workers:   n,
	}
}

// Start launches the worker goroutines
func (p *WorkerPool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	log.Printf("[Workers] Started %d detection workers", p.workers)
}

// Wait blocks until all workers exit. Workers exit when the queue is
// closed and drained.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

// Size returns the configured worker count
func (p *WorkerPool) Size() int {
	return p.workers
}

func (p *WorkerPool) run(id int) {
	defer p.wg.Done()

	for {
		task, ok := p.queue.Pop()
		if !ok {
			log.Printf("[Workers] Worker %d exiting", id)
			return
		}

		result := p.process(task)
		p.router.Route(result)
	}
}

// process runs one detection pass with per-task timing. Panics and errors
// from the detector degrade to an empty tagged result.
func (p *WorkerPool) process(task *FrameTask) (result *DetectionResult) {
	start := time.Now()

	result = &DetectionResult{
		CameraID:    task.CameraID,
		FrameSeq:    task.Frame.Seq,
		Timestamp:   task.Frame.Timestamp,
		FrameWidth:  task.Frame.Width,
		FrameHeight: task.Frame.Height,
		ImageData:   task.Frame.Data,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Workers] Recovered from detector panic for camera %s: %v", task.CameraID, r)
			result.Detections = nil
			result.Error = fmt.Sprintf("detector panic: %v", r)
		}
		result.ProcessingMs = float32(time.Since(start).Milliseconds())
	}()

	cfg := p.scheduler.Config(task.CameraID)

	detections, err := p.detector.Detect(context.Background(), task.Frame, cfg)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Detections = detections
	return result
}
