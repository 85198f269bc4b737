package pipeline

import (
	"log"
	"sync"
	"time"
)

// Janitor periodically sweeps per-camera motion and frame caches so memory
// stays bounded when cameras go idle or are removed. It also logs the
// queue's drop counter so sustained load shedding is visible to operators.
type Janitor struct {
	gate      MotionGate
	scheduler *Scheduler
	queue     *PriorityQueue
	interval  time.Duration
	ttl       time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once

	lastDropped uint64
}

// NewJanitor creates a janitor; call Run to start sweeping
func NewJanitor(gate MotionGate, scheduler *Scheduler, queue *PriorityQueue, interval, ttl time.Duration) *Janitor {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Janitor{
		gate:      gate,
		scheduler: scheduler,
		queue:     queue,
		interval:  interval,
		ttl:       ttl,
		stopCh:    make(chan struct{}),
	}
}

// Run sweeps on a fixed timer until Stop
func (j *Janitor) Run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopCh:
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	motionSwept := j.gate.SweepIdle(j.ttl)
	frameSwept := j.scheduler.SweepStale(j.ttl)

	stats := j.queue.Stats()
	droppedSince := stats.Dropped - j.lastDropped
	j.lastDropped = stats.Dropped

	if motionSwept > 0 || frameSwept > 0 || droppedSince > 0 {
		log.Printf("[Janitor] Swept %d motion caches, %d frame caches (queue depth %d, %d frames shed since last sweep)",
			motionSwept, frameSwept, stats.Depth, droppedSince)
	}
}

// Stop halts the sweep loop
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopCh)
	})
}
