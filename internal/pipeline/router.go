package pipeline

import (
	"log"
	"sync"
)

// Router fans each completed detection result out to registered sinks and,
// for non-empty detections, to the incident handler. Sink failures are
// logged and never block delivery to other sinks or the calling worker.
type Router struct {
	bus       *EventBus
	scheduler *Scheduler

	mu        sync.RWMutex
	sinks     []ResultSink
	incidents IncidentHandler
}

// NewRouter creates a router publishing to the given bus
func NewRouter(bus *EventBus, scheduler *Scheduler) *Router {
	return &Router{
		bus:       bus,
		scheduler: scheduler,
	}
}

// AddSink registers a sink that receives every result
func (r *Router) AddSink(sink ResultSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, sink)
	log.Printf("[Router] Registered result sink %s", sink.Name())
}

// SetIncidentHandler wires the incident engine into the result path
func (r *Router) SetIncidentHandler(handler IncidentHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incidents = handler
}

// Route delivers one result. Called from detection workers.
func (r *Router) Route(result *DetectionResult) {
	if result == nil {
		return
	}

	r.scheduler.OnResult(result)
	r.bus.Publish(DetectionEvent{Result: result})

	r.mu.RLock()
	sinks := r.sinks
	incidents := r.incidents
	r.mu.RUnlock()

	for _, sink := range sinks {
		if err := sink.OnResult(result); err != nil {
			log.Printf("[Router] Sink %s failed for camera %s: %v", sink.Name(), result.CameraID, err)
		}
	}

	if len(result.Detections) > 0 && !result.Skipped && incidents != nil {
		incidents.HandleDetections(result)
	}
}
