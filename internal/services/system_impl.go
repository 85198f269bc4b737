package services

import (
	"context"
	"time"

	system "vigil/gen/system"
	"vigil/internal/notify"
	"vigil/internal/pipeline"
)

// SystemImplementation implements the system service
type SystemImplementation struct {
	pm       pipeline.PipelineManager
	detector pipeline.Detector
	throttle *notify.AlertThrottle
	started  time.Time
}

// NewSystemService creates a new system service implementation
func NewSystemService(pm pipeline.PipelineManager, detector pipeline.Detector, throttle *notify.AlertThrottle) system.Service {
	return &SystemImplementation{
		pm:       pm,
		detector: detector,
		throttle: throttle,
		started:  time.Now(),
	}
}

// Status returns the overall pipeline status
func (s *SystemImplementation) Status(ctx context.Context) (*system.SystemStatus, error) {
	stats := s.pm.Stats()

	counters := make([]*system.CameraCounters, len(stats.Cameras))
	for i := range stats.Cameras {
		cam := &stats.Cameras[i]
		counters[i] = &system.CameraCounters{
			CameraID:        cam.CameraID,
			FramesCaptured:  int64(cam.FramesCaptured),
			FramesSkipped:   int64(cam.FramesSkipped),
			MotionSkips:     int64(cam.MotionSkips),
			HashSkips:       int64(cam.HashSkips),
			FramesEnqueued:  int64(cam.FramesEnqueued),
			FramesDropped:   int64(cam.FramesDropped),
			DetectionsTotal: int64(cam.DetectionsTotal),
			AvgDetectMs:     float64(cam.AvgDetectMs),
			Loops:           int64(cam.Loops),
			Status:          cam.Status,
		}
	}

	ready := s.detector != nil && s.detector.Ready()

	return &system.SystemStatus{
		Cameras: counters,
		Queue: &system.QueueCounters{
			Depth:    stats.Queue.Depth,
			Capacity: stats.Queue.Capacity,
			Pushed:   int64(stats.Queue.Pushed),
			Popped:   int64(stats.Queue.Popped),
			Dropped:  int64(stats.Queue.Dropped),
			Purged:   int64(stats.Queue.Purged),
		},
		Workers:       stats.Workers,
		DetectorReady: ready,
		UptimeSeconds: int(time.Since(s.started).Seconds()),
	}, nil
}

// ResetThrottle clears alert throttle counters so the next detection for
// the affected incidents alerts immediately
func (s *SystemImplementation) ResetThrottle(ctx context.Context, p *system.ResetThrottlePayload) (*system.ThrottleReset, error) {
	if p.IncidentID != nil && *p.IncidentID != "" {
		s.throttle.Reset(*p.IncidentID)
		return &system.ThrottleReset{Cleared: 1}, nil
	}
	return &system.ThrottleReset{Cleared: s.throttle.ResetAll()}, nil
}
