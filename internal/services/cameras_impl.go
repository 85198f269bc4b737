package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	cameras "vigil/gen/cameras"
	"vigil/internal/camera"
	"vigil/internal/pipeline"
)

// strPtr returns a pointer to a string value
func strPtr(s string) *string {
	return &s
}

// intPtr returns a pointer to an int value
func intPtr(i int) *int {
	return &i
}

// CamerasImplementation implements the cameras service
type CamerasImplementation struct {
	manager *camera.Manager
	pm      pipeline.PipelineManager
}

// NewCamerasService creates a new cameras service implementation
func NewCamerasService(manager *camera.Manager, pm pipeline.PipelineManager) cameras.Service {
	return &CamerasImplementation{manager: manager, pm: pm}
}

func toCameraInfo(cam *camera.Camera) *cameras.CameraInfo {
	cfg := cam.Config
	return &cameras.CameraInfo{
		ID:         cfg.ID,
		Name:       cfg.Name,
		Location:   strPtr(cfg.Location),
		Source:     cfg.Source,
		CaptureFps: intPtr(cfg.CaptureFPS),
		DetectFps:  intPtr(cfg.DetectFPS),
		Priority:   intPtr(int(cfg.Priority)),
		Status:     cam.Status,
		CreatedAt:  strPtr(cam.CreatedAt.Format(time.RFC3339)),
	}
}

// List returns all registered cameras
func (c *CamerasImplementation) List(ctx context.Context) ([]*cameras.CameraInfo, error) {
	cams := c.manager.List()
	result := make([]*cameras.CameraInfo, len(cams))
	for i, cam := range cams {
		result[i] = toCameraInfo(cam)
	}
	return result, nil
}

// Get returns a camera by ID
func (c *CamerasImplementation) Get(ctx context.Context, p *cameras.GetPayload) (*cameras.CameraInfo, error) {
	cam, err := c.manager.Get(p.ID)
	if err != nil {
		return nil, &cameras.NotFoundError{
			Message: "Camera not found",
			ID:      p.ID,
		}
	}
	return toCameraInfo(cam), nil
}

// Create registers a camera and starts its capture
func (c *CamerasImplementation) Create(ctx context.Context, p *cameras.CreatePayload) (*cameras.CameraInfo, error) {
	id := uuid.New().String()
	if p.ID != nil && *p.ID != "" {
		id = *p.ID
	}

	cfg := &pipeline.CameraConfig{
		ID:         id,
		Name:       p.Name,
		Source:     p.Source,
		CaptureFPS: p.CaptureFps,
		DetectFPS:  p.DetectFps,
		Priority:   pipeline.FramePriority(p.Priority),
	}
	if p.Location != nil {
		cfg.Location = *p.Location
	}

	if err := c.manager.Add(cfg); err != nil {
		return nil, &cameras.BadRequestError{
			Message: "Failed to add camera",
			Details: strPtr(err.Error()),
		}
	}

	cam, err := c.manager.Get(id)
	if err != nil {
		return nil, &cameras.BadRequestError{
			Message: "Failed to add camera",
			Details: strPtr(err.Error()),
		}
	}
	return toCameraInfo(cam), nil
}

// Delete stops and removes a camera
func (c *CamerasImplementation) Delete(ctx context.Context, p *cameras.DeletePayload) error {
	if err := c.manager.Remove(p.ID); err != nil {
		return &cameras.NotFoundError{
			Message: "Camera not found",
			ID:      p.ID,
		}
	}
	return nil
}

// Stats returns pipeline counters for a camera
func (c *CamerasImplementation) Stats(ctx context.Context, p *cameras.StatsPayload) (*cameras.CameraCounters, error) {
	stats := c.pm.CameraStats(p.ID)
	if stats == nil {
		return nil, &cameras.NotFoundError{
			Message: "Camera not found",
			ID:      p.ID,
		}
	}
	return toCameraCounters(stats), nil
}

func toCameraCounters(stats *pipeline.CameraStats) *cameras.CameraCounters {
	return &cameras.CameraCounters{
		CameraID:        stats.CameraID,
		FramesCaptured:  int64(stats.FramesCaptured),
		FramesSkipped:   int64(stats.FramesSkipped),
		MotionSkips:     int64(stats.MotionSkips),
		HashSkips:       int64(stats.HashSkips),
		FramesEnqueued:  int64(stats.FramesEnqueued),
		FramesDropped:   int64(stats.FramesDropped),
		DetectionsTotal: int64(stats.DetectionsTotal),
		AvgDetectMs:     float64(stats.AvgDetectMs),
		Loops:           int64(stats.Loops),
		Status:          stats.Status,
	}
}
