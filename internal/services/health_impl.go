package services

import (
	"context"

	health "vigil/gen/health"
	"vigil/internal/pipeline"
)

// HealthImplementation implements the health service
type HealthImplementation struct {
	detector pipeline.Detector
}

// NewHealthService creates a new health service implementation
func NewHealthService(detector pipeline.Detector) health.Service {
	return &HealthImplementation{detector: detector}
}

// Healthz implements the liveness probe
func (h *HealthImplementation) Healthz(ctx context.Context) error {
	return nil
}

// Readyz implements the readiness probe. The service is ready when the
// detector backend answers its health check.
func (h *HealthImplementation) Readyz(ctx context.Context) error {
	if h.detector != nil && !h.detector.Ready() {
		return &health.NotReadyError{
			Message: "detector backend is not ready",
		}
	}
	return nil
}
