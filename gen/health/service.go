// Code generated by goa v3.24.1, DO NOT EDIT.
//
// health service
//
// Command:
// $ goa gen vigil/design

package health

import (
	"context"
)

// Health check endpoints for Kubernetes probes
type Service interface {
	// Liveness probe endpoint - indicates if the service is alive
	Healthz(context.Context) (err error)
	// Readiness probe endpoint - indicates if the detector backend is reachable
	Readyz(context.Context) (err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "vigil"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "health"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [2]string{"healthz", "readyz"}

// Service is not ready to serve traffic
type NotReadyError struct {
	// Error message
	Message string
	// Additional error details
	Details *string
}

// Error returns an error description.
func (e *NotReadyError) Error() string {
	return "Service is not ready to serve traffic"
}

// ErrorName returns "NotReadyError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *NotReadyError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "NotReadyError".
func (e *NotReadyError) GoaErrorName() string {
	return "not_ready"
}
