// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system endpoints
//
// Command:
// $ goa gen vigil/design

package system

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Endpoints wraps the "system" service endpoints.
type Endpoints struct {
	Status        goa.Endpoint
	ResetThrottle goa.Endpoint
}

// NewEndpoints wraps the methods of the "system" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	return &Endpoints{
		Status:        NewStatusEndpoint(s),
		ResetThrottle: NewResetThrottleEndpoint(s),
	}
}

// Use applies the given middleware to all the "system" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.Status = m(e.Status)
	e.ResetThrottle = m(e.ResetThrottle)
}

// NewStatusEndpoint returns an endpoint function that calls the method
// "status" of service "system".
func NewStatusEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return s.Status(ctx)
	}
}

// NewResetThrottleEndpoint returns an endpoint function that calls the method
// "reset_throttle" of service "system".
func NewResetThrottleEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ResetThrottlePayload)
		return s.ResetThrottle(ctx, p)
	}
}
