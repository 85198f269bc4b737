// Code generated by goa v3.24.1, DO NOT EDIT.
//
// health endpoints
//
// Command:
// $ goa gen vigil/design

package health

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Endpoints wraps the "health" service endpoints.
type Endpoints struct {
	Healthz goa.Endpoint
	Readyz  goa.Endpoint
}

// NewEndpoints wraps the methods of the "health" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	return &Endpoints{
		Healthz: NewHealthzEndpoint(s),
		Readyz:  NewReadyzEndpoint(s),
	}
}

// Use applies the given middleware to all the "health" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.Healthz = m(e.Healthz)
	e.Readyz = m(e.Readyz)
}

// NewHealthzEndpoint returns an endpoint function that calls the method
// "healthz" of service "health".
func NewHealthzEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return nil, s.Healthz(ctx)
	}
}

// NewReadyzEndpoint returns an endpoint function that calls the method
// "readyz" of service "health".
func NewReadyzEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return nil, s.Readyz(ctx)
	}
}
