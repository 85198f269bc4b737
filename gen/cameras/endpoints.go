// Code generated by goa v3.24.1, DO NOT EDIT.
//
// cameras endpoints
//
// Command:
// $ goa gen vigil/design

package cameras

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Endpoints wraps the "cameras" service endpoints.
type Endpoints struct {
	List   goa.Endpoint
	Get    goa.Endpoint
	Create goa.Endpoint
	Delete goa.Endpoint
	Stats  goa.Endpoint
}

// NewEndpoints wraps the methods of the "cameras" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	return &Endpoints{
		List:   NewListEndpoint(s),
		Get:    NewGetEndpoint(s),
		Create: NewCreateEndpoint(s),
		Delete: NewDeleteEndpoint(s),
		Stats:  NewStatsEndpoint(s),
	}
}

// Use applies the given middleware to all the "cameras" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.List = m(e.List)
	e.Get = m(e.Get)
	e.Create = m(e.Create)
	e.Delete = m(e.Delete)
	e.Stats = m(e.Stats)
}

// NewListEndpoint returns an endpoint function that calls the method "list" of
// service "cameras".
func NewListEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return s.List(ctx)
	}
}

// NewGetEndpoint returns an endpoint function that calls the method "get" of
// service "cameras".
func NewGetEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*GetPayload)
		return s.Get(ctx, p)
	}
}

// NewCreateEndpoint returns an endpoint function that calls the method
// "create" of service "cameras".
func NewCreateEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*CreatePayload)
		return s.Create(ctx, p)
	}
}

// NewDeleteEndpoint returns an endpoint function that calls the method
// "delete" of service "cameras".
func NewDeleteEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*DeletePayload)
		return nil, s.Delete(ctx, p)
	}
}

// NewStatsEndpoint returns an endpoint function that calls the method "stats"
// of service "cameras".
func NewStatsEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*StatsPayload)
		return s.Stats(ctx, p)
	}
}
