// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents endpoints
//
// Command:
// $ goa gen vigil/design

package incidents

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Endpoints wraps the "incidents" service endpoints.
type Endpoints struct {
	List   goa.Endpoint
	Get    goa.Endpoint
	Review goa.Endpoint
	Close  goa.Endpoint
	Stats  goa.Endpoint
}

// NewEndpoints wraps the methods of the "incidents" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	return &Endpoints{
		List:   NewListEndpoint(s),
		Get:    NewGetEndpoint(s),
		Review: NewReviewEndpoint(s),
		Close:  NewCloseEndpoint(s),
		Stats:  NewStatsEndpoint(s),
	}
}

// Use applies the given middleware to all the "incidents" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.List = m(e.List)
	e.Get = m(e.Get)
	e.Review = m(e.Review)
	e.Close = m(e.Close)
	e.Stats = m(e.Stats)
}

// NewListEndpoint returns an endpoint function that calls the method "list" of
// service "incidents".
func NewListEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ListPayload)
		return s.List(ctx, p)
	}
}

// NewGetEndpoint returns an endpoint function that calls the method "get" of
// service "incidents".
func NewGetEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*GetPayload)
		return s.Get(ctx, p)
	}
}

// NewReviewEndpoint returns an endpoint function that calls the method
// "review" of service "incidents".
func NewReviewEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ReviewPayload)
		return s.Review(ctx, p)
	}
}

// NewCloseEndpoint returns an endpoint function that calls the method "close"
// of service "incidents".
func NewCloseEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ClosePayload)
		return s.Close(ctx, p)
	}
}

// NewStatsEndpoint returns an endpoint function that calls the method "stats"
// of service "incidents".
func NewStatsEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return s.Stats(ctx)
	}
}
