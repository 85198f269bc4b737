// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents client
//
// Command:
// $ goa gen vigil/design

package incidents

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "incidents" service client.
type Client struct {
	ListEndpoint   goa.Endpoint
	GetEndpoint    goa.Endpoint
	ReviewEndpoint goa.Endpoint
	CloseEndpoint  goa.Endpoint
	StatsEndpoint  goa.Endpoint
}

// NewClient initializes a "incidents" service client given the endpoints.
func NewClient(list, get, review, close_, stats goa.Endpoint) *Client {
	return &Client{
		ListEndpoint:   list,
		GetEndpoint:    get,
		ReviewEndpoint: review,
		CloseEndpoint:  close_,
		StatsEndpoint:  stats,
	}
}

// List calls the "list" endpoint of the "incidents" service.
func (c *Client) List(ctx context.Context, p *ListPayload) (res *IncidentPage, err error) {
	var ires any
	ires, err = c.ListEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*IncidentPage), nil
}

// Get calls the "get" endpoint of the "incidents" service.
// Get may return the following errors:
//   - "not_found" (type *NotFoundError): Incident not found
//   - error: internal error
func (c *Client) Get(ctx context.Context, p *GetPayload) (res *IncidentDetail, err error) {
	var ires any
	ires, err = c.GetEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*IncidentDetail), nil
}

// Review calls the "review" endpoint of the "incidents" service.
// Review may return the following errors:
//   - "not_found" (type *NotFoundError): Incident not found
//   - "bad_request" (type *BadRequestError): Invalid review decision
//   - error: internal error
func (c *Client) Review(ctx context.Context, p *ReviewPayload) (res *Incident, err error) {
	var ires any
	ires, err = c.ReviewEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Incident), nil
}

// Close calls the "close" endpoint of the "incidents" service.
// Close may return the following errors:
//   - "not_found" (type *NotFoundError): Incident not found
//   - error: internal error
func (c *Client) Close(ctx context.Context, p *ClosePayload) (res *Incident, err error) {
	var ires any
	ires, err = c.CloseEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Incident), nil
}

// Stats calls the "stats" endpoint of the "incidents" service.
func (c *Client) Stats(ctx context.Context) (res *IncidentCounters, err error) {
	var ires any
	ires, err = c.StatsEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.(*IncidentCounters), nil
}
