// Code generated by goa v3.24.1, DO NOT EDIT.
//
// cameras client
//
// Command:
// $ goa gen vigil/design

package cameras

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "cameras" service client.
type Client struct {
	ListEndpoint   goa.Endpoint
	GetEndpoint    goa.Endpoint
	CreateEndpoint goa.Endpoint
	DeleteEndpoint goa.Endpoint
	StatsEndpoint  goa.Endpoint
}

// NewClient initializes a "cameras" service client given the endpoints.
func NewClient(list, get, create, delete_, stats goa.Endpoint) *Client {
	return &Client{
		ListEndpoint:   list,
		GetEndpoint:    get,
		CreateEndpoint: create,
		DeleteEndpoint: delete_,
		StatsEndpoint:  stats,
	}
}

// List calls the "list" endpoint of the "cameras" service.
func (c *Client) List(ctx context.Context) (res []*CameraInfo, err error) {
	var ires any
	ires, err = c.ListEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.([]*CameraInfo), nil
}

// Get calls the "get" endpoint of the "cameras" service.
// Get may return the following errors:
//   - "not_found" (type *NotFoundError): Camera not found
//   - error: internal error
func (c *Client) Get(ctx context.Context, p *GetPayload) (res *CameraInfo, err error) {
	var ires any
	ires, err = c.GetEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*CameraInfo), nil
}

// Create calls the "create" endpoint of the "cameras" service.
// Create may return the following errors:
//   - "bad_request" (type *BadRequestError): Invalid camera configuration
//   - error: internal error
func (c *Client) Create(ctx context.Context, p *CreatePayload) (res *CameraInfo, err error) {
	var ires any
	ires, err = c.CreateEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*CameraInfo), nil
}

// Delete calls the "delete" endpoint of the "cameras" service.
// Delete may return the following errors:
//   - "not_found" (type *NotFoundError): Camera not found
//   - error: internal error
func (c *Client) Delete(ctx context.Context, p *DeletePayload) (err error) {
	_, err = c.DeleteEndpoint(ctx, p)
	return
}

// Stats calls the "stats" endpoint of the "cameras" service.
// Stats may return the following errors:
//   - "not_found" (type *NotFoundError): Camera not found
//   - error: internal error
func (c *Client) Stats(ctx context.Context, p *StatsPayload) (res *CameraCounters, err error) {
	var ires any
	ires, err = c.StatsEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*CameraCounters), nil
}
