// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system client
//
// Command:
// $ goa gen vigil/design

package system

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "system" service client.
type Client struct {
	StatusEndpoint        goa.Endpoint
	ResetThrottleEndpoint goa.Endpoint
}

// NewClient initializes a "system" service client given the endpoints.
func NewClient(status, resetThrottle goa.Endpoint) *Client {
	return &Client{
		StatusEndpoint:        status,
		ResetThrottleEndpoint: resetThrottle,
	}
}

// Status calls the "status" endpoint of the "system" service.
func (c *Client) Status(ctx context.Context) (res *SystemStatus, err error) {
	var ires any
	ires, err = c.StatusEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.(*SystemStatus), nil
}

// ResetThrottle calls the "reset_throttle" endpoint of the "system" service.
func (c *Client) ResetThrottle(ctx context.Context, p *ResetThrottlePayload) (res *ThrottleReset, err error) {
	var ires any
	ires, err = c.ResetThrottleEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*ThrottleReset), nil
}
