// Code generated by goa v3.24.1, DO NOT EDIT.
//
// health client
//
// Command:
// $ goa gen vigil/design

package health

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "health" service client.
type Client struct {
	HealthzEndpoint goa.Endpoint
	ReadyzEndpoint  goa.Endpoint
}

// NewClient initializes a "health" service client given the endpoints.
func NewClient(healthz, readyz goa.Endpoint) *Client {
	return &Client{
		HealthzEndpoint: healthz,
		ReadyzEndpoint:  readyz,
	}
}

// Healthz calls the "healthz" endpoint of the "health" service.
func (c *Client) Healthz(ctx context.Context) (err error) {
	_, err = c.HealthzEndpoint(ctx, nil)
	return
}

// Readyz calls the "readyz" endpoint of the "health" service.
// Readyz may return the following errors:
//   - "not_ready" (type *NotReadyError): Service is not ready
//   - error: internal error
func (c *Client) Readyz(ctx context.Context) (err error) {
	_, err = c.ReadyzEndpoint(ctx, nil)
	return
}
