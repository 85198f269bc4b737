// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system client HTTP transport
//
// Command:
// $ goa gen vigil/design

package client

import (
	"context"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Client lists the system service endpoint HTTP clients.
type Client struct {
	// Status Doer is the HTTP client used to make requests to the status endpoint.
	StatusDoer goahttp.Doer

	// ResetThrottle Doer is the HTTP client used to make requests to the
	// reset_throttle endpoint.
	ResetThrottleDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme  string
	host    string
	encoder func(*http.Request) goahttp.Encoder
	decoder func(*http.Response) goahttp.Decoder
}

// NewClient instantiates HTTP clients for all the system service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
) *Client {
	return &Client{
		StatusDoer:          doer,
		ResetThrottleDoer:   doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
	}
}

// Status returns an endpoint that makes HTTP requests to the system service
// status server.
func (c *Client) Status() goa.Endpoint {
	var (
		decodeResponse = DecodeStatusResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildStatusRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.StatusDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("system", "status", err)
		}
		return decodeResponse(resp)
	}
}

// ResetThrottle returns an endpoint that makes HTTP requests to the system
// service reset_throttle server.
func (c *Client) ResetThrottle() goa.Endpoint {
	var (
		encodeRequest  = EncodeResetThrottleRequest(c.encoder)
		decodeResponse = DecodeResetThrottleResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildResetThrottleRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ResetThrottleDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("system", "reset_throttle", err)
		}
		return decodeResponse(resp)
	}
}
