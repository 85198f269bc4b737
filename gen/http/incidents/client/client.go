// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents client HTTP transport
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

// Client lists the incidents service endpoint HTTP clients.
type Client struct {
	// List Doer is the HTTP client used to make requests to the list endpoint.
	ListDoer goahttp.Doer

	// Get Doer is the HTTP client used to make requests to the get endpoint.
	GetDoer goahttp.Doer

	// Review Doer is the HTTP client used to make requests to the review endpoint.
	ReviewDoer goahttp.Doer

	// Close Doer is the HTTP client used to make requests to the close endpoint.
	CloseDoer goahttp.Doer

	// Stats Doer is the HTTP client used to make requests to the stats endpoint.
	StatsDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme  string
	host    string
	encoder func(*http.Request) goahttp.Encoder
	decoder func(*http.Response) goahttp.Decoder
}

// NewClient instantiates HTTP clients for all the incidents service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
) *Client {
	return &Client{
		ListDoer:            doer,
		GetDoer:             doer,
		ReviewDoer:          doer,
		CloseDoer:           doer,
		StatsDoer:           doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
	}
}

// List returns an endpoint that makes HTTP requests to the incidents service
// list server.
func (c *Client) List() goa.Endpoint {
	var (
		encodeRequest  = EncodeListRequest(c.encoder)
		decodeResponse = DecodeListResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildListRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ListDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("incidents", "list", err)
		}
		return decodeResponse(resp)
	}
}

// Get returns an endpoint that makes HTTP requests to the incidents service
// get server.
func (c *Client) Get() goa.Endpoint {
	var (
		decodeResponse = DecodeGetResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildGetRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.GetDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("incidents", "get", err)
		}
		return decodeResponse(resp)
	}
}

// Review returns an endpoint that makes HTTP requests to the incidents service
// review server.
func (c *Client) Review() goa.Endpoint {
	var (
		encodeRequest  = EncodeReviewRequest(c.encoder)
		decodeResponse = DecodeReviewResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildReviewRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ReviewDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("incidents", "review", err)
		}
		return decodeResponse(resp)
	}
}

// Close returns an endpoint that makes HTTP requests to the incidents service
// close server.
func (c *Client) Close() goa.Endpoint {
	var (
		decodeResponse = DecodeCloseResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildCloseRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.CloseDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("incidents", "close", err)
		}
		return decodeResponse(resp)
	}
}

// Stats returns an endpoint that makes HTTP requests to the incidents service
// stats server.
func (c *Client) Stats() goa.Endpoint {
	var (
		decodeResponse = DecodeStatsResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildStatsRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.StatsDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("incidents", "stats", err)
		}
		return decodeResponse(resp)
	}
}
