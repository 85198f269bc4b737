// Code generated by goa v3.24.1, DO NOT EDIT.
//
// health HTTP server types
//
// Command:
// $ goa gen vigil/design

package server

import (
	health "vigil/gen/health"
)

// ReadyzNotReadyResponseBody is the type of the "health" service "readyz"
// endpoint HTTP response body for the "not_ready" error.
type ReadyzNotReadyResponseBody struct {
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
	// Additional error details
	Details *string `form:"details,omitempty" json:"details,omitempty" xml:"details,omitempty"`
}

// NewReadyzNotReadyResponseBody builds the HTTP response body from the result
// of the "readyz" endpoint of the "health" service.
func NewReadyzNotReadyResponseBody(res *health.NotReadyError) *ReadyzNotReadyResponseBody {
	body := &ReadyzNotReadyResponseBody{
		Message: res.Message,
		Details: res.Details,
	}
	return body
}
