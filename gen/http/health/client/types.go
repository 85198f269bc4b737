// Code generated by goa v3.24.1, DO NOT EDIT.
//
// health HTTP client types
//
// Command:
// $ goa gen vigil/design

package client

import (
	health "vigil/gen/health"

	goa "goa.design/goa/v3/pkg"
)

// ReadyzNotReadyResponseBody is the type of the "health" service "readyz"
// endpoint HTTP response body for the "not_ready" error.
type ReadyzNotReadyResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Additional error details
	Details *string `form:"details,omitempty" json:"details,omitempty" xml:"details,omitempty"`
}

// NewReadyzNotReady builds a health service readyz endpoint not_ready error.
func NewReadyzNotReady(body *ReadyzNotReadyResponseBody) *health.NotReadyError {
	v := &health.NotReadyError{
		Message: *body.Message,
		Details: body.Details,
	}

	return v
}

// ValidateReadyzNotReadyResponseBody runs the validations defined on
// readyz_not_ready_response_body
func ValidateReadyzNotReadyResponseBody(body *ReadyzNotReadyResponseBody) (err error) {
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}
