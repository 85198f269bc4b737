// Code generated by goa v3.24.1, DO NOT EDIT.
//
// system HTTP client CLI support package
//
// Command:
// $ goa gen vigil/design

package client

import (
	system "vigil/gen/system"
)

// BuildResetThrottlePayload builds the payload for the system reset_throttle
// endpoint from CLI flags.
func BuildResetThrottlePayload(systemResetThrottleIncidentID string) (*system.ResetThrottlePayload, error) {
	var incidentID *string
	{
		if systemResetThrottleIncidentID != "" {
			incidentID = &systemResetThrottleIncidentID
		}
	}
	v := &system.ResetThrottlePayload{}
	v.IncidentID = incidentID

	return v, nil
}
