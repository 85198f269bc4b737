// Code generated by goa v3.24.1, DO NOT EDIT.
//
// HTTP request path constructors for the system service.
//
// Command:
// $ goa gen vigil/design

package client

// StatusSystemPath returns the URL path to the system service status HTTP endpoint.
func StatusSystemPath() string {
	return "/api/v1/system/status"
}

// ResetThrottleSystemPath returns the URL path to the system service reset_throttle HTTP endpoint.
func ResetThrottleSystemPath() string {
	return "/api/v1/system/throttle/reset"
}
