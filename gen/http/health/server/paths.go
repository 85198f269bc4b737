// Code generated by goa v3.24.1, DO NOT EDIT.
//
// HTTP request path constructors for the health service.
//
// Command:
// $ goa gen vigil/design

package server

// HealthzHealthPath returns the URL path to the health service healthz HTTP endpoint.
func HealthzHealthPath() string {
	return "/healthz"
}

// ReadyzHealthPath returns the URL path to the health service readyz HTTP endpoint.
func ReadyzHealthPath() string {
	return "/readyz"
}
