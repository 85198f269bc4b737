// Code generated by goa v3.24.1, DO NOT EDIT.
//
// HTTP request path constructors for the incidents service.
//
// Command:
// $ goa gen vigil/design

package server

import (
	"fmt"
)

// ListIncidentsPath returns the URL path to the incidents service list HTTP endpoint.
func ListIncidentsPath() string {
	return "/api/v1/incidents"
}

// GetIncidentsPath returns the URL path to the incidents service get HTTP endpoint.
func GetIncidentsPath(id string) string {
	return fmt.Sprintf("/api/v1/incidents/%v", id)
}

// ReviewIncidentsPath returns the URL path to the incidents service review HTTP endpoint.
func ReviewIncidentsPath(id string) string {
	return fmt.Sprintf("/api/v1/incidents/%v/review", id)
}

// CloseIncidentsPath returns the URL path to the incidents service close HTTP endpoint.
func CloseIncidentsPath(id string) string {
	return fmt.Sprintf("/api/v1/incidents/%v/close", id)
}

// StatsIncidentsPath returns the URL path to the incidents service stats HTTP endpoint.
func StatsIncidentsPath() string {
	return "/api/v1/incidents/stats"
}
