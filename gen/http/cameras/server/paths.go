// Code generated by goa v3.24.1, DO NOT EDIT.
//
// HTTP request path constructors for the cameras service.
//
// Command:
// $ goa gen vigil/design

package server

import (
	"fmt"
)

// ListCamerasPath returns the URL path to the cameras service list HTTP endpoint.
func ListCamerasPath() string {
	return "/api/v1/cameras"
}

// GetCamerasPath returns the URL path to the cameras service get HTTP endpoint.
func GetCamerasPath(id string) string {
	return fmt.Sprintf("/api/v1/cameras/%v", id)
}

// CreateCamerasPath returns the URL path to the cameras service create HTTP endpoint.
func CreateCamerasPath() string {
	return "/api/v1/cameras"
}

// DeleteCamerasPath returns the URL path to the cameras service delete HTTP endpoint.
func DeleteCamerasPath(id string) string {
	return fmt.Sprintf("/api/v1/cameras/%v", id)
}

// StatsCamerasPath returns the URL path to the cameras service stats HTTP endpoint.
func StatsCamerasPath(id string) string {
	return fmt.Sprintf("/api/v1/cameras/%v/stats", id)
}
