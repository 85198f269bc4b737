// Code generated by goa v3.24.1, DO NOT EDIT.
//
// health HTTP client CLI support package
//
// Command:
// $ goa gen vigil/design

package client
