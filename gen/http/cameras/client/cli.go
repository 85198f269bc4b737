// Code generated by goa v3.24.1, DO NOT EDIT.
//
// cameras HTTP client CLI support package
//
// Command:
// $ goa gen vigil/design

package client

import (
	"encoding/json"
	"fmt"
	cameras "vigil/gen/cameras"

	goa "goa.design/goa/v3/pkg"
)

// BuildGetPayload builds the payload for the cameras get endpoint from CLI
// flags.
func BuildGetPayload(camerasGetID string) (*cameras.GetPayload, error) {
	var id string
	{
		id = camerasGetID
	}
	v := &cameras.GetPayload{}
	v.ID = id

	return v, nil
}

// BuildCreatePayload builds the payload for the cameras create endpoint from
// CLI flags.
func BuildCreatePayload(camerasCreateBody string) (*cameras.CreatePayload, error) {
	var err error
	var body CreateRequestBody
	{
		err = json.Unmarshal([]byte(camerasCreateBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"capture_fps\": 7833769506204550365,\n      \"detect_fps\": 5533969530810084324,\n      \"id\": \"Quis nisi vero.\",\n      \"location\": \"Doloribus quis.\",\n      \"name\": \"Amet voluptas ut.\",\n      \"priority\": 1,\n      \"source\": \"Dolorum tenetur quia dolore cupiditate dignissimos qui.\"\n   }'")
		}
		if body.Priority < 1 {
			err = goa.MergeErrors(err, goa.InvalidRangeError("body.priority", body.Priority, 1, true))
		}
		if body.Priority > 3 {
			err = goa.MergeErrors(err, goa.InvalidRangeError("body.priority", body.Priority, 3, false))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &cameras.CreatePayload{
		ID:         body.ID,
		Name:       body.Name,
		Location:   body.Location,
		Source:     body.Source,
		CaptureFps: body.CaptureFps,
		DetectFps:  body.DetectFps,
		Priority:   body.Priority,
	}
	{
		var zero int
		if v.CaptureFps == zero {
			v.CaptureFps = 15
		}
	}
	{
		var zero int
		if v.DetectFps == zero {
			v.DetectFps = 5
		}
	}
	{
		var zero int
		if v.Priority == zero {
			v.Priority = 2
		}
	}

	return v, nil
}

// BuildDeletePayload builds the payload for the cameras delete endpoint from
// CLI flags.
func BuildDeletePayload(camerasDeleteID string) (*cameras.DeletePayload, error) {
	var id string
	{
		id = camerasDeleteID
	}
	v := &cameras.DeletePayload{}
	v.ID = id

	return v, nil
}

// BuildStatsPayload builds the payload for the cameras stats endpoint from CLI
// flags.
func BuildStatsPayload(camerasStatsID string) (*cameras.StatsPayload, error) {
	var id string
	{
		id = camerasStatsID
	}
	v := &cameras.StatsPayload{}
	v.ID = id

	return v, nil
}
