// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents HTTP client CLI support package
//
// Command:
// $ goa gen vigil/design

package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	incidents "vigil/gen/incidents"

	goa "goa.design/goa/v3/pkg"
)

// BuildListPayload builds the payload for the incidents list endpoint from CLI
// flags.
func BuildListPayload(incidentsListStatus string, incidentsListCameraID string, incidentsListPage string, incidentsListPageSize string) (*incidents.ListPayload, error) {
	var err error
	var status *string
	{
		if incidentsListStatus != "" {
			status = &incidentsListStatus
			if !(*status == "active" || *status == "closed" || *status == "reviewed" || *status == "confirmed" || *status == "false_alarm") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("status", *status, []any{"active", "closed", "reviewed", "confirmed", "false_alarm"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var cameraID *string
	{
		if incidentsListCameraID != "" {
			cameraID = &incidentsListCameraID
		}
	}
	var page int
	{
		if incidentsListPage != "" {
			var v int64
			v, err = strconv.ParseInt(incidentsListPage, 10, strconv.IntSize)
			page = int(v)
			if err != nil {
				return nil, fmt.Errorf("invalid value for page, must be INT")
			}
			if page < 1 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("page", page, 1, true))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var pageSize int
	{
		if incidentsListPageSize != "" {
			var v int64
			v, err = strconv.ParseInt(incidentsListPageSize, 10, strconv.IntSize)
			pageSize = int(v)
			if err != nil {
				return nil, fmt.Errorf("invalid value for pageSize, must be INT")
			}
			if pageSize < 1 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("page_size", pageSize, 1, true))
			}
			if pageSize > 100 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("page_size", pageSize, 100, false))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	v := &incidents.ListPayload{}
	v.Status = status
	v.CameraID = cameraID
	v.Page = page
	v.PageSize = pageSize

	return v, nil
}

// BuildGetPayload builds the payload for the incidents get endpoint from CLI
// flags.
func BuildGetPayload(incidentsGetID string) (*incidents.GetPayload, error) {
	var id string
	{
		id = incidentsGetID
	}
	v := &incidents.GetPayload{}
	v.ID = id

	return v, nil
}

// BuildReviewPayload builds the payload for the incidents review endpoint from
// CLI flags.
func BuildReviewPayload(incidentsReviewBody string, incidentsReviewID string) (*incidents.ReviewPayload, error) {
	var err error
	var body ReviewRequestBody
	{
		err = json.Unmarshal([]byte(incidentsReviewBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"decision\": \"false_alarm\",\n      \"notes\": \"Ad earum.\",\n      \"reviewed_by\": \"Natus eum qui quidem distinctio.\"\n   }'")
		}
		if !(body.Decision == "confirmed" || body.Decision == "false_alarm" || body.Decision == "reviewed") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.decision", body.Decision, []any{"confirmed", "false_alarm", "reviewed"}))
		}
		if err != nil {
			return nil, err
		}
	}
	var id string
	{
		id = incidentsReviewID
	}
	v := &incidents.ReviewPayload{
		Decision:   body.Decision,
		ReviewedBy: body.ReviewedBy,
		Notes:      body.Notes,
	}
	v.ID = id

	return v, nil
}

// BuildClosePayload builds the payload for the incidents close endpoint from
// CLI flags.
func BuildClosePayload(incidentsCloseID string) (*incidents.ClosePayload, error) {
	var id string
	{
		id = incidentsCloseID
	}
	v := &incidents.ClosePayload{}
	v.ID = id

	return v, nil
}
