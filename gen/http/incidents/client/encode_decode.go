// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents HTTP client encoders and decoders
//
// Command:
// $ goa gen vigil/design

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	incidents "vigil/gen/incidents"

	goahttp "goa.design/goa/v3/http"
)

// BuildListRequest instantiates a HTTP request object with method and path set
// to call the "incidents" service "list" endpoint
func (c *Client) BuildListRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ListIncidentsPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("incidents", "list", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeListRequest returns an encoder for requests sent to the incidents list
// server.
func EncodeListRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*incidents.ListPayload)
		if !ok {
			return goahttp.ErrInvalidType("incidents", "list", "*incidents.ListPayload", v)
		}
		values := req.URL.Query()
		if p.Status != nil {
			values.Add("status", *p.Status)
		}
		if p.CameraID != nil {
			values.Add("camera_id", *p.CameraID)
		}
		values.Add("page", fmt.Sprintf("%v", p.Page))
		values.Add("page_size", fmt.Sprintf("%v", p.PageSize))
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeListResponse returns a decoder for responses returned by the incidents
// list endpoint. restoreBody controls whether the response body should be
// restored after having been read.
func DecodeListResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ListResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "list", err)
			}
			err = ValidateListResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "list", err)
			}
			res := NewListIncidentPageOK(&body)
			return res, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("incidents", "list", resp.StatusCode, string(body))
		}
	}
}

// BuildGetRequest instantiates a HTTP request object with method and path set
// to call the "incidents" service "get" endpoint
func (c *Client) BuildGetRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		id string
	)
	{
		p, ok := v.(*incidents.GetPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("incidents", "get", "*incidents.GetPayload", v)
		}
		id = p.ID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: GetIncidentsPath(id)}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("incidents", "get", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeGetResponse returns a decoder for responses returned by the incidents
// get endpoint. restoreBody controls whether the response body should be
// restored after having been read.
// DecodeGetResponse may return the following errors:
//   - "not_found" (type *incidents.NotFoundError): http.StatusNotFound
//   - error: internal error
func DecodeGetResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body GetResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "get", err)
			}
			err = ValidateGetResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "get", err)
			}
			res := NewGetIncidentDetailOK(&body)
			return res, nil
		case http.StatusNotFound:
			var (
				body GetNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "get", err)
			}
			err = ValidateGetNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "get", err)
			}
			return nil, NewGetNotFound(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("incidents", "get", resp.StatusCode, string(body))
		}
	}
}

// BuildReviewRequest instantiates a HTTP request object with method and path
// set to call the "incidents" service "review" endpoint
func (c *Client) BuildReviewRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		id string
	)
	{
		p, ok := v.(*incidents.ReviewPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("incidents", "review", "*incidents.ReviewPayload", v)
		}
		id = p.ID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ReviewIncidentsPath(id)}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("incidents", "review", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeReviewRequest returns an encoder for requests sent to the incidents
// review server.
func EncodeReviewRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*incidents.ReviewPayload)
		if !ok {
			return goahttp.ErrInvalidType("incidents", "review", "*incidents.ReviewPayload", v)
		}
		body := NewReviewRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("incidents", "review", err)
		}
		return nil
	}
}

// DecodeReviewResponse returns a decoder for responses returned by the
// incidents review endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeReviewResponse may return the following errors:
//   - "bad_request" (type *incidents.BadRequestError): http.StatusBadRequest
//   - "not_found" (type *incidents.NotFoundError): http.StatusNotFound
//   - error: internal error
func DecodeReviewResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ReviewResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "review", err)
			}
			err = ValidateReviewResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "review", err)
			}
			res := NewReviewIncidentOK(&body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body ReviewBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "review", err)
			}
			err = ValidateReviewBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "review", err)
			}
			return nil, NewReviewBadRequest(&body)
		case http.StatusNotFound:
			var (
				body ReviewNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "review", err)
			}
			err = ValidateReviewNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "review", err)
			}
			return nil, NewReviewNotFound(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("incidents", "review", resp.StatusCode, string(body))
		}
	}
}

// BuildCloseRequest instantiates a HTTP request object with method and path
// set to call the "incidents" service "close" endpoint
func (c *Client) BuildCloseRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		id string
	)
	{
		p, ok := v.(*incidents.ClosePayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("incidents", "close", "*incidents.ClosePayload", v)
		}
		id = p.ID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: CloseIncidentsPath(id)}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("incidents", "close", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeCloseResponse returns a decoder for responses returned by the
// incidents close endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeCloseResponse may return the following errors:
//   - "not_found" (type *incidents.NotFoundError): http.StatusNotFound
//   - error: internal error
func DecodeCloseResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body CloseResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "close", err)
			}
			err = ValidateCloseResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "close", err)
			}
			res := NewCloseIncidentOK(&body)
			return res, nil
		case http.StatusNotFound:
			var (
				body CloseNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "close", err)
			}
			err = ValidateCloseNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "close", err)
			}
			return nil, NewCloseNotFound(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("incidents", "close", resp.StatusCode, string(body))
		}
	}
}

// BuildStatsRequest instantiates a HTTP request object with method and path
// set to call the "incidents" service "stats" endpoint
func (c *Client) BuildStatsRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: StatsIncidentsPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("incidents", "stats", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeStatsResponse returns a decoder for responses returned by the
// incidents stats endpoint. restoreBody controls whether the response body
// should be restored after having been read.
func DecodeStatsResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body StatsResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("incidents", "stats", err)
			}
			err = ValidateStatsResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("incidents", "stats", err)
			}
			res := NewStatsIncidentCountersOK(&body)
			return res, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("incidents", "stats", resp.StatusCode, string(body))
		}
	}
}

// unmarshalIncidentResponseBodyToIncidentsIncident builds a value of type
// *incidents.Incident from a value of type *IncidentResponseBody.
func unmarshalIncidentResponseBodyToIncidentsIncident(v *IncidentResponseBody) *incidents.Incident {
	res := &incidents.Incident{
		ID:              *v.ID,
		CameraID:        *v.CameraID,
		CameraName:      *v.CameraName,
		Location:        v.Location,
		WeaponType:      *v.WeaponType,
		Severity:        v.Severity,
		MaxConfidence:   *v.MaxConfidence,
		AvgConfidence:   *v.AvgConfidence,
		DetectionCount:  *v.DetectionCount,
		AlertCount:      *v.AlertCount,
		BestSnapshot:    v.BestSnapshot,
		StartedAt:       *v.StartedAt,
		LastDetectionAt: *v.LastDetectionAt,
		EndedAt:         v.EndedAt,
		Status:          *v.Status,
		ReviewedBy:      v.ReviewedBy,
		ReviewedAt:      v.ReviewedAt,
		Notes:           v.Notes,
	}

	return res
}

// unmarshalAlertResponseBodyToIncidentsAlert builds a value of type
// *incidents.Alert from a value of type *AlertResponseBody.
func unmarshalAlertResponseBodyToIncidentsAlert(v *AlertResponseBody) *incidents.Alert {
	res := &incidents.Alert{
		ID:         *v.ID,
		WeaponType: *v.WeaponType,
		Confidence: *v.Confidence,
		Severity:   v.Severity,
		Snapshot:   v.Snapshot,
		Status:     *v.Status,
		Timestamp:  *v.Timestamp,
	}
	if v.Bbox != nil {
		res.Bbox = unmarshalBoundingBoxResponseBodyToIncidentsBoundingBox(v.Bbox)
	}

	return res
}

// unmarshalBoundingBoxResponseBodyToIncidentsBoundingBox builds a value of
// type *incidents.BoundingBox from a value of type *BoundingBoxResponseBody.
func unmarshalBoundingBoxResponseBodyToIncidentsBoundingBox(v *BoundingBoxResponseBody) *incidents.BoundingBox {
	if v == nil {
		return nil
	}
	res := &incidents.BoundingBox{
		X1: *v.X1,
		Y1: *v.Y1,
		X2: *v.X2,
		Y2: *v.Y2,
	}

	return res
}
