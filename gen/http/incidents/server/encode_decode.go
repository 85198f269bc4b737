// Code generated by goa v3.24.1, DO NOT EDIT.
//
// incidents HTTP server encoders and decoders
//
// Command:
// $ goa gen vigil/design

package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	incidents "vigil/gen/incidents"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// EncodeListResponse returns an encoder for responses returned by the
// incidents list endpoint.
func EncodeListResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*incidents.IncidentPage)
		enc := encoder(ctx, w)
		body := NewListResponseBody(res)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// DecodeListRequest returns a decoder for requests sent to the incidents list
// endpoint.
func DecodeListRequest(mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) func(*http.Request) (*incidents.ListPayload, error) {
	return func(r *http.Request) (*incidents.ListPayload, error) {
		var (
			status   *string
			cameraID *string
			page     int
			pageSize int
			err      error
		)
		qp := r.URL.Query()
		statusRaw := qp.Get("status")
		if statusRaw != "" {
			status = &statusRaw
		}
		if status != nil {
			if !(*status == "active" || *status == "closed" || *status == "reviewed" || *status == "confirmed" || *status == "false_alarm") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("status", *status, []any{"active", "closed", "reviewed", "confirmed", "false_alarm"}))
			}
		}
		cameraIDRaw := qp.Get("camera_id")
		if cameraIDRaw != "" {
			cameraID = &cameraIDRaw
		}
		{
			pageRaw := qp.Get("page")
			if pageRaw == "" {
				page = 1
			} else {
				v, err2 := strconv.ParseInt(pageRaw, 10, strconv.IntSize)
				if err2 != nil {
					err = goa.MergeErrors(err, goa.InvalidFieldTypeError("page", pageRaw, "integer"))
				}
				page = int(v)
			}
		}
		if page < 1 {
			err = goa.MergeErrors(err, goa.InvalidRangeError("page", page, 1, true))
		}
		{
			pageSizeRaw := qp.Get("page_size")
			if pageSizeRaw == "" {
				pageSize = 20
			} else {
				v, err2 := strconv.ParseInt(pageSizeRaw, 10, strconv.IntSize)
				if err2 != nil {
					err = goa.MergeErrors(err, goa.InvalidFieldTypeError("page_size", pageSizeRaw, "integer"))
				}
				pageSize = int(v)
			}
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
		payload := NewListPayload(status, cameraID, page, pageSize)

		return payload, nil
	}
}

// EncodeGetResponse returns an encoder for responses returned by the incidents
// get endpoint.
func EncodeGetResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*incidents.IncidentDetail)
		enc := encoder(ctx, w)
		body := NewGetResponseBody(res)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// DecodeGetRequest returns a decoder for requests sent to the incidents get
// endpoint.
func DecodeGetRequest(mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) func(*http.Request) (*incidents.GetPayload, error) {
	return func(r *http.Request) (*incidents.GetPayload, error) {
		var (
			id string

			params = mux.Vars(r)
		)
		id = params["id"]
		payload := NewGetPayload(id)

		return payload, nil
	}
}

// EncodeGetError returns an encoder for errors returned by the get incidents
// endpoint.
func EncodeGetError(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder, formatter func(ctx context.Context, err error) goahttp.Statuser) func(context.Context, http.ResponseWriter, error) error {
	encodeError := goahttp.ErrorEncoder(encoder, formatter)
	return func(ctx context.Context, w http.ResponseWriter, v error) error {
		var en goa.GoaErrorNamer
		if !errors.As(v, &en) {
			return encodeError(ctx, w, v)
		}
		switch en.GoaErrorName() {
		case "not_found":
			var res *incidents.NotFoundError
			errors.As(v, &res)
			enc := encoder(ctx, w)
			var body any
			if formatter != nil {
				body = formatter(ctx, res)
			} else {
				body = NewGetNotFoundResponseBody(res)
			}
			w.Header().Set("goa-error", res.GoaErrorName())
			w.WriteHeader(http.StatusNotFound)
			return enc.Encode(body)
		default:
			return encodeError(ctx, w, v)
		}
	}
}

// EncodeReviewResponse returns an encoder for responses returned by the
// incidents review endpoint.
func EncodeReviewResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*incidents.Incident)
		enc := encoder(ctx, w)
		body := NewReviewResponseBody(res)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// DecodeReviewRequest returns a decoder for requests sent to the incidents
// review endpoint.
func DecodeReviewRequest(mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) func(*http.Request) (*incidents.ReviewPayload, error) {
	return func(r *http.Request) (*incidents.ReviewPayload, error) {
		var (
			body ReviewRequestBody
			err  error
		)
		err = decoder(r).Decode(&body)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, goa.MissingPayloadError()
			}
			var gerr *goa.ServiceError
			if errors.As(err, &gerr) {
				return nil, gerr
			}
			return nil, goa.DecodePayloadError(err.Error())
		}
		err = ValidateReviewRequestBody(&body)
		if err != nil {
			return nil, err
		}

		var (
			id string

			params = mux.Vars(r)
		)
		id = params["id"]
		payload := NewReviewPayload(&body, id)

		return payload, nil
	}
}

// EncodeReviewError returns an encoder for errors returned by the review
// incidents endpoint.
func EncodeReviewError(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder, formatter func(ctx context.Context, err error) goahttp.Statuser) func(context.Context, http.ResponseWriter, error) error {
	encodeError := goahttp.ErrorEncoder(encoder, formatter)
	return func(ctx context.Context, w http.ResponseWriter, v error) error {
		var en goa.GoaErrorNamer
		if !errors.As(v, &en) {
			return encodeError(ctx, w, v)
		}
		switch en.GoaErrorName() {
		case "bad_request":
			var res *incidents.BadRequestError
			errors.As(v, &res)
			enc := encoder(ctx, w)
			var body any
			if formatter != nil {
				body = formatter(ctx, res)
			} else {
				body = NewReviewBadRequestResponseBody(res)
			}
			w.Header().Set("goa-error", res.GoaErrorName())
			w.WriteHeader(http.StatusBadRequest)
			return enc.Encode(body)
		case "not_found":
			var res *incidents.NotFoundError
			errors.As(v, &res)
			enc := encoder(ctx, w)
			var body any
			if formatter != nil {
				body = formatter(ctx, res)
			} else {
				body = NewReviewNotFoundResponseBody(res)
			}
			w.Header().Set("goa-error", res.GoaErrorName())
			w.WriteHeader(http.StatusNotFound)
			return enc.Encode(body)
		default:
			return encodeError(ctx, w, v)
		}
	}
}

// EncodeCloseResponse returns an encoder for responses returned by the
// incidents close endpoint.
func EncodeCloseResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*incidents.Incident)
		enc := encoder(ctx, w)
		body := NewCloseResponseBody(res)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// DecodeCloseRequest returns a decoder for requests sent to the incidents
// close endpoint.
func DecodeCloseRequest(mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) func(*http.Request) (*incidents.ClosePayload, error) {
	return func(r *http.Request) (*incidents.ClosePayload, error) {
		var (
			id string

			params = mux.Vars(r)
		)
		id = params["id"]
		payload := NewClosePayload(id)

		return payload, nil
	}
}

// EncodeCloseError returns an encoder for errors returned by the close
// incidents endpoint.
func EncodeCloseError(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder, formatter func(ctx context.Context, err error) goahttp.Statuser) func(context.Context, http.ResponseWriter, error) error {
	encodeError := goahttp.ErrorEncoder(encoder, formatter)
	return func(ctx context.Context, w http.ResponseWriter, v error) error {
		var en goa.GoaErrorNamer
		if !errors.As(v, &en) {
			return encodeError(ctx, w, v)
		}
		switch en.GoaErrorName() {
		case "not_found":
			var res *incidents.NotFoundError
			errors.As(v, &res)
			enc := encoder(ctx, w)
			var body any
			if formatter != nil {
				body = formatter(ctx, res)
			} else {
				body = NewCloseNotFoundResponseBody(res)
			}
			w.Header().Set("goa-error", res.GoaErrorName())
			w.WriteHeader(http.StatusNotFound)
			return enc.Encode(body)
		default:
			return encodeError(ctx, w, v)
		}
	}
}

// EncodeStatsResponse returns an encoder for responses returned by the
// incidents stats endpoint.
func EncodeStatsResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*incidents.IncidentCounters)
		enc := encoder(ctx, w)
		body := NewStatsResponseBody(res)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// marshalIncidentsIncidentToIncidentResponseBody builds a value of type
// *IncidentResponseBody from a value of type *incidents.Incident.
func marshalIncidentsIncidentToIncidentResponseBody(v *incidents.Incident) *IncidentResponseBody {
	res := &IncidentResponseBody{
		ID:              v.ID,
		CameraID:        v.CameraID,
		CameraName:      v.CameraName,
		Location:        v.Location,
		WeaponType:      v.WeaponType,
		Severity:        v.Severity,
		MaxConfidence:   v.MaxConfidence,
		AvgConfidence:   v.AvgConfidence,
		DetectionCount:  v.DetectionCount,
		AlertCount:      v.AlertCount,
		BestSnapshot:    v.BestSnapshot,
		StartedAt:       v.StartedAt,
		LastDetectionAt: v.LastDetectionAt,
		EndedAt:         v.EndedAt,
		Status:          v.Status,
		ReviewedBy:      v.ReviewedBy,
		ReviewedAt:      v.ReviewedAt,
		Notes:           v.Notes,
	}

	return res
}

// marshalIncidentsAlertToAlertResponseBody builds a value of type
// *AlertResponseBody from a value of type *incidents.Alert.
func marshalIncidentsAlertToAlertResponseBody(v *incidents.Alert) *AlertResponseBody {
	res := &AlertResponseBody{
		ID:         v.ID,
		WeaponType: v.WeaponType,
		Confidence: v.Confidence,
		Severity:   v.Severity,
		Snapshot:   v.Snapshot,
		Status:     v.Status,
		Timestamp:  v.Timestamp,
	}
	if v.Bbox != nil {
		res.Bbox = marshalIncidentsBoundingBoxToBoundingBoxResponseBody(v.Bbox)
	}

	return res
}

// marshalIncidentsBoundingBoxToBoundingBoxResponseBody builds a value of type
// *BoundingBoxResponseBody from a value of type *incidents.BoundingBox.
func marshalIncidentsBoundingBoxToBoundingBoxResponseBody(v *incidents.BoundingBox) *BoundingBoxResponseBody {
	if v == nil {
		return nil
	}
	res := &BoundingBoxResponseBody{
		X1: v.X1,
		Y1: v.Y1,
		X2: v.X2,
		Y2: v.Y2,
	}

	return res
}
