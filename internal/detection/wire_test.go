package detection

import (
	"bytes"
	"testing"
)

// TestFrameRequestRoundTrip verifies the request codec survives a
// marshal/unmarshal cycle with every field set.
func TestFrameRequestRoundTrip(t *testing.T) {
	in := &FrameRequest{
		CameraID:      "cam-entrance",
		FrameSeq:      42,
		TimestampMs:   1723000000123,
		JpegData:      []byte{0xff, 0xd8, 0xff, 0xe0, 0x00},
		ConfThreshold: 0.55,
	}

	var out FrameRequest
	if err := out.unmarshal(in.marshal()); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if out.CameraID != in.CameraID {
		t.Errorf("CameraID mismatch: %q != %q", out.CameraID, in.CameraID)
	}
	if out.FrameSeq != in.FrameSeq {
		t.Errorf("FrameSeq mismatch: %d != %d", out.FrameSeq, in.FrameSeq)
	}
	if out.TimestampMs != in.TimestampMs {
		t.Errorf("TimestampMs mismatch: %d != %d", out.TimestampMs, in.TimestampMs)
	}
	if !bytes.Equal(out.JpegData, in.JpegData) {
		t.Errorf("JpegData mismatch: %v != %v", out.JpegData, in.JpegData)
	}
	if out.ConfThreshold != in.ConfThreshold {
		t.Errorf("ConfThreshold mismatch: %f != %f", out.ConfThreshold, in.ConfThreshold)
	}
}

// TestDetectionResponseRoundTrip verifies nested detections survive the codec.
func TestDetectionResponseRoundTrip(t *testing.T) {
	in := &DetectionResponse{
		CameraID: "cam-lobby",
		FrameSeq: 7,
		Detections: []WireDetection{
			{ClassName: "pistol", Confidence: 0.92, X1: 10, Y1: 20, X2: 110, Y2: 220},
			{ClassName: "knife", Confidence: 0.61, X1: 300, Y1: 40, X2: 340, Y2: 90},
		},
		ModelMs: 38.5,
	}

	var out DetectionResponse
	if err := out.unmarshal(in.marshal()); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if out.CameraID != in.CameraID || out.FrameSeq != in.FrameSeq {
		t.Errorf("Header mismatch: %+v", out)
	}
	if len(out.Detections) != 2 {
		t.Fatalf("Expected 2 detections, got %d", len(out.Detections))
	}
	for i := range in.Detections {
		if out.Detections[i] != in.Detections[i] {
			t.Errorf("Detection %d mismatch: %+v != %+v", i, out.Detections[i], in.Detections[i])
		}
	}
	if out.ModelMs != in.ModelMs {
		t.Errorf("ModelMs mismatch: %f != %f", out.ModelMs, in.ModelMs)
	}
}

// TestDetectionResponseError verifies a server-side error message round-trips.
func TestDetectionResponseError(t *testing.T) {
	in := &DetectionResponse{CameraID: "cam-1", FrameSeq: 1, Error: "model overloaded"}

	var out DetectionResponse
	if err := out.unmarshal(in.marshal()); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.Error != in.Error {
		t.Errorf("Error mismatch: %q != %q", out.Error, in.Error)
	}
	if len(out.Detections) != 0 {
		t.Errorf("Expected no detections, got %d", len(out.Detections))
	}
}

// TestHealthResponseRoundTrip covers both readiness states.
func TestHealthResponseRoundTrip(t *testing.T) {
	for _, in := range []*HealthResponse{
		{Ready: true, Model: "weapons-v3"},
		{Ready: false},
	} {
		var out HealthResponse
		if err := out.unmarshal(in.marshal()); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if out.Ready != in.Ready || out.Model != in.Model {
			t.Errorf("Mismatch: %+v != %+v", out, in)
		}
	}
}

// TestWireUnknownFieldSkipped verifies unknown fields from a newer server
// are ignored instead of failing the parse.
func TestWireUnknownFieldSkipped(t *testing.T) {
	in := &DetectionResponse{CameraID: "cam-1", FrameSeq: 3}
	data := in.marshal()
	// Field 99, varint 1: unknown to this client.
	data = append(data, 0x98, 0x06, 0x01)

	var out DetectionResponse
	if err := out.unmarshal(data); err != nil {
		t.Fatalf("Unmarshal with unknown field failed: %v", err)
	}
	if out.CameraID != "cam-1" || out.FrameSeq != 3 {
		t.Errorf("Known fields corrupted: %+v", out)
	}
}
