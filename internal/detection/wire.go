package detection

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Hand-rolled protobuf wire codec for the detection service messages.
// Field numbers mirror api/detection/v1/detection.proto; the low-level
// protowire encoding keeps the client wire-compatible with the inference
// server without a protoc step in the build.

// wireMessage is implemented by all detection service messages
type wireMessage interface {
	marshal() []byte
	unmarshal(data []byte) error
}

// FrameRequest asks the inference server to run detection on one frame
type FrameRequest struct {
	CameraID      string
	FrameSeq      uint64
	TimestampMs   int64
	JpegData      []byte
	ConfThreshold float32
}

func (m *FrameRequest) marshal() []byte {
	var b []byte
	if m.CameraID != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.CameraID)
	}
	if m.FrameSeq != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, m.FrameSeq)
	}
	if m.TimestampMs != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.TimestampMs))
	}
	if len(m.JpegData) > 0 {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, m.JpegData)
	}
	if m.ConfThreshold != 0 {
		b = protowire.AppendTag(b, 5, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(m.ConfThreshold))
	}
	return b
}

func (m *FrameRequest) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.CameraID = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.FrameSeq = v
			data = data[n:]
		case 3:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.TimestampMs = int64(v)
			data = data[n:]
		case 4:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.JpegData = append([]byte(nil), v...)
			data = data[n:]
		case 5:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.ConfThreshold = math.Float32frombits(v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// WireDetection is one detected object in server coordinates
type WireDetection struct {
	ClassName  string
	Confidence float32
	X1, Y1     float32
	X2, Y2     float32
}

func (m *WireDetection) marshal() []byte {
	var b []byte
	if m.ClassName != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.ClassName)
	}
	appendF32 := func(b []byte, num protowire.Number, v float32) []byte {
		if v == 0 {
			return b
		}
		b = protowire.AppendTag(b, num, protowire.Fixed32Type)
		return protowire.AppendFixed32(b, math.Float32bits(v))
	}
	b = appendF32(b, 2, m.Confidence)
	b = appendF32(b, 3, m.X1)
	b = appendF32(b, 4, m.Y1)
	b = appendF32(b, 5, m.X2)
	b = appendF32(b, 6, m.Y2)
	return b
}

func (m *WireDetection) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.ClassName = v
			data = data[n:]
		case 2, 3, 4, 5, 6:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f := math.Float32frombits(v)
			switch num {
			case 2:
				m.Confidence = f
			case 3:
				m.X1 = f
			case 4:
				m.Y1 = f
			case 5:
				m.X2 = f
			case 6:
				m.Y2 = f
			}
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// DetectionResponse carries the detections for one frame
type DetectionResponse struct {
	CameraID   string
	FrameSeq   uint64
	Detections []WireDetection
	ModelMs    float32
	Error      string
}

func (m *DetectionResponse) marshal() []byte {
	var b []byte
	if m.CameraID != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.CameraID)
	}
	if m.FrameSeq != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, m.FrameSeq)
	}
	for i := range m.Detections {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Detections[i].marshal())
	}
	if m.ModelMs != 0 {
		b = protowire.AppendTag(b, 4, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(m.ModelMs))
	}
	if m.Error != "" {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendString(b, m.Error)
	}
	return b
}

func (m *DetectionResponse) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.CameraID = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.FrameSeq = v
			data = data[n:]
		case 3:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			var det WireDetection
			if err := det.unmarshal(v); err != nil {
				return err
			}
			m.Detections = append(m.Detections, det)
			data = data[n:]
		case 4:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.ModelMs = math.Float32frombits(v)
			data = data[n:]
		case 5:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Error = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// HealthRequest has no fields
type HealthRequest struct{}

func (m *HealthRequest) marshal() []byte             { return nil }
func (m *HealthRequest) unmarshal(data []byte) error { return nil }

// HealthResponse reports model readiness
type HealthResponse struct {
	Ready bool
	Model string
}

func (m *HealthResponse) marshal() []byte {
	var b []byte
	if m.Ready {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	if m.Model != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, m.Model)
	}
	return b
}

func (m *HealthResponse) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Ready = v != 0
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Model = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// wireCodec plugs the hand-rolled messages into grpc via ForceCodec
type wireCodec struct{}

func (wireCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("detection: cannot marshal %T", v)
	}
	return msg.marshal(), nil
}

func (wireCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("detection: cannot unmarshal into %T", v)
	}
	return msg.unmarshal(data)
}

func (wireCodec) Name() string { return "proto" }
