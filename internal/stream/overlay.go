package stream

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/fogleman/gg"

	"vigil/internal/pipeline"
)

// Overlay renders detection boxes onto processed frames and feeds the
// annotated image to the stream hub. It plugs into the result router as a
// sink, so viewers see exactly what the detector saw.
type Overlay struct {
	hub *Hub
}

// NewOverlay creates an overlay sink publishing to hub
func NewOverlay(hub *Hub) *Overlay {
	return &Overlay{hub: hub}
}

// Name identifies the sink in logs
func (o *Overlay) Name() string {
	return "overlay"
}

// OnResult annotates the frame if it carries detections and publishes it
func (o *Overlay) OnResult(result *pipeline.DetectionResult) error {
	if len(result.ImageData) == 0 || result.Skipped {
		return nil
	}
	if len(result.Detections) == 0 {
		o.hub.Publish(result.CameraID, result.ImageData)
		return nil
	}

	annotated, err := o.render(result)
	if err != nil {
		// Fall back to the raw frame rather than dropping it.
		o.hub.Publish(result.CameraID, result.ImageData)
		return err
	}
	o.hub.Publish(result.CameraID, annotated)
	return nil
}

func (o *Overlay) render(result *pipeline.DetectionResult) ([]byte, error) {
	img, err := jpeg.Decode(bytes.NewReader(result.ImageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	dc := gg.NewContextForImage(img)

	for _, det := range result.Detections {
		r, g, b := severityColor(det.Severity)
		x := float64(det.BBox.X1)
		y := float64(det.BBox.Y1)
		w := float64(det.BBox.X2 - det.BBox.X1)
		h := float64(det.BBox.Y2 - det.BBox.Y1)

		dc.SetRGB(r, g, b)
		dc.SetLineWidth(3)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()

		label := fmt.Sprintf("%s %.0f%%", det.Class, det.Confidence*100)
		tw, th := dc.MeasureString(label)

		labelY := y - th - 6
		if labelY < 0 {
			labelY = y
		}
		dc.SetRGBA(0, 0, 0, 0.7)
		dc.DrawRectangle(x, labelY, tw+8, th+6)
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		dc.DrawString(label, x+4, labelY+th+1)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode annotated frame: %w", err)
	}
	return buf.Bytes(), nil
}

func severityColor(sev pipeline.Severity) (r, g, b float64) {
	switch sev {
	case pipeline.SeverityCritical:
		return 1, 0.1, 0.1
	case pipeline.SeverityHigh:
		return 1, 0.55, 0
	case pipeline.SeverityMedium:
		return 1, 0.85, 0
	default:
		return 0.7, 0.7, 0.7
	}
}

var _ pipeline.ResultSink = (*Overlay)(nil)
