package detection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	xdraw "golang.org/x/image/draw"

	"vigil/internal/pipeline"
)

const (
	methodDetectStream = "/vigil.detection.v1.DetectionService/DetectStream"
	methodHealthCheck  = "/vigil.detection.v1.DetectionService/HealthCheck"
)

// ErrNotReady is returned while the inference server has not reported a
// loaded model. Callers treat it as a per-frame detector failure, not a
// crash condition.
var ErrNotReady = errors.New("detection: model not ready")

var detectStreamDesc = &grpc.StreamDesc{
	StreamName:    "DetectStream",
	ServerStreams: true,
	ClientStreams: true,
}

// GRPCDetector talks to the external weapon-detection model over a
// bidirectional gRPC stream. Responses are matched to in-flight requests by
// (camera, frame sequence) so multiple workers can share one stream.
type GRPCDetector struct {
	endpoint string
	timeout  time.Duration
	conn     *grpc.ClientConn

	streamMu     sync.Mutex
	sendMu       sync.Mutex
	stream       grpc.ClientStream
	streamCtx    context.Context
	streamCancel context.CancelFunc

	pendingMu sync.Mutex
	pending   map[pendingKey]chan *DetectionResponse

	healthMu   sync.RWMutex
	healthy    bool
	lastHealth time.Time

	wg sync.WaitGroup
}

type pendingKey struct {
	cameraID string
	seq      uint64
}

// Config holds configuration for the gRPC detector
type Config struct {
	Endpoint       string
	RequestTimeout time.Duration
}

// NewGRPCDetector connects to the inference server
func NewGRPCDetector(config Config) (*GRPCDetector, error) {
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	gd := &GRPCDetector{
		endpoint: config.Endpoint,
		timeout:  timeout,
		pending:  make(map[pendingKey]chan *DetectionResponse),
	}

	if err := gd.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to detection service: %w", err)
	}

	return gd, nil
}

// connect establishes the gRPC connection
func (gd *GRPCDetector) connect() error {
	// Keepalive detects dead connections quickly
	kacp := keepalive.ClientParameters{
		Time:                10 * time.Second,
		Timeout:             5 * time.Second,
		PermitWithoutStream: true,
	}

	conn, err := grpc.NewClient(gd.endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	gd.conn = conn
	log.Printf("[Detector] Connected to %s", gd.endpoint)
	return nil
}

// Ready reports whether the inference server has a loaded model. The
// answer is cached for 30 seconds to keep the hot path cheap.
func (gd *GRPCDetector) Ready() bool {
	gd.healthMu.RLock()
	if time.Since(gd.lastHealth) < 30*time.Second && gd.healthy {
		gd.healthMu.RUnlock()
		return true
	}
	gd.healthMu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var resp HealthResponse
	err := gd.conn.Invoke(ctx, methodHealthCheck, &HealthRequest{}, &resp, grpc.ForceCodec(wireCodec{}))

	gd.healthMu.Lock()
	defer gd.healthMu.Unlock()

	if err != nil {
		gd.healthy = false
		return false
	}

	gd.healthy = resp.Ready
	gd.lastHealth = time.Now()
	return gd.healthy
}

// startStream initializes the bidirectional streaming RPC
func (gd *GRPCDetector) startStream() error {
	gd.streamMu.Lock()
	defer gd.streamMu.Unlock()

	if gd.stream != nil {
		return nil
	}

	gd.streamCtx, gd.streamCancel = context.WithCancel(context.Background())

	stream, err := gd.conn.NewStream(gd.streamCtx, detectStreamDesc, methodDetectStream, grpc.ForceCodec(wireCodec{}))
	if err != nil {
		gd.streamCancel()
		return fmt.Errorf("failed to start stream: %w", err)
	}

	gd.stream = stream
	gd.wg.Add(1)
	go gd.recvLoop(stream)

	log.Printf("[Detector] Stream started")
	return nil
}

// recvLoop dispatches responses to the matching in-flight request
func (gd *GRPCDetector) recvLoop(stream grpc.ClientStream) {
	defer gd.wg.Done()

	for {
		var resp DetectionResponse
		if err := stream.RecvMsg(&resp); err != nil {
			log.Printf("[Detector] Recv error: %v", err)
			gd.resetStream()
			return
		}

		gd.pendingMu.Lock()
		ch, ok := gd.pending[pendingKey{cameraID: resp.CameraID, seq: resp.FrameSeq}]
		gd.pendingMu.Unlock()

		if !ok {
			continue
		}
		select {
		case ch <- &resp:
		default:
		}
	}
}

// resetStream cleans up so the next Detect call reconnects
func (gd *GRPCDetector) resetStream() {
	gd.streamMu.Lock()
	defer gd.streamMu.Unlock()

	if gd.streamCancel != nil {
		gd.streamCancel()
	}
	gd.stream = nil

	gd.healthMu.Lock()
	gd.healthy = false
	gd.healthMu.Unlock()
}

// Detect runs one detection pass. The frame is cropped to the camera's ROI
// and downscaled by its detection scale before transmission; returned boxes
// are mapped back to source-frame coordinates.
func (gd *GRPCDetector) Detect(ctx context.Context, frame *pipeline.FrameData, cfg *pipeline.EffectiveConfig) ([]pipeline.Detection, error) {
	if !gd.Ready() {
		return nil, ErrNotReady
	}
	if err := gd.startStream(); err != nil {
		return nil, err
	}

	threshold := float32(0.5)
	if cfg != nil && cfg.ConfidenceThreshold > 0 {
		threshold = cfg.ConfidenceThreshold
	}

	jpegData, mapper, err := prepareFrame(frame, cfg)
	if err != nil {
		return nil, fmt.Errorf("frame preparation failed: %w", err)
	}

	req := &FrameRequest{
		CameraID:      frame.CameraID,
		FrameSeq:      frame.Seq,
		TimestampMs:   frame.Timestamp.UnixMilli(),
		JpegData:      jpegData,
		ConfThreshold: threshold,
	}

	key := pendingKey{cameraID: frame.CameraID, seq: frame.Seq}
	ch := make(chan *DetectionResponse, 1)

	gd.pendingMu.Lock()
	gd.pending[key] = ch
	gd.pendingMu.Unlock()
	defer func() {
		gd.pendingMu.Lock()
		delete(gd.pending, key)
		gd.pendingMu.Unlock()
	}()

	gd.streamMu.Lock()
	stream := gd.stream
	gd.streamMu.Unlock()
	if stream == nil {
		return nil, fmt.Errorf("detection stream unavailable")
	}

	gd.sendMu.Lock()
	err = stream.SendMsg(req)
	gd.sendMu.Unlock()
	if err != nil {
		gd.resetStream()
		return nil, fmt.Errorf("send failed: %w", err)
	}

	select {
	case resp := <-ch:
		if resp.Error != "" {
			return nil, fmt.Errorf("detector error: %s", resp.Error)
		}
		return gd.convert(resp, mapper, threshold), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(gd.timeout):
		return nil, fmt.Errorf("detection timeout after %s", gd.timeout)
	}
}

// convert maps wire detections to pipeline detections in source coordinates
func (gd *GRPCDetector) convert(resp *DetectionResponse, mapper coordMapper, threshold float32) []pipeline.Detection {
	detections := make([]pipeline.Detection, 0, len(resp.Detections))
	for _, det := range resp.Detections {
		if det.Confidence < threshold {
			continue
		}
		detections = append(detections, pipeline.Detection{
			Class:      det.ClassName,
			Confidence: det.Confidence,
			BBox: pipeline.BBox{
				X1: mapper.toSourceX(det.X1),
				Y1: mapper.toSourceY(det.Y1),
				X2: mapper.toSourceX(det.X2),
				Y2: mapper.toSourceY(det.Y2),
			},
			Severity: pipeline.SeverityForClass(det.ClassName),
			Kind:     "weapon",
		})
	}
	return detections
}

// Close tears down the stream and connection
func (gd *GRPCDetector) Close() error {
	gd.resetStream()
	gd.wg.Wait()
	if gd.conn != nil {
		return gd.conn.Close()
	}
	return nil
}

// coordMapper converts detector coordinates (ROI-cropped, scaled frame)
// back to source-frame coordinates
type coordMapper struct {
	scale      float32
	offX, offY float32
}

func (m coordMapper) toSourceX(x float32) float32 { return x/m.scale + m.offX }
func (m coordMapper) toSourceY(y float32) float32 { return y/m.scale + m.offY }

// prepareFrame applies the camera's ROI crop and detection-time downscale.
// Returns the JPEG bytes to transmit and the mapper back to source coords.
func prepareFrame(frame *pipeline.FrameData, cfg *pipeline.EffectiveConfig) ([]byte, coordMapper, error) {
	identity := coordMapper{scale: 1}

	if cfg == nil || (cfg.ROI == nil && (cfg.DetectionScale == 0 || cfg.DetectionScale == 1)) {
		return frame.Data, identity, nil
	}

	img, err := jpeg.Decode(bytes.NewReader(frame.Data))
	if err != nil {
		return nil, identity, err
	}

	bounds := img.Bounds()
	mapper := identity

	if cfg.ROI != nil {
		crop := image.Rect(cfg.ROI.X, cfg.ROI.Y, cfg.ROI.X+cfg.ROI.Width, cfg.ROI.Y+cfg.ROI.Height).Intersect(bounds)
		if crop.Empty() {
			return frame.Data, identity, nil
		}
		mapper.offX = float32(crop.Min.X)
		mapper.offY = float32(crop.Min.Y)

		cropped := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
		xdraw.Draw(cropped, cropped.Bounds(), img, crop.Min, xdraw.Src)
		img = cropped
		bounds = cropped.Bounds()
	}

	scale := cfg.DetectionScale
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	mapper.scale = scale

	if scale != 1 {
		w := int(float32(bounds.Dx()) * scale)
		h := int(float32(bounds.Dy()) * scale)
		if w < 1 || h < 1 {
			return frame.Data, identity, nil
		}
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, identity, err
	}
	return buf.Bytes(), mapper, nil
}

var _ pipeline.Detector = (*GRPCDetector)(nil)
