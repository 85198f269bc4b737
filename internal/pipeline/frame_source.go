package pipeline

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// NewSource builds a frame source for a camera config. Network locators
// (rtsp, http) get an FFmpeg-backed stream source; anything else is treated
// as a looped MJPEG file. onLoop fires when a file source wraps to position
// zero and may be nil.
func NewSource(cfg *CameraConfig, onLoop func(loop uint64)) FrameSource {
	if strings.HasPrefix(cfg.Source, "rtsp://") ||
		strings.HasPrefix(cfg.Source, "http://") ||
		strings.HasPrefix(cfg.Source, "https://") {
		return NewStreamSource(cfg)
	}
	return NewFileSource(cfg, onLoop)
}

// StreamSource captures frames from a network camera through an FFmpeg
// pipe. Only the freshest frame is kept: a single-slot buffer is drained
// before each write, so a slow consumer reads the latest frame rather than
// a backlog.
type StreamSource struct {
	cameraID string
	url      string
	fps      int
	width    int
	height   int

	cmd      *exec.Cmd
	latest   chan *FrameData
	stopCh   chan struct{}
	stopOnce sync.Once
	frameSeq atomic.Uint64
	running  atomic.Bool
}

// NewStreamSource creates a stream source for a network camera
func NewStreamSource(cfg *CameraConfig) *StreamSource {
	return &StreamSource{
		cameraID: cfg.ID,
		url:      cfg.Source,
		fps:      cfg.CaptureFPS,
		latest:   make(chan *FrameData, 1),
		stopCh:   make(chan struct{}),
	}
}

// Open starts the FFmpeg process and the pump goroutine
func (s *StreamSource) Open() error {
	var args []string

	if strings.HasPrefix(s.url, "rtsp://") {
		args = []string{
			"-rtsp_transport", "tcp",
			"-fflags", "nobuffer",
			"-flags", "low_delay",
			"-i", s.url,
			"-f", "image2pipe",
			"-vcodec", "mjpeg",
			"-r", fmt.Sprintf("%d", s.fps),
			"-q:v", "5",
			"-",
		}
	} else {
		args = []string{
			"-fflags", "nobuffer",
			"-i", s.url,
			"-f", "image2pipe",
			"-vcodec", "mjpeg",
			"-r", fmt.Sprintf("%d", s.fps),
			"-q:v", "5",
			"-",
		}
	}

	s.cmd = exec.Command("ffmpeg", args...)

	stdout, err := s.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := s.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	// Consume stderr silently
	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
		}
	}()

	s.running.Store(true)
	go s.pump(stdout)

	log.Printf("[Source] Opened stream source for camera %s (%s)", s.cameraID, s.url)
	return nil
}

// pump extracts JPEG frames from the FFmpeg pipe and overwrites the
// single-slot buffer
func (s *StreamSource) pump(stdout interface{ Read([]byte) (int, error) }) {
	defer s.running.Store(false)

	frameBuffer := make([]byte, 0, 1024*1024)
	chunk := make([]byte, 8192)

	for {
		select {
		case <-s.stopCh:
			return
		default:
			n, err := stdout.Read(chunk)
			if err != nil {
				return
			}

			frameBuffer = append(frameBuffer, chunk[:n]...)

			for {
				data := extractJPEGFrame(&frameBuffer)
				if data == nil {
					break
				}
				s.offer(data)
			}
		}
	}
}

// offer replaces the buffered frame with a fresher one
func (s *StreamSource) offer(data []byte) {
	frame := &FrameData{
		CameraID:  s.cameraID,
		Data:      data,
		Seq:       s.frameSeq.Add(1),
		Timestamp: time.Now(),
		Width:     s.width,
		Height:    s.height,
	}

	// Drain the stale frame first so the reader always sees the latest
	select {
	case <-s.latest:
	default:
	}
	select {
	case s.latest <- frame:
	default:
	}
}

// Read blocks until a frame is available. A closed source returns
// ErrSourceClosed; a stalled pipe surfaces as ErrNoFrame so the reader loop
// can count consecutive failures.
func (s *StreamSource) Read() (*FrameData, error) {
	select {
	case frame := <-s.latest:
		return frame, nil
	case <-s.stopCh:
		return nil, ErrSourceClosed
	case <-time.After(5 * time.Second):
		if !s.running.Load() {
			return nil, ErrSourceClosed
		}
		return nil, ErrNoFrame
	}
}

// Close stops the pump and kills the FFmpeg process
func (s *StreamSource) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.cmd != nil && s.cmd.Process != nil {
			s.cmd.Process.Kill()
			s.cmd.Wait()
		}
	})
	return nil
}

// FileSource replays the JPEG frames of an MJPEG file at the configured
// rate, transparently restarting at position zero on end-of-file. Each
// restart invokes onLoop so downstream caches can be invalidated.
type FileSource struct {
	cameraID string
	path     string
	fps      int
	onLoop   func(loop uint64)

	frames   [][]byte
	pos      int
	loop     uint64
	ticker   *time.Ticker
	stopCh   chan struct{}
	stopOnce sync.Once
	frameSeq atomic.Uint64
	mu       sync.Mutex
}

// NewFileSource creates a looped file source
func NewFileSource(cfg *CameraConfig, onLoop func(loop uint64)) *FileSource {
	fps := cfg.CaptureFPS
	if fps <= 0 {
		fps = 15
	}
	return &FileSource{
		cameraID: cfg.ID,
		path:     cfg.Source,
		fps:      fps,
		onLoop:   onLoop,
		stopCh:   make(chan struct{}),
	}
}

// Open loads and indexes the file's JPEG frames
func (s *FileSource) Open() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	buffer := data
	for {
		frame := extractJPEGFrame(&buffer)
		if frame == nil {
			break
		}
		s.frames = append(s.frames, frame)
	}

	if len(s.frames) == 0 {
		return fmt.Errorf("no JPEG frames in %s", s.path)
	}

	s.ticker = time.NewTicker(time.Second / time.Duration(s.fps))
	log.Printf("[Source] Opened file source for camera %s (%d frames, %d fps)",
		s.cameraID, len(s.frames), s.fps)
	return nil
}

// Read returns the next frame at the configured pace, wrapping to the
// start of the file on exhaustion
func (s *FileSource) Read() (*FrameData, error) {
	select {
	case <-s.stopCh:
		return nil, ErrSourceClosed
	case <-s.ticker.C:
	}

	s.mu.Lock()
	if s.pos >= len(s.frames) {
		s.pos = 0
		s.loop++
		loop := s.loop
		s.mu.Unlock()
		if s.onLoop != nil {
			s.onLoop(loop)
		}
		s.mu.Lock()
	}
	data := s.frames[s.pos]
	s.pos++
	s.mu.Unlock()

	return &FrameData{
		CameraID:  s.cameraID,
		Data:      data,
		Seq:       s.frameSeq.Add(1),
		Timestamp: time.Now(),
	}, nil
}

// Close stops the replay ticker
func (s *FileSource) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.ticker != nil {
			s.ticker.Stop()
		}
	})
	return nil
}

// extractJPEGFrame extracts a complete JPEG frame from buffer
func extractJPEGFrame(buffer *[]byte) []byte {
	if len(*buffer) < 4 {
		return nil
	}

	// Find JPEG start marker (FFD8)
	startIdx := -1
	for i := 0; i < len(*buffer)-1; i++ {
		if (*buffer)[i] == 0xFF && (*buffer)[i+1] == 0xD8 {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return nil
	}

	// Find JPEG end marker (FFD9)
	endIdx := -1
	for i := startIdx + 2; i < len(*buffer)-1; i++ {
		if (*buffer)[i] == 0xFF && (*buffer)[i+1] == 0xD9 {
			endIdx = i + 2
			break
		}
	}
	if endIdx == -1 {
		return nil
	}

	frame := make([]byte, endIdx-startIdx)
	copy(frame, (*buffer)[startIdx:endIdx])
	*buffer = (*buffer)[endIdx:]

	return frame
}

var (
	_ FrameSource = (*StreamSource)(nil)
	_ FrameSource = (*FileSource)(nil)
)
