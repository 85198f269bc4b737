package stream

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
)

// Hub fans captured frames out to MJPEG viewers. Frames are pushed in by
// the capture pipeline; the hub never opens camera sources itself.
type Hub struct {
	mu      sync.RWMutex
	streams map[string]*liveStream
}

type liveStream struct {
	cameraID string

	clientsMu sync.RWMutex
	clients   map[chan []byte]bool

	frameMu      sync.RWMutex
	currentFrame []byte
}

// NewHub creates an empty stream hub
func NewHub() *Hub {
	return &Hub{streams: make(map[string]*liveStream)}
}

func (h *Hub) stream(cameraID string) *liveStream {
	h.mu.RLock()
	s := h.streams[cameraID]
	h.mu.RUnlock()
	if s != nil {
		return s
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if s = h.streams[cameraID]; s == nil {
		s = &liveStream{
			cameraID: cameraID,
			clients:  make(map[chan []byte]bool),
		}
		h.streams[cameraID] = s
	}
	return s
}

// Publish stores the latest frame for a camera and broadcasts it to all
// connected viewers. Slow viewers skip frames instead of blocking capture.
func (h *Hub) Publish(cameraID string, frame []byte) {
	if len(frame) == 0 {
		return
	}
	s := h.stream(cameraID)

	s.frameMu.Lock()
	s.currentFrame = frame
	s.frameMu.Unlock()

	s.clientsMu.RLock()
	for ch := range s.clients {
		select {
		case ch <- frame:
		default:
		}
	}
	s.clientsMu.RUnlock()
}

// Remove drops a camera's stream and disconnects its viewers
func (h *Hub) Remove(cameraID string) {
	h.mu.Lock()
	s := h.streams[cameraID]
	delete(h.streams, cameraID)
	h.mu.Unlock()

	if s == nil {
		return
	}
	s.clientsMu.Lock()
	for ch := range s.clients {
		close(ch)
		delete(s.clients, ch)
	}
	s.clientsMu.Unlock()
}

// ViewerCount returns the number of connected viewers for a camera
func (h *Hub) ViewerCount(cameraID string) int {
	h.mu.RLock()
	s := h.streams[cameraID]
	h.mu.RUnlock()
	if s == nil {
		return 0
	}
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// ServeStream handles MJPEG stream requests at /video/stream/{camera_id}
func (h *Hub) ServeStream(w http.ResponseWriter, r *http.Request) {
	cameraID := lastPathSegment(r.URL.Path)
	if cameraID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	s := h.stream(cameraID)

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	clientCh := make(chan []byte, 5)
	s.clientsMu.Lock()
	s.clients[clientCh] = true
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, clientCh)
		s.clientsMu.Unlock()
	}()

	log.Printf("[StreamHub] Viewer connected to camera %s", cameraID)

	for {
		select {
		case <-r.Context().Done():
			log.Printf("[StreamHub] Viewer disconnected from camera %s", cameraID)
			return
		case frame, ok := <-clientCh:
			if !ok {
				return
			}
			fmt.Fprintf(w, "--frame\r\n")
			fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
			fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(frame))
			w.Write(frame)
			fmt.Fprintf(w, "\r\n")
			flusher.Flush()
		}
	}
}

// ServeSnapshot serves the latest frame at /video/snapshot/{camera_id}
func (h *Hub) ServeSnapshot(w http.ResponseWriter, r *http.Request) {
	cameraID := lastPathSegment(r.URL.Path)
	if cameraID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	h.mu.RLock()
	s := h.streams[cameraID]
	h.mu.RUnlock()
	if s == nil {
		http.Error(w, fmt.Sprintf("Stream not found for camera %s", cameraID), http.StatusNotFound)
		return
	}

	s.frameMu.RLock()
	frame := s.currentFrame
	s.frameMu.RUnlock()
	if frame == nil {
		http.Error(w, "No frame available", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(frame)))
	w.Write(frame)
}

func lastPathSegment(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
