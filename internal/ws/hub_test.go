package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialTestClient connects a real websocket client registered on the hub
// under cameraID and waits for the registration to land.
func dialTestClient(t *testing.T, hub *Hub, cameraID string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade failed: %v", err)
			return
		}
		hub.Register(cameraID, conn)
		<-done
		conn.Close()
	}))

	before := hub.ClientCount()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		srv.Close()
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		close(done)
		srv.Close()
	})

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == before && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() == before {
		t.Fatal("Client never registered")
	}
	return conn
}

// TestHubConcurrentBroadcasts verifies that broadcasts from many goroutines
// never interleave on one connection: detection workers and the pipeline
// heartbeat publish concurrently, and a write collision would tear down the
// process, not just the message.
func TestHubConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub, "")

	// The firehose subscriber sees per-camera and global broadcasts alike.
	const writers = 8
	const perWriter = 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				msg := &HeartbeatMessage{Type: TypeHeartbeat, Timestamp: time.Now().UTC()}
				if id%2 == 0 {
					hub.Send("cam-1", msg)
				} else {
					hub.Send("", msg)
				}
			}
		}(i)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for received := 0; received < writers*perWriter; received++ {
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("Read failed after %d messages: %v", received, err)
		}
	}
	wg.Wait()
}
