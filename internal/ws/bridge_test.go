package ws

import (
	"encoding/json"
	"testing"
	"time"

	"vigil/internal/pipeline"
)

// TestBridgeForwardsHeartbeat verifies that the periodic heartbeat published
// on the event bus reaches connected dashboards as a heartbeat frame.
func TestBridgeForwardsHeartbeat(t *testing.T) {
	hub := NewHub()
	bus := pipeline.NewEventBus()
	defer bus.Close()

	bridge := NewBridge(hub)
	bridge.Start(bus)
	defer bridge.Stop()

	conn := dialTestClient(t, hub, "")

	sent := time.Now().UTC().Truncate(time.Second)
	bus.Publish(pipeline.HeartbeatEvent{Timestamp: sent})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	var msg HeartbeatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if msg.Type != TypeHeartbeat {
		t.Errorf("Type = %q, want %q", msg.Type, TypeHeartbeat)
	}
	if !msg.Timestamp.Equal(sent) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, sent)
	}
}

// TestBridgeSkipsHeartbeatWithoutClients verifies that heartbeats are not
// fanned out when nobody is connected.
func TestBridgeSkipsHeartbeatWithoutClients(t *testing.T) {
	hub := NewHub()
	bus := pipeline.NewEventBus()
	defer bus.Close()

	bridge := NewBridge(hub)
	bridge.Start(bus)
	defer bridge.Stop()

	bus.Publish(pipeline.HeartbeatEvent{Timestamp: time.Now().UTC()})
	if n := hub.ClientCount(); n != 0 {
		t.Errorf("ClientCount = %d, want 0", n)
	}
}
