package pipeline

import (
	"testing"
	"time"
)

// TestBusSubscribeAll verifies that an unfiltered handler sees every event.
func TestBusSubscribeAll(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	var got []EventKind
	unsub := bus.Subscribe(EventHandlerFunc(func(evt Event) {
		got = append(got, evt.Kind())
	}))
	defer unsub()

	bus.Publish(CameraStatusEvent{CameraID: "cam-1", Status: "online"})
	bus.Publish(HeartbeatEvent{Timestamp: time.Now()})

	if len(got) != 2 || got[0] != EventCameraStatus || got[1] != EventHeartbeat {
		t.Errorf("Expected [camera_status heartbeat], got %v", got)
	}
}

// TestBusKindFilter verifies that a kind-filtered handler only sees its kind.
func TestBusKindFilter(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	count := 0
	unsub := bus.SubscribeKind(EventNewIncident, EventHandlerFunc(func(evt Event) {
		count++
		if _, ok := evt.(*NewIncidentEvent); !ok {
			t.Errorf("Expected *NewIncidentEvent, got %T", evt)
		}
	}))
	defer unsub()

	bus.Publish(&NewIncidentEvent{IncidentID: "inc-1", CameraID: "cam-1"})
	bus.Publish(CameraStatusEvent{CameraID: "cam-1", Status: "failed"})
	bus.Publish(&NewIncidentEvent{IncidentID: "inc-2", CameraID: "cam-2"})

	if count != 2 {
		t.Errorf("Expected 2 incident events, got %d", count)
	}
}

// TestBusCameraFilter verifies that a camera-filtered handler ignores other
// cameras and system-wide events.
func TestBusCameraFilter(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	count := 0
	unsub := bus.SubscribeCamera("cam-1", EventHandlerFunc(func(evt Event) {
		count++
	}))
	defer unsub()

	bus.Publish(CameraStatusEvent{CameraID: "cam-1", Status: "online"})
	bus.Publish(CameraStatusEvent{CameraID: "cam-2", Status: "online"})
	bus.Publish(HeartbeatEvent{Timestamp: time.Now()})

	if count != 1 {
		t.Errorf("Expected 1 event for cam-1, got %d", count)
	}
}

// TestBusUnsubscribe verifies that events stop after unsubscribe.
func TestBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	count := 0
	unsub := bus.Subscribe(EventHandlerFunc(func(evt Event) {
		count++
	}))

	bus.Publish(HeartbeatEvent{Timestamp: time.Now()})
	unsub()
	bus.Publish(HeartbeatEvent{Timestamp: time.Now()})

	if count != 1 {
		t.Errorf("Expected 1 event before unsubscribe, got %d", count)
	}
	if bus.SubscriberCount() != 0 {
		t.Errorf("Expected 0 subscribers, got %d", bus.SubscriberCount())
	}
}

// TestBusChannelDropsWhenFull verifies that a slow channel subscriber drops
// events instead of blocking the publisher.
func TestBusChannelDropsWhenFull(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	ch, unsub := bus.SubscribeChannel(2)
	defer unsub()

	for i := 0; i < 5; i++ {
		bus.Publish(HeartbeatEvent{Timestamp: time.Now()})
	}

	if len(ch) != 2 {
		t.Errorf("Expected 2 buffered events, got %d", len(ch))
	}
	if bus.DroppedEvents() != 3 {
		t.Errorf("Expected 3 dropped events, got %d", bus.DroppedEvents())
	}
}
