package ws

import (
	"sync"

	"vigil/internal/pipeline"
)

// Bridge translates pipeline events into hub broadcasts, including the
// pipeline's periodic heartbeat so idle dashboards know the backend is
// alive.
type Bridge struct {
	hub *Hub

	unsubscribe []func()
	stopOnce    sync.Once
}

// NewBridge creates a bridge publishing to hub
func NewBridge(hub *Hub) *Bridge {
	return &Bridge{hub: hub}
}

// Start subscribes the bridge to the bus
func (b *Bridge) Start(bus *pipeline.EventBus) {
	b.unsubscribe = append(b.unsubscribe,
		bus.Subscribe(pipeline.EventHandlerFunc(b.handle)))
}

func (b *Bridge) handle(evt pipeline.Event) {
	switch e := evt.(type) {
	case pipeline.DetectionEvent:
		if !b.hub.HasClients(e.Result.CameraID) {
			return
		}
		b.hub.Send(e.Result.CameraID, NewDetectionMessage(e.Result))
	case *pipeline.NewIncidentEvent:
		b.hub.Send("", NewIncidentOpened(e))
	case *pipeline.IncidentUpdateEvent:
		b.hub.Send("", NewIncidentProgress(e))
	case pipeline.CameraStatusEvent:
		b.hub.Send("", &CameraStatusMessage{
			Type:      TypeCameraStatus,
			CameraID:  e.CameraID,
			Status:    e.Status,
			Reason:    e.Reason,
			Timestamp: e.Timestamp,
		})
	case pipeline.HeartbeatEvent:
		if b.hub.ClientCount() == 0 {
			return
		}
		b.hub.Send("", &HeartbeatMessage{
			Type:      TypeHeartbeat,
			Timestamp: e.Timestamp,
		})
	}
}

// Stop unsubscribes the bridge from the bus
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		for _, unsub := range b.unsubscribe {
			unsub()
		}
	})
}
