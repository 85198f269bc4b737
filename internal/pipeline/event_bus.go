package pipeline

import (
	"sync"
	"sync/atomic"
)

// EventBus provides pub/sub for pipeline events.
// Handlers run synchronously to preserve per-camera ordering; channel
// subscribers are served non-blocking and slow consumers drop events.
type EventBus struct {
	subscribers map[*eventSubscription]bool
	dropped     atomic.Uint64
	mu          sync.RWMutex
}

type eventSubscription struct {
	cameraFilter string    // Empty string means receive all cameras
	kindFilter   EventKind // Empty means receive all kinds
	channel      chan Event
	handler      EventHandler
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[*eventSubscription]bool),
	}
}

// Subscribe registers a handler for all events.
// Returns an unsubscribe function.
func (b *EventBus) Subscribe(handler EventHandler) func() {
	sub := &eventSubscription{
		handler: handler,
	}

	b.mu.Lock()
	b.subscribers[sub] = true
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, sub)
		b.mu.Unlock()
	}
}

// SubscribeKind registers a handler for one event kind.
// Returns an unsubscribe function.
func (b *EventBus) SubscribeKind(kind EventKind, handler EventHandler) func() {
	sub := &eventSubscription{
		kindFilter: kind,
		handler:    handler,
	}

	b.mu.Lock()
	b.subscribers[sub] = true
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, sub)
		b.mu.Unlock()
	}
}

// SubscribeCamera registers a handler for events from a specific camera.
// Returns an unsubscribe function.
func (b *EventBus) SubscribeCamera(cameraID string, handler EventHandler) func() {
	sub := &eventSubscription{
		cameraFilter: cameraID,
		handler:      handler,
	}

	b.mu.Lock()
	b.subscribers[sub] = true
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, sub)
		b.mu.Unlock()
	}
}

// SubscribeChannel returns a channel that receives events.
// The channel has the specified buffer size.
// Returns the channel and an unsubscribe function.
func (b *EventBus) SubscribeChannel(bufferSize int) (<-chan Event, func()) {
	if bufferSize <= 0 {
		bufferSize = 10
	}

	ch := make(chan Event, bufferSize)
	sub := &eventSubscription{
		channel: ch,
	}

	b.mu.Lock()
	b.subscribers[sub] = true
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		if _, ok := b.subscribers[sub]; ok {
			delete(b.subscribers, sub)
			close(ch)
		}
		b.mu.Unlock()
	}

	return ch, unsubscribe
}

// Publish sends an event to all matching subscribers
func (b *EventBus) Publish(event Event) {
	if event == nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subscribers {
		if sub.cameraFilter != "" && sub.cameraFilter != event.Camera() {
			continue
		}
		if sub.kindFilter != "" && sub.kindFilter != event.Kind() {
			continue
		}

		// Handlers are called synchronously to preserve frame ordering.
		// Detection results must be delivered in sequence so old frames
		// never appear after newer ones downstream.
		if sub.handler != nil {
			sub.handler.OnEvent(event)
		} else if sub.channel != nil {
			select {
			case sub.channel <- event:
			default:
				b.dropped.Add(1)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (b *EventBus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// DroppedEvents returns the count of events dropped on full channels
func (b *EventBus) DroppedEvents() uint64 {
	return b.dropped.Load()
}

// Close unsubscribes all subscribers and closes channels
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subscribers {
		if sub.channel != nil {
			close(sub.channel)
		}
		delete(b.subscribers, sub)
	}
}
