package events

import (
	"log"
	"sort"
	"sync"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	Name    string
	Order   int
	Handler func(Event) error
}

func (f *ListenerFunc) HandleEvent(event Event) error { return f.Handler(event) }
func (f *ListenerFunc) Priority() int                 { return f.Order }
func (f *ListenerFunc) ID() string                    { return f.Name }

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types. Listeners with equal
// priority run in subscription order.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	b.sortLocked(eventType)

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// SubscribeAll adds listener to every given event type, or to every combat
// event type when none are given
func (b *Bus) SubscribeAll(listener EventListener, eventTypes ...EventType) {
	if len(eventTypes) == 0 {
		eventTypes = AllEventTypes
	}
	for _, eventType := range eventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

func (b *Bus) sortLocked(eventType EventType) {
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}

// Emit sends an event to all registered listeners. A nil bus drops events.
func (b *Bus) Emit(event Event) error {
	if b == nil {
		return nil
	}

	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return dnderr.Wrapf(err, "listener %s failed", listener.ID())
		}
	}

	return nil
}

// ListenerCount returns the number of listeners for eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}
