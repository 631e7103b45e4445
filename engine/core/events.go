package core

import "sync"

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtEnemySpawned EventType = iota
	EvtEnemyKilled
	EvtPlayerDamaged
	EvtPlayerDied
	EvtProjectileFired
	EvtProjectileHit
	EvtPickupDropped
	EvtPickupCollected
	EvtWaveStarted
	EvtGameOver
)

// EventBus dispatches events to listeners. Emit may be called from
// any goroutine; Dispatch runs once per tick on the simulation
// goroutine, so handlers never observe a half-finished frame.
// Register handlers during setup, before the loop starts.
type EventBus struct {
	listeners map[EventType][]EventHandler

	mu    sync.Mutex
	queue []Event
	spare []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.mu.Lock()
	eb.queue = append(eb.queue, e)
	eb.mu.Unlock()
}

// EmitType queues a payload-free event
func (eb *EventBus) EmitType(t EventType, tick uint64) {
	eb.Emit(Event{Type: t, Tick: tick})
}

// Dispatch processes all queued events. Events emitted by handlers
// while it runs are held for the next dispatch.
func (eb *EventBus) Dispatch() {
	eb.mu.Lock()
	batch := eb.queue
	eb.queue = eb.spare[:0]
	eb.mu.Unlock()

	for _, e := range batch {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}

	eb.mu.Lock()
	eb.spare = batch[:0]
	eb.mu.Unlock()
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	return len(eb.queue)
}
