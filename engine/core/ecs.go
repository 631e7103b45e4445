package core

import (
	"sync"
	"sync/atomic"
)

// EntityID is a unique identifier for game entities. Ids are assigned
// from a process-wide monotonic counter and never reused, so a stored
// id can always be resolved or found dead, never aliased.
type EntityID uint64

var entityCounter uint64

// NewEntityID generates a unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&entityCounter, 1))
}

// Component is a marker interface for all components
type Component interface {
	Type() ComponentType
}

// ComponentType identifies the type of component
type ComponentType uint32

const (
	CompTransform ComponentType = iota
	CompVelocity
	CompCollider
	CompHealth
	CompDamage
	CompLifetime
	CompOwner
	CompChase
	CompWeapon
	CompPickup
	CompLoot
	CompMax
)

// Entity is a pure aggregate: an identity, a liveness flag, and at
// most one component of each kind. Behavior lives in systems. Entities
// are assembled by factories on any thread, handed to the game loop
// through AddEntity, and owned by the simulation goroutine from the
// tick after admission.
type Entity struct {
	ID EntityID

	active     atomic.Bool
	mu         sync.RWMutex
	components map[ComponentType]Component
}

// NewEntity creates an active entity with a fresh id
func NewEntity() *Entity {
	e := &Entity{
		ID:         NewEntityID(),
		components: make(map[ComponentType]Component),
	}
	e.active.Store(true)
	return e
}

// AddComponent inserts or replaces the component of c's kind
func (e *Entity) AddComponent(c Component) {
	e.mu.Lock()
	e.components[c.Type()] = c
	e.mu.Unlock()
}

// GetComponent returns the component of the given kind. Absence is
// normal control flow, not an error; systems early-exit on false.
func (e *Entity) GetComponent(t ComponentType) (Component, bool) {
	e.mu.RLock()
	c, ok := e.components[t]
	e.mu.RUnlock()
	return c, ok
}

// HasComponent checks if the entity carries a component kind. Cheap
// enough for per-tick classification.
func (e *Entity) HasComponent(t ComponentType) bool {
	e.mu.RLock()
	_, ok := e.components[t]
	e.mu.RUnlock()
	return ok
}

// IsActive reports liveness
func (e *Entity) IsActive() bool {
	return e.active.Load()
}

// Deactivate marks the entity for removal. A single atomic write, safe
// from any thread; physical removal happens only in the loop's sweep,
// never mid-iteration.
func (e *Entity) Deactivate() {
	e.active.Store(false)
}
