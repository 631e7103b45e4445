package core

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60.0
	// MaxDelta caps the wall-clock step fed to systems so a stall
	// cannot snowball into one enormous tick
	MaxDelta = 0.05
)

// System is a priority-ordered unit of per-tick logic. Lower values
// run first within a tick. Systems run only on the simulation
// goroutine, never concurrently with each other or with the sweep.
// A panicking system is a programmer error and propagates uncaught.
type System interface {
	Update(entities []*Entity, dt float64)
	Priority() int
}

// GameLoop drives the simulation at a fixed rate and owns the single
// authoritative entity list. External threads interact only through
// AddEntity, RemoveEntity, Snapshot and the lifecycle controls; the
// list itself is mutated by the simulation goroutine alone.
type GameLoop struct {
	mu       sync.Mutex // makes Update and Clear mutually atomic
	entities []*Entity
	systems  []System

	admissions admissionQueue
	paused     atomic.Bool
	running    atomic.Bool
	snapshot   atomic.Pointer[[]*Entity]
	tickCount  atomic.Uint64

	stopChan chan struct{}
	wg       sync.WaitGroup
	lastTime time.Time
}

// NewGameLoop creates a stopped loop with no systems registered
func NewGameLoop() *GameLoop {
	gl := &GameLoop{}
	empty := make([]*Entity, 0)
	gl.snapshot.Store(&empty)
	return gl
}

// AddEntity queues an entity for admission. Safe from any thread. The
// entity joins the live list at the start of the next tick, so it is
// never visible to snapshot readers before a tick has processed it.
func (gl *GameLoop) AddEntity(e *Entity) {
	gl.admissions.push(e)
}

// RemoveEntity flags an entity inactive. Safe from any thread. The
// entity leaves the live list in the sweep of the current or next
// tick, and its id is never reassigned.
func (gl *GameLoop) RemoveEntity(e *Entity) {
	e.Deactivate()
}

// Snapshot returns the last published entity list without blocking.
// The slice is a copy made at publish time and never mutated again;
// the entities inside it are shared with the simulation.
func (gl *GameLoop) Snapshot() []*Entity {
	if p := gl.snapshot.Load(); p != nil {
		return *p
	}
	return nil
}

// AddSystem registers a system, keeping the list sorted ascending by
// priority. Registration is for setup time, not per frame.
func (gl *GameLoop) AddSystem(s System) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	gl.systems = append(gl.systems, s)
	// Sort by priority (simple insertion)
	for i := len(gl.systems) - 1; i > 0; i-- {
		if gl.systems[i].Priority() < gl.systems[i-1].Priority() {
			gl.systems[i], gl.systems[i-1] = gl.systems[i-1], gl.systems[i]
		}
	}
}

// Update performs one tick: drain admissions, run systems unless
// paused, sweep inactive entities, publish a fresh snapshot. The whole
// cycle holds the loop mutex so it can never interleave with Clear,
// and readers only ever observe completed ticks.
func (gl *GameLoop) Update(dt float64) {
	if dt > MaxDelta {
		dt = MaxDelta
	}

	gl.mu.Lock()
	defer gl.mu.Unlock()

	gl.entities = gl.admissions.drain(gl.entities)

	// Pause freezes entity state only; admission, sweep and publish
	// still run every tick
	if !gl.paused.Load() {
		for _, s := range gl.systems {
			s.Update(gl.entities, dt)
		}
	}

	// Sweep inactive entities in a single pass, reusing the backing
	// array
	live := gl.entities[:0]
	for _, e := range gl.entities {
		if e.IsActive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(gl.entities); i++ {
		gl.entities[i] = nil
	}
	gl.entities = live

	gl.publishLocked()
	gl.tickCount.Add(1)
}

// publishLocked copies the live list into a fresh snapshot slice.
// Callers must hold gl.mu.
func (gl *GameLoop) publishLocked() {
	snap := make([]*Entity, len(gl.entities))
	copy(snap, gl.entities)
	gl.snapshot.Store(&snap)
}

// Start launches the simulation goroutine at the fixed tick rate.
// No-op when already running.
func (gl *GameLoop) Start() {
	if !gl.running.CompareAndSwap(false, true) {
		return
	}
	gl.stopChan = make(chan struct{})
	gl.lastTime = time.Now()
	gl.wg.Add(1)
	go gl.run()
}

// Stop halts the simulation goroutine and waits for an in-progress
// tick to complete. No-op when not running.
func (gl *GameLoop) Stop() {
	if !gl.running.CompareAndSwap(true, false) {
		return
	}
	close(gl.stopChan)
	gl.wg.Wait()
}

func (gl *GameLoop) run() {
	defer gl.wg.Done()
	interval := float64(time.Second) / TickRate
	ticker := time.NewTicker(time.Duration(interval))
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(gl.lastTime).Seconds()
			gl.lastTime = now
			gl.Update(dt)
		case <-gl.stopChan:
			return
		}
	}
}

// Pause skips system execution while keeping admission, sweep and
// snapshot publication live, so readers keep rendering frozen state
func (gl *GameLoop) Pause() {
	gl.paused.Store(true)
}

// Resume unfreezes the simulation
func (gl *GameLoop) Resume() {
	gl.paused.Store(false)
}

// IsPaused reports whether systems are being skipped
func (gl *GameLoop) IsPaused() bool {
	return gl.paused.Load()
}

// IsRunning reports whether the simulation goroutine is live
func (gl *GameLoop) IsRunning() bool {
	return gl.running.Load()
}

// Clear empties the authoritative list, the admission queue and the
// system list, and publishes an empty snapshot. Shares the loop mutex
// with Update so it can never interleave with a tick in progress.
func (gl *GameLoop) Clear() {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	gl.admissions.reset()
	for i := range gl.entities {
		gl.entities[i] = nil
	}
	gl.entities = gl.entities[:0]
	gl.systems = nil
	gl.publishLocked()
}

// TickCount returns the number of completed ticks
func (gl *GameLoop) TickCount() uint64 {
	return gl.tickCount.Load()
}

// EntityCount returns the size of the last published snapshot
func (gl *GameLoop) EntityCount() int {
	return len(gl.Snapshot())
}
