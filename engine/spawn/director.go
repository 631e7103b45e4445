package spawn

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// SpawnBounds is the rectangle enemies appear along the edge of
type SpawnBounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Director paces the horde. It runs on its own goroutine and feeds
// enemies through the loop's admission queue, so spawns join the
// simulation at the next tick boundary regardless of which thread
// produced them. Wave announcements go through the bus and are
// delivered on the simulation goroutine.
type Director struct {
	Loop     *core.GameLoop
	Bus      *core.EventBus
	Session  *core.Session
	Bestiary *Bestiary
	Bounds   SpawnBounds

	Interval  time.Duration // time between waves
	BaseCount int           // enemies in the first wave
	Growth    int           // extra enemies per later wave
	MaxAlive  int           // hard cap on live enemies, 0 for none

	wave     atomic.Int64
	running  atomic.Bool
	stopChan chan struct{}
	wg       sync.WaitGroup
	rng      *rand.Rand
}

// NewDirector creates a director with the default pacing
func NewDirector(loop *core.GameLoop, bus *core.EventBus, session *core.Session, b *Bestiary, bounds SpawnBounds, seed int64) *Director {
	return &Director{
		Loop:      loop,
		Bus:       bus,
		Session:   session,
		Bestiary:  b,
		Bounds:    bounds,
		Interval:  8 * time.Second,
		BaseCount: 4,
		Growth:    2,
		MaxAlive:  120,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Start launches the opening wave and the pacing goroutine. Calling
// it on a running director is a no-op.
func (d *Director) Start() {
	if !d.running.CompareAndSwap(false, true) {
		return
	}
	d.stopChan = make(chan struct{})
	d.SpawnWave()
	d.wg.Add(1)
	go d.run()
}

// Stop halts the pacing goroutine and waits for it to exit
func (d *Director) Stop() {
	if !d.running.CompareAndSwap(true, false) {
		return
	}
	close(d.stopChan)
	d.wg.Wait()
}

// IsRunning reports whether the pacing goroutine is live
func (d *Director) IsRunning() bool {
	return d.running.Load()
}

// Wave returns the number of waves launched so far
func (d *Director) Wave() int {
	return int(d.wave.Load())
}

func (d *Director) run() {
	defer d.wg.Done()
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if d.Loop.IsPaused() || d.Session.IsOver() {
				continue
			}
			d.SpawnWave()
		case <-d.stopChan:
			return
		}
	}
}

// SpawnWave admits one wave of enemies and announces it. The wave
// size grows linearly; the roster widens as waves unlock defs.
func (d *Director) SpawnWave() {
	wave := int(d.wave.Add(1))
	pool := d.Bestiary.Unlocked(wave)
	if len(pool) == 0 {
		return
	}

	count := d.BaseCount + (wave-1)*d.Growth
	if d.MaxAlive > 0 {
		if room := d.MaxAlive - d.aliveEnemies(); count > room {
			count = room
		}
	}

	tick := d.Loop.TickCount()
	d.Bus.Emit(core.Event{Type: core.EvtWaveStarted, Tick: tick, Payload: wave})

	target := d.Session.Player()
	for i := 0; i < count; i++ {
		def := pool[d.rng.Intn(len(pool))]
		x, y := d.edgePoint()
		d.Loop.AddEntity(def.Build(x, y, target))
		d.Bus.EmitType(core.EvtEnemySpawned, tick)
	}
}

// aliveEnemies counts live enemies in the last published snapshot
func (d *Director) aliveEnemies() int {
	n := 0
	for _, e := range d.Loop.Snapshot() {
		if !e.IsActive() {
			continue
		}
		if c, ok := e.GetComponent(core.CompCollider); ok && c.(*core.Collider).Layer == core.LayerEnemy {
			n++
		}
	}
	return n
}

// edgePoint picks a random point on the spawn rectangle's perimeter
func (d *Director) edgePoint() (float64, float64) {
	b := d.Bounds
	w := b.MaxX - b.MinX
	h := b.MaxY - b.MinY
	switch d.rng.Intn(4) {
	case 0:
		return b.MinX + d.rng.Float64()*w, b.MinY
	case 1:
		return b.MinX + d.rng.Float64()*w, b.MaxY
	case 2:
		return b.MinX, b.MinY + d.rng.Float64()*h
	default:
		return b.MaxX, b.MinY + d.rng.Float64()*h
	}
}
