package core

import "sync/atomic"

// Session tracks one run's progress: score, kills, wave and elapsed
// time. Gameplay systems write it on the simulation goroutine through
// bus handlers; the render thread reads it concurrently, hence the
// atomics.
type Session struct {
	Score atomic.Int64
	Kills atomic.Int64
	Wave  atomic.Int64

	playerID  atomic.Uint64
	elapsedMS atomic.Int64
	gameOver  atomic.Bool
}

func NewSession() *Session {
	return &Session{}
}

// SetPlayer records the player entity's id for lookup by systems and
// the spawn director
func (s *Session) SetPlayer(id EntityID) {
	s.playerID.Store(uint64(id))
}

// Player returns the player entity id, or zero before spawn
func (s *Session) Player() EntityID {
	return EntityID(s.playerID.Load())
}

// AddElapsed advances the run clock
func (s *Session) AddElapsed(dt float64) {
	s.elapsedMS.Add(int64(dt * 1000))
}

// Elapsed returns the run time in seconds
func (s *Session) Elapsed() float64 {
	return float64(s.elapsedMS.Load()) / 1000
}

// End flags the run as over
func (s *Session) End() {
	s.gameOver.Store(true)
}

// IsOver reports whether the run has ended
func (s *Session) IsOver() bool {
	return s.gameOver.Load()
}

// Reset zeroes the session for a fresh run
func (s *Session) Reset() {
	s.Score.Store(0)
	s.Kills.Store(0)
	s.Wave.Store(0)
	s.playerID.Store(0)
	s.elapsedMS.Store(0)
	s.gameOver.Store(false)
}

// Observe subscribes the session counters to gameplay events
func (s *Session) Observe(bus *EventBus) {
	bus.On(EvtEnemyKilled, func(e Event) {
		s.Kills.Add(1)
		if v, ok := e.Payload.(int); ok {
			s.Score.Add(int64(v))
		}
	})
	bus.On(EvtPickupCollected, func(e Event) {
		if v, ok := e.Payload.(int); ok {
			s.Score.Add(int64(v))
		}
	})
	bus.On(EvtWaveStarted, func(e Event) {
		if w, ok := e.Payload.(int); ok {
			s.Wave.Store(int64(w))
		}
	})
	bus.On(EvtPlayerDied, func(e Event) {
		s.End()
	})
}
