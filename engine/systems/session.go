package systems

import (
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// SessionSystem runs last: it advances the run clock and flushes the
// event bus so every event emitted this tick is delivered before the
// tick ends
type SessionSystem struct {
	Loop     *core.GameLoop
	Session  *core.Session
	EventBus *core.EventBus

	announced bool
}

func (s *SessionSystem) Priority() int { return 100 }

func (s *SessionSystem) Update(entities []*core.Entity, dt float64) {
	if s.Session != nil && !s.Session.IsOver() {
		s.Session.AddElapsed(dt)
	}
	if s.EventBus != nil {
		s.EventBus.Dispatch()
	}
	if s.Session != nil && s.Session.IsOver() && !s.announced {
		s.announced = true
		if s.EventBus != nil {
			var tick uint64
			if s.Loop != nil {
				tick = s.Loop.TickCount()
			}
			s.EventBus.EmitType(core.EvtGameOver, tick)
		}
	}
}
