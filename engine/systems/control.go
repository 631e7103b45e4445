package systems

import (
	"math"
	"sync/atomic"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// ControlState carries movement intent from the input thread to the
// simulation. Both sides go through the atomics, never a shared
// float.
type ControlState struct {
	moveX atomic.Uint64
	moveY atomic.Uint64
}

// Set records the current movement direction
func (c *ControlState) Set(x, y float64) {
	c.moveX.Store(math.Float64bits(x))
	c.moveY.Store(math.Float64bits(y))
}

// Move returns the last recorded movement direction
func (c *ControlState) Move() (float64, float64) {
	return math.Float64frombits(c.moveX.Load()), math.Float64frombits(c.moveY.Load())
}

// PlayerControlSystem applies control intent to the player's velocity
// at the head of the tick
type PlayerControlSystem struct {
	Control *ControlState
	Session *core.Session
	Speed   float64
}

func (s *PlayerControlSystem) Priority() int { return 1 }

func (s *PlayerControlSystem) Update(entities []*core.Entity, dt float64) {
	id := s.Session.Player()
	if id == 0 {
		return
	}
	mx, my := s.Control.Move()
	for _, e := range entities {
		if e.ID != id {
			continue
		}
		if vC, ok := e.GetComponent(core.CompVelocity); ok {
			v := vC.(*core.Velocity)
			v.VX = mx * s.Speed
			v.VY = my * s.Speed
		}
		return
	}
}
