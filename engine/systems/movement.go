package systems

import (
	"math"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// MovementSystem integrates velocity into position and faces entities
// along their travel direction
type MovementSystem struct{}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(entities []*core.Entity, dt float64) {
	for _, e := range entities {
		tr, ok := e.GetComponent(core.CompTransform)
		if !ok {
			continue
		}
		vel, ok := e.GetComponent(core.CompVelocity)
		if !ok {
			continue
		}
		t := tr.(*core.Transform)
		v := vel.(*core.Velocity)

		t.X += v.VX * dt
		t.Y += v.VY * dt

		if v.VX != 0 || v.VY != 0 {
			t.Facing = math.Atan2(v.VY, v.VX)
		}
	}
}
