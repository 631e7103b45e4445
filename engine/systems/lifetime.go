package systems

import (
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// LifetimeSystem counts down transient entities (projectiles, drops)
// and deactivates the expired; the loop's sweep removes them
type LifetimeSystem struct{}

func (s *LifetimeSystem) Priority() int { return 60 }

func (s *LifetimeSystem) Update(entities []*core.Entity, dt float64) {
	for _, e := range entities {
		lt, ok := e.GetComponent(core.CompLifetime)
		if !ok {
			continue
		}
		l := lt.(*core.Lifetime)
		l.Remaining -= dt
		if l.Remaining <= 0 {
			e.Deactivate()
		}
	}
}
