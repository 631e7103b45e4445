package systems

import (
	"math"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

const projectileRadius = 3.0

// WeaponSystem auto-fires each armed entity at the nearest living
// enemy in range. Projectiles are spawned through the admission queue
// and join the simulation next tick.
type WeaponSystem struct {
	Loop     *core.GameLoop
	EventBus *core.EventBus
}

func (s *WeaponSystem) Priority() int { return 50 }

func (s *WeaponSystem) Update(entities []*core.Entity, dt float64) {
	for _, e := range entities {
		if !e.IsActive() {
			continue
		}
		wepC, ok := e.GetComponent(core.CompWeapon)
		if !ok {
			continue
		}
		wep := wepC.(*core.Weapon)
		// Cool down weapon
		if wep.CooldownNow > 0 {
			wep.CooldownNow -= dt
			continue
		}
		tr, ok := e.GetComponent(core.CompTransform)
		if !ok {
			continue
		}
		t := tr.(*core.Transform)

		// Find nearest enemy in range
		var best *core.Transform
		bestDist := wep.Range
		for _, cand := range entities {
			if cand == e || !cand.IsActive() {
				continue
			}
			col, ok := cand.GetComponent(core.CompCollider)
			if !ok || col.(*core.Collider).Layer != core.LayerEnemy {
				continue
			}
			if !cand.HasComponent(core.CompHealth) {
				continue
			}
			ctr, ok := cand.GetComponent(core.CompTransform)
			if !ok {
				continue
			}
			ct := ctr.(*core.Transform)
			if d := t.DistanceTo(ct); d <= bestDist {
				bestDist = d
				best = ct
			}
		}
		if best == nil {
			continue
		}

		wep.CooldownNow = wep.Cooldown
		s.fire(e, t, best, wep)
	}
}

// fire spawns a projectile flying at the target's current position
func (s *WeaponSystem) fire(shooter *core.Entity, from, at *core.Transform, wep *core.Weapon) {
	if s.Loop == nil {
		return
	}
	angle := from.AngleTo(at)

	p := core.NewEntity()
	p.AddComponent(&core.Transform{X: from.X, Y: from.Y, Facing: angle})
	p.AddComponent(&core.Velocity{
		VX: math.Cos(angle) * wep.Speed,
		VY: math.Sin(angle) * wep.Speed,
	})
	col := core.NewCircleCollider(projectileRadius, core.LayerProjectile)
	col.Mask = core.MaskEnemy | core.MaskObstacle
	p.AddComponent(col)
	p.AddComponent(&core.Damage{Amount: wep.Damage, Once: true})
	p.AddComponent(&core.Lifetime{Remaining: wep.Life})
	p.AddComponent(&core.Owner{ID: shooter.ID})
	s.Loop.AddEntity(p)

	if s.EventBus != nil {
		s.EventBus.EmitType(core.EvtProjectileFired, s.Loop.TickCount())
	}
}
