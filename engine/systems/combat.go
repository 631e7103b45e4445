package systems

import (
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// CombatSystem turns the tick's collision pairs into gameplay:
// contact damage, projectile hits, kills and loot drops. It consumes
// pairs collected from the collision callback earlier in the same
// tick.
type CombatSystem struct {
	Loop     *core.GameLoop
	EventBus *core.EventBus
	pairs    []CollisionPair
}

// Collect is registered as the collision callback. Pairs land here
// during the collision pass and are consumed by Update later the same
// tick, both on the simulation goroutine.
func (s *CombatSystem) Collect(p CollisionPair) {
	s.pairs = append(s.pairs, p)
}

func (s *CombatSystem) Priority() int { return 40 }

func (s *CombatSystem) Update(entities []*core.Entity, dt float64) {
	// Cool down contact damage dealers
	for _, e := range entities {
		if d, ok := e.GetComponent(core.CompDamage); ok {
			dmg := d.(*core.Damage)
			if dmg.CooldownNow > 0 {
				dmg.CooldownNow -= dt
			}
		}
	}

	for _, p := range s.pairs {
		s.resolve(p.A, p.B)
		s.resolve(p.B, p.A)
	}
	s.pairs = s.pairs[:0]
}

// resolve applies the dealer's contact damage to the victim
func (s *CombatSystem) resolve(dealer, victim *core.Entity) {
	if !dealer.IsActive() || !victim.IsActive() {
		return
	}
	dmgC, ok := dealer.GetComponent(core.CompDamage)
	if !ok {
		return
	}
	dmg := dmgC.(*core.Damage)
	if dmg.CooldownNow > 0 {
		return
	}

	// Projectiles never hurt their spawner
	if ownC, ok := dealer.GetComponent(core.CompOwner); ok {
		if ownC.(*core.Owner).ID == victim.ID {
			return
		}
	}

	var dealerLayer, victimLayer core.Layer
	victimSolid := false
	if c, ok := dealer.GetComponent(core.CompCollider); ok {
		dealerLayer = c.(*core.Collider).Layer
	}
	if c, ok := victim.GetComponent(core.CompCollider); ok {
		vc := c.(*core.Collider)
		victimLayer = vc.Layer
		victimSolid = !vc.Trigger
	}

	// Same-layer contact is harmless (enemies grinding on each other)
	if dealerLayer == victimLayer {
		return
	}

	hit := false
	if hpC, ok := victim.GetComponent(core.CompHealth); ok {
		hp := hpC.(*core.Health)
		hp.Current -= dmg.Amount
		dmg.CooldownNow = dmg.Every
		hit = true

		if victimLayer == core.LayerPlayer {
			s.emit(core.EvtPlayerDamaged, dmg.Amount)
		}
		if hp.Current <= 0 {
			hp.Current = 0
			victim.Deactivate()
			s.kill(victim, victimLayer)
		}
	}

	// One-shot dealers expire on any solid contact
	if dmg.Once && (hit || victimSolid) {
		dealer.Deactivate()
		s.emit(core.EvtProjectileHit, nil)
	}
}

// kill emits the death event and drops the victim's loot
func (s *CombatSystem) kill(victim *core.Entity, layer core.Layer) {
	switch layer {
	case core.LayerPlayer:
		s.emit(core.EvtPlayerDied, nil)
		return
	case core.LayerEnemy:
		lootC, ok := victim.GetComponent(core.CompLoot)
		if !ok {
			s.emit(core.EvtEnemyKilled, 0)
			return
		}
		loot := lootC.(*core.Loot)
		s.emit(core.EvtEnemyKilled, loot.Score)
		if loot.Value > 0 {
			s.drop(victim, loot)
		}
	}
}

// drop spawns a pickup where the victim died. Admission puts it in
// the live list next tick.
func (s *CombatSystem) drop(victim *core.Entity, loot *core.Loot) {
	tr, ok := victim.GetComponent(core.CompTransform)
	if !ok || s.Loop == nil {
		return
	}
	t := tr.(*core.Transform)

	e := core.NewEntity()
	e.AddComponent(&core.Transform{X: t.X, Y: t.Y})
	col := core.NewCircleCollider(pickupRadius, core.LayerPickup)
	col.Trigger = true
	col.Mask = core.MaskNone // the player's mask finds pickups
	e.AddComponent(col)
	e.AddComponent(&core.Pickup{Kind: loot.Drop, Value: loot.Value})
	e.AddComponent(&core.Lifetime{Remaining: pickupLinger})
	s.Loop.AddEntity(e)
	s.emit(core.EvtPickupDropped, nil)
}

func (s *CombatSystem) emit(t core.EventType, payload interface{}) {
	if s.EventBus == nil {
		return
	}
	var tick uint64
	if s.Loop != nil {
		tick = s.Loop.TickCount()
	}
	s.EventBus.Emit(core.Event{Type: t, Tick: tick, Payload: payload})
}

const (
	pickupRadius = 6.0
	pickupLinger = 30.0 // seconds before an uncollected drop fades
)
