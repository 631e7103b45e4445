package systems

import (
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// PickupSystem collects trigger pickups the player touches: score
// drops feed the session through the bus, health drops heal on the
// spot
type PickupSystem struct {
	EventBus *core.EventBus
	Loop     *core.GameLoop
	pairs    []CollisionPair
}

// Collect keeps the player-pickup pairs from the collision callback
func (s *PickupSystem) Collect(p CollisionPair) {
	if (p.LayerA == core.LayerPlayer && p.LayerB == core.LayerPickup) ||
		(p.LayerA == core.LayerPickup && p.LayerB == core.LayerPlayer) {
		s.pairs = append(s.pairs, p)
	}
}

func (s *PickupSystem) Priority() int { return 55 }

func (s *PickupSystem) Update(entities []*core.Entity, dt float64) {
	for _, p := range s.pairs {
		player, item := p.A, p.B
		if p.LayerA == core.LayerPickup {
			player, item = p.B, p.A
		}
		s.collect(player, item)
	}
	s.pairs = s.pairs[:0]
}

func (s *PickupSystem) collect(player, item *core.Entity) {
	if !player.IsActive() || !item.IsActive() {
		return
	}
	puC, ok := item.GetComponent(core.CompPickup)
	if !ok {
		return
	}
	pu := puC.(*core.Pickup)

	score := 0
	switch pu.Kind {
	case core.PickupScore:
		score = pu.Value
	case core.PickupHealth:
		if hpC, ok := player.GetComponent(core.CompHealth); ok {
			hp := hpC.(*core.Health)
			hp.Current += pu.Value
			if hp.Current > hp.Max {
				hp.Current = hp.Max
			}
		}
	}

	item.Deactivate()
	if s.EventBus != nil {
		var tick uint64
		if s.Loop != nil {
			tick = s.Loop.TickCount()
		}
		s.EventBus.Emit(core.Event{Type: core.EvtPickupCollected, Tick: tick, Payload: score})
	}
}
