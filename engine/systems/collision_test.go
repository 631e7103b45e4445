package systems

import (
	"testing"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

func circleAt(x, y, r float64, layer core.Layer) *core.Entity {
	e := core.NewEntity()
	e.AddComponent(&core.Transform{X: x, Y: y})
	e.AddComponent(core.NewCircleCollider(r, layer))
	return e
}

func boxAt(x, y, w, h float64, layer core.Layer) *core.Entity {
	e := core.NewEntity()
	e.AddComponent(&core.Transform{X: x, Y: y})
	e.AddComponent(core.NewBoxCollider(w, h, layer))
	return e
}

type pairRecorder struct {
	pairs []CollisionPair
}

func (r *pairRecorder) record(p CollisionPair) {
	r.pairs = append(r.pairs, p)
}

func TestPairKeySymmetric(t *testing.T) {
	if pairKey(3, 9) != pairKey(9, 3) {
		t.Error("pairKey not symmetric")
	}
	if pairKey(3, 9) == pairKey(3, 10) {
		t.Error("pairKey collides for distinct pairs")
	}
}

func TestCallbackFiresOncePerPairPerTick(t *testing.T) {
	rec := &pairRecorder{}
	cs := NewCollisionSystem(64, rec.record)
	a := circleAt(0, 0, 10, core.LayerPlayer)
	b := circleAt(15, 0, 10, core.LayerEnemy)

	cs.Update([]*core.Entity{a, b}, 1.0/60)
	if len(rec.pairs) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(rec.pairs))
	}

	// The dedup set resets between ticks
	cs.Update([]*core.Entity{a, b}, 1.0/60)
	if len(rec.pairs) != 2 {
		t.Errorf("callback fired %d times over two ticks, want 2", len(rec.pairs))
	}
}

func TestCallbackOrderIndependent(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		rec := &pairRecorder{}
		cs := NewCollisionSystem(64, rec.record)
		a := circleAt(0, 0, 10, core.LayerPlayer)
		b := circleAt(15, 0, 10, core.LayerEnemy)

		list := []*core.Entity{a, b}
		if reversed {
			list = []*core.Entity{b, a}
		}
		cs.Update(list, 1.0/60)

		if len(rec.pairs) != 1 {
			t.Fatalf("reversed=%v: callback fired %d times, want 1", reversed, len(rec.pairs))
		}
		p := rec.pairs[0]
		if !(p.A == a && p.B == b || p.A == b && p.B == a) {
			t.Errorf("reversed=%v: pair carries wrong entities", reversed)
		}
	}
}

func TestMaskOrSemantics(t *testing.T) {
	// The projectile wants enemies; the enemy does not list
	// projectiles. One side's mask suffices.
	rec := &pairRecorder{}
	cs := NewCollisionSystem(64, rec.record)

	proj := circleAt(0, 0, 3, core.LayerProjectile)
	pc, _ := proj.GetComponent(core.CompCollider)
	pc.(*core.Collider).Mask = core.MaskEnemy | core.MaskObstacle

	enemy := circleAt(5, 0, 10, core.LayerEnemy)
	ec, _ := enemy.GetComponent(core.CompCollider)
	ec.(*core.Collider).Mask = core.MaskPlayer

	cs.Update([]*core.Entity{proj, enemy}, 1.0/60)
	if len(rec.pairs) != 1 {
		t.Errorf("one-way mask pair fired %d times, want 1", len(rec.pairs))
	}
}

func TestMaskNeitherSideSelects(t *testing.T) {
	rec := &pairRecorder{}
	cs := NewCollisionSystem(64, rec.record)

	a := circleAt(0, 0, 10, core.LayerPickup)
	ac, _ := a.GetComponent(core.CompCollider)
	ac.(*core.Collider).Mask = core.MaskNone

	b := circleAt(5, 0, 10, core.LayerEnemy)
	bc, _ := b.GetComponent(core.CompCollider)
	bc.(*core.Collider).Mask = core.MaskPlayer | core.MaskObstacle

	cs.Update([]*core.Entity{a, b}, 1.0/60)
	if len(rec.pairs) != 0 {
		t.Errorf("unselected pair fired %d times, want 0", len(rec.pairs))
	}
}

func TestEntitiesMissingComponentsAreSkipped(t *testing.T) {
	rec := &pairRecorder{}
	cs := NewCollisionSystem(64, rec.record)

	bare := core.NewEntity()
	posOnly := core.NewEntity()
	posOnly.AddComponent(&core.Transform{X: 0, Y: 0})
	colOnly := core.NewEntity()
	colOnly.AddComponent(core.NewCircleCollider(10, core.LayerEnemy))
	full := circleAt(0, 0, 10, core.LayerPlayer)

	cs.Update([]*core.Entity{bare, posOnly, colOnly, full}, 1.0/60)
	if len(rec.pairs) != 0 {
		t.Errorf("non-collidable entities produced %d pairs, want 0", len(rec.pairs))
	}
}

func TestMixedShapesDetectInEitherOrder(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		rec := &pairRecorder{}
		cs := NewCollisionSystem(64, rec.record)
		c := circleAt(0, 0, 8, core.LayerPlayer)
		b := boxAt(10, 0, 12, 12, core.LayerObstacle)

		list := []*core.Entity{c, b}
		if reversed {
			list = []*core.Entity{b, c}
		}
		cs.Update(list, 1.0/60)
		if len(rec.pairs) != 1 {
			t.Errorf("reversed=%v: circle-box pair fired %d times, want 1", reversed, len(rec.pairs))
		}
	}
}

func TestSameCellWithoutOverlapIsRejected(t *testing.T) {
	rec := &pairRecorder{}
	cs := NewCollisionSystem(256, rec.record)
	a := circleAt(10, 10, 5, core.LayerPlayer)
	b := circleAt(100, 100, 5, core.LayerEnemy)

	cs.Update([]*core.Entity{a, b}, 1.0/60)
	if len(rec.pairs) != 0 {
		t.Errorf("broad-phase candidates without overlap fired %d times, want 0", len(rec.pairs))
	}
}

func TestNoSelfCollision(t *testing.T) {
	rec := &pairRecorder{}
	cs := NewCollisionSystem(64, rec.record)
	a := circleAt(0, 0, 10, core.LayerEnemy)

	cs.Update([]*core.Entity{a}, 1.0/60)
	if len(rec.pairs) != 0 {
		t.Errorf("entity collided with itself %d times", len(rec.pairs))
	}
}

func TestTriggerCollidersStillDetected(t *testing.T) {
	rec := &pairRecorder{}
	cs := NewCollisionSystem(64, rec.record)

	player := circleAt(0, 0, 8, core.LayerPlayer)
	drop := circleAt(5, 0, 6, core.LayerPickup)
	dc, _ := drop.GetComponent(core.CompCollider)
	dc.(*core.Collider).Trigger = true
	dc.(*core.Collider).Mask = core.MaskNone

	cs.Update([]*core.Entity{player, drop}, 1.0/60)
	if len(rec.pairs) != 1 {
		t.Fatalf("trigger pair fired %d times, want 1", len(rec.pairs))
	}
	p := rec.pairs[0]
	wantLayers := p.LayerA == core.LayerPlayer && p.LayerB == core.LayerPickup ||
		p.LayerA == core.LayerPickup && p.LayerB == core.LayerPlayer
	if !wantLayers {
		t.Errorf("pair layers = %v, %v", p.LayerA, p.LayerB)
	}
}

func TestManyOverlappingEntitiesPairCount(t *testing.T) {
	// Three mutually overlapping circles produce exactly three
	// unordered pairs
	rec := &pairRecorder{}
	cs := NewCollisionSystem(64, rec.record)
	a := circleAt(0, 0, 10, core.LayerPlayer)
	b := circleAt(5, 0, 10, core.LayerEnemy)
	c := circleAt(0, 5, 10, core.LayerEnemy)

	cs.Update([]*core.Entity{a, b, c}, 1.0/60)
	if len(rec.pairs) != 3 {
		t.Errorf("three overlapping entities fired %d pairs, want 3", len(rec.pairs))
	}
}
