package systems

import (
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/geom"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/spatial"
)

// CollisionPair describes one detected overlap. Reported at most once
// per tick for an unordered entity pair.
type CollisionPair struct {
	A, B           *core.Entity
	LayerA, LayerB core.Layer
}

// CollisionCallback receives each detected pair once per tick
type CollisionCallback func(pair CollisionPair)

// CollisionSystem is the broad plus narrow phase. Every tick it
// rebuilds its private grid from the live list, queries candidate
// neighbors per entity with a conservative radius and reports exact
// shape overlaps through the callback. Entities without a transform
// or collider are silently skipped.
type CollisionSystem struct {
	grid     *spatial.Grid
	callback CollisionCallback
	seen     map[uint64]struct{}
	buf      []*core.Entity
}

// NewCollisionSystem creates the system with its own grid of the
// given cell size
func NewCollisionSystem(cellSize float64, cb CollisionCallback) *CollisionSystem {
	return &CollisionSystem{
		grid:     spatial.NewGrid(cellSize),
		callback: cb,
		seen:     make(map[uint64]struct{}),
	}
}

func (s *CollisionSystem) Priority() int { return 30 }

// pairKey folds an unordered id pair into one symmetric key, so
// (a,b) and (b,a) dedup to the same entry
func pairKey(a, b core.EntityID) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

func (s *CollisionSystem) Update(entities []*core.Entity, dt float64) {
	s.grid.Clear()
	for _, e := range entities {
		if !e.IsActive() {
			continue
		}
		tr, ok := e.GetComponent(core.CompTransform)
		if !ok || !e.HasComponent(core.CompCollider) {
			continue
		}
		t := tr.(*core.Transform)
		s.grid.Insert(e, t.X, t.Y)
	}

	clear(s.seen)

	for _, a := range s.grid.All() {
		atr, _ := a.GetComponent(core.CompTransform)
		acol, _ := a.GetComponent(core.CompCollider)
		at := atr.(*core.Transform)
		ac := acol.(*core.Collider)

		s.buf = s.buf[:0]
		s.buf = s.grid.QueryInto(at.X, at.Y, ac.QueryRadius(), s.buf)

		for _, b := range s.buf {
			if a == b {
				continue
			}
			key := pairKey(a.ID, b.ID)
			if _, done := s.seen[key]; done {
				continue
			}
			s.seen[key] = struct{}{}

			btr, _ := b.GetComponent(core.CompTransform)
			bcol, _ := b.GetComponent(core.CompCollider)
			bt := btr.(*core.Transform)
			bc := bcol.(*core.Collider)

			// Either side's mask may select the pair; a projectile
			// can hit enemies without enemies listing projectiles
			if !ac.WantsLayer(bc.Layer) && !bc.WantsLayer(ac.Layer) {
				continue
			}
			if !shapesOverlap(at, ac, bt, bc) {
				continue
			}
			if s.callback != nil {
				s.callback(CollisionPair{A: a, B: b, LayerA: ac.Layer, LayerB: bc.Layer})
			}
		}
	}
}

// shapesOverlap dispatches the narrow phase by shape pair. Mixed pairs
// are normalized so the result is identical in either operand order.
func shapesOverlap(at *core.Transform, ac *core.Collider, bt *core.Transform, bc *core.Collider) bool {
	switch sa := ac.Shape.(type) {
	case geom.Circle:
		switch sb := bc.Shape.(type) {
		case geom.Circle:
			return geom.CirclesOverlap(at.X, at.Y, sa.Radius, bt.X, bt.Y, sb.Radius)
		case geom.Box:
			return geom.CircleBoxOverlap(at.X, at.Y, sa.Radius, bt.X, bt.Y, sb.HalfW, sb.HalfH)
		}
	case geom.Box:
		switch sb := bc.Shape.(type) {
		case geom.Circle:
			return geom.CircleBoxOverlap(bt.X, bt.Y, sb.Radius, at.X, at.Y, sa.HalfW, sa.HalfH)
		case geom.Box:
			return geom.BoxesOverlap(at.X, at.Y, sa.HalfW, sa.HalfH, bt.X, bt.Y, sb.HalfW, sb.HalfH)
		}
	}
	return false
}
