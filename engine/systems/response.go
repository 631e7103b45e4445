package systems

import (
	"math"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/geom"
)

// CollisionResponseSystem pushes movers (player, enemies) out of
// static obstacles after movement has applied this tick. The
// correction is a single pass along the minimum translation vector:
// a mover overlapping several obstacles at once may keep residual
// overlap until the next tick resolves it further. Obstacles never
// move.
type CollisionResponseSystem struct {
	movers    []*core.Entity
	obstacles []*core.Entity
}

func NewCollisionResponseSystem() *CollisionResponseSystem {
	return &CollisionResponseSystem{}
}

func (s *CollisionResponseSystem) Priority() int { return 20 }

func (s *CollisionResponseSystem) Update(entities []*core.Entity, dt float64) {
	s.movers = s.movers[:0]
	s.obstacles = s.obstacles[:0]
	for _, e := range entities {
		if !e.IsActive() {
			continue
		}
		col, ok := e.GetComponent(core.CompCollider)
		if !ok || !e.HasComponent(core.CompTransform) {
			continue
		}
		c := col.(*core.Collider)
		switch {
		case c.Layer == core.LayerPlayer || c.Layer == core.LayerEnemy:
			s.movers = append(s.movers, e)
		case c.Layer == core.LayerObstacle && !c.Trigger:
			s.obstacles = append(s.obstacles, e)
		}
	}

	for _, m := range s.movers {
		mtr, _ := m.GetComponent(core.CompTransform)
		mcol, _ := m.GetComponent(core.CompCollider)
		mt := mtr.(*core.Transform)
		mc := mcol.(*core.Collider)

		for _, o := range s.obstacles {
			otr, _ := o.GetComponent(core.CompTransform)
			ocol, _ := o.GetComponent(core.CompCollider)
			ot := otr.(*core.Transform)
			oc := ocol.(*core.Collider)

			// Conservative per-axis reject on combined extents
			reach := mc.Shape.BoundRadius() + oc.Shape.BoundRadius()
			if math.Abs(mt.X-ot.X) > reach || math.Abs(mt.Y-ot.Y) > reach {
				continue
			}

			dx, dy, ok := pushVector(mt, mc.Shape, ot, oc.Shape)
			if ok {
				mt.X += dx
				mt.Y += dy
			}
		}
	}
}

// pushVector computes the mover's minimum translation vector out of an
// obstacle by shape pair
func pushVector(mt *core.Transform, mover geom.Shape, ot *core.Transform, obstacle geom.Shape) (float64, float64, bool) {
	switch sm := mover.(type) {
	case geom.Circle:
		switch so := obstacle.(type) {
		case geom.Circle:
			return geom.PushCircleFromCircle(mt.X, mt.Y, sm.Radius, ot.X, ot.Y, so.Radius)
		case geom.Box:
			return geom.PushCircleFromBox(mt.X, mt.Y, sm.Radius, ot.X, ot.Y, so.HalfW, so.HalfH)
		}
	case geom.Box:
		switch so := obstacle.(type) {
		case geom.Circle:
			// Push the circle obstacle's MTV inverted onto the box mover
			dx, dy, ok := geom.PushCircleFromBox(ot.X, ot.Y, so.Radius, mt.X, mt.Y, sm.HalfW, sm.HalfH)
			return -dx, -dy, ok
		case geom.Box:
			return geom.PushBoxFromBox(mt.X, mt.Y, sm.HalfW, sm.HalfH, ot.X, ot.Y, so.HalfW, so.HalfH)
		}
	}
	return 0, 0, false
}
