package systems

import (
	"math"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// separationWeight scales the push between fellow chasers relative to
// their chase speed
const separationWeight = 0.6

type chaserRef struct {
	t *core.Transform
	c *core.Chase
	v *core.Velocity
}

// ChaseSystem steers chaser entities toward their target and softly
// apart from each other. It writes velocity only; MovementSystem
// applies it afterwards.
type ChaseSystem struct {
	chasers []chaserRef
	byID    map[core.EntityID]*core.Transform
}

func NewChaseSystem() *ChaseSystem {
	return &ChaseSystem{byID: make(map[core.EntityID]*core.Transform)}
}

func (s *ChaseSystem) Priority() int { return 5 }

func (s *ChaseSystem) Update(entities []*core.Entity, dt float64) {
	clear(s.byID)
	s.chasers = s.chasers[:0]

	for _, e := range entities {
		if !e.IsActive() {
			continue
		}
		tr, ok := e.GetComponent(core.CompTransform)
		if !ok {
			continue
		}
		t := tr.(*core.Transform)
		s.byID[e.ID] = t

		ch, ok := e.GetComponent(core.CompChase)
		if !ok {
			continue
		}
		vel, ok := e.GetComponent(core.CompVelocity)
		if !ok {
			continue
		}
		s.chasers = append(s.chasers, chaserRef{t: t, c: ch.(*core.Chase), v: vel.(*core.Velocity)})
	}

	for i := range s.chasers {
		ch := &s.chasers[i]
		target, ok := s.byID[ch.c.Target]
		if !ok {
			// Target dead or not yet admitted: stand still
			ch.v.VX = 0
			ch.v.VY = 0
			continue
		}

		dx := target.X - ch.t.X
		dy := target.Y - ch.t.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		var vx, vy float64
		if dist > 1e-6 {
			vx = dx / dist * ch.c.Speed
			vy = dy / dist * ch.c.Speed
		}

		if ch.c.Separation > 0 {
			sx, sy := s.separation(i)
			vx += sx * ch.c.Speed * separationWeight
			vy += sy * ch.c.Speed * separationWeight
		}

		ch.v.VX = vx
		ch.v.VY = vy
	}
}

// separation accumulates a normalized push away from nearby chasers
func (s *ChaseSystem) separation(i int) (float64, float64) {
	ch := &s.chasers[i]
	sep := ch.c.Separation
	var sx, sy float64
	for j := range s.chasers {
		if i == j {
			continue
		}
		o := &s.chasers[j]
		ox := ch.t.X - o.t.X
		oy := ch.t.Y - o.t.Y
		d2 := ox*ox + oy*oy
		if d2 >= sep*sep || d2 < 1e-9 {
			continue
		}
		d := math.Sqrt(d2)
		w := (sep - d) / sep
		sx += ox / d * w
		sy += oy / d * w
	}
	return sx, sy
}
