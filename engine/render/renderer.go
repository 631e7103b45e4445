package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/geom"
)

// LayerColors maps collision layers to draw colors (placeholder until real sprites)
var LayerColors = map[core.Layer]color.RGBA{
	core.LayerObstacle:   {96, 96, 108, 255},   // slate
	core.LayerPickup:     {255, 215, 0, 255},   // gold
	core.LayerEnemy:      {196, 44, 44, 255},   // blood red
	core.LayerPlayer:     {64, 200, 88, 255},   // green
	core.LayerProjectile: {255, 240, 130, 255}, // pale yellow
}

var healthDropColor = color.RGBA{240, 92, 140, 255}

// drawOrder paints static geometry first and projectiles last
var drawOrder = []core.Layer{
	core.LayerObstacle,
	core.LayerPickup,
	core.LayerEnemy,
	core.LayerPlayer,
	core.LayerProjectile,
}

// Renderer draws a published entity snapshot as flat shapes through
// the camera. It reads the snapshot only, never the live lists, so it
// is safe on the ebiten thread while the simulation ticks.
type Renderer struct {
	Camera *Camera
}

func NewRenderer(cam *Camera) *Renderer {
	return &Renderer{Camera: cam}
}

// Draw renders all visible entities layer by layer
func (r *Renderer) Draw(screen *ebiten.Image, entities []*core.Entity) {
	minX, minY, maxX, maxY := r.Camera.VisibleRect(64)

	for _, layer := range drawOrder {
		for _, e := range entities {
			if !e.IsActive() {
				continue
			}
			trC, ok := e.GetComponent(core.CompTransform)
			if !ok {
				continue
			}
			colC, ok := e.GetComponent(core.CompCollider)
			if !ok {
				continue
			}
			col := colC.(*core.Collider)
			if col.Layer != layer {
				continue
			}
			t := trC.(*core.Transform)
			if t.X < minX || t.X > maxX || t.Y < minY || t.Y > maxY {
				continue
			}
			r.drawEntity(screen, e, t, col)
		}
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e *core.Entity, t *core.Transform, col *core.Collider) {
	sx, sy := r.Camera.WorldToScreen(t.X, t.Y)
	z := r.Camera.Zoom
	clr := r.colorFor(e, col)

	switch s := col.Shape.(type) {
	case geom.Circle:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(s.Radius*z), clr, false)
	case geom.Box:
		vector.DrawFilledRect(screen,
			float32(sx-s.HalfW*z), float32(sy-s.HalfH*z),
			float32(s.HalfW*2*z), float32(s.HalfH*2*z), clr, false)
	}

	bound := col.Shape.BoundRadius()

	// Facing tick on armed entities
	if e.HasComponent(core.CompWeapon) {
		fx := t.X + math.Cos(t.Facing)*(bound+6)
		fy := t.Y + math.Sin(t.Facing)*(bound+6)
		ex, ey := r.Camera.WorldToScreen(fx, fy)
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), 2, color.RGBA{230, 230, 230, 255}, false)
	}

	if hpC, ok := e.GetComponent(core.CompHealth); ok {
		hp := hpC.(*core.Health)
		if hp.Current < hp.Max {
			DrawHealthBar(screen, sx, sy-(bound*z+8), hp.Ratio(), bound*2*z)
		}
	}
}

// colorFor picks the entity's draw color; health drops get their own
func (r *Renderer) colorFor(e *core.Entity, col *core.Collider) color.RGBA {
	if col.Layer == core.LayerPickup {
		if puC, ok := e.GetComponent(core.CompPickup); ok && puC.(*core.Pickup).Kind == core.PickupHealth {
			return healthDropColor
		}
	}
	clr, ok := LayerColors[col.Layer]
	if !ok {
		clr = color.RGBA{255, 0, 255, 255}
	}
	return clr
}

// DrawHealthBar draws a health bar centered above a screen position
func DrawHealthBar(screen *ebiten.Image, sx, sy float64, ratio, width float64) {
	barH := float32(4)
	barW := float32(width)
	bx := float32(sx) - barW/2
	by := float32(sy)

	// Background
	vector.DrawFilledRect(screen, bx, by, barW, barH, color.RGBA{40, 40, 40, 200}, false)

	// Health fill
	vector.DrawFilledRect(screen, bx, by, barW*float32(ratio), barH, healthColor(ratio), false)
}

func healthColor(ratio float64) color.RGBA {
	if ratio > 0.6 {
		return color.RGBA{0, 200, 0, 255}
	}
	if ratio > 0.3 {
		return color.RGBA{255, 200, 0, 255}
	}
	return color.RGBA{255, 0, 0, 255}
}
