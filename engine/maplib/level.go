package maplib

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// Obstacle shape names as stored in level files
const (
	ShapeCircle = "circle"
	ShapeBox    = "box"
)

// Obstacle is one static blocker in the arena
type Obstacle struct {
	Shape  string  `json:"shape"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius,omitempty"`
	HalfW  float64 `json:"half_w,omitempty"`
	HalfH  float64 `json:"half_h,omitempty"`
}

// boundRadius is the obstacle's loose bounding circle, used for
// placement spacing
func (o *Obstacle) boundRadius() float64 {
	if o.Shape == ShapeCircle {
		return o.Radius
	}
	return math.Hypot(o.HalfW, o.HalfH)
}

// StartPos is the player's spawn point
type StartPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Level describes one arena: its bounds, border wall thickness, the
// player start and the static obstacles
type Level struct {
	Name        string     `json:"name"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	Wall        float64    `json:"wall"`
	PlayerStart StartPos   `json:"player_start"`
	Obstacles   []Obstacle `json:"obstacles"`
}

const (
	startClearance = 120.0 // no obstacles this close to the player start
	obstacleGap    = 12.0  // minimum space between generated obstacles
	placeAttempts  = 60
)

// Generate creates a random arena: four border walls plus scattered
// rocks and crates, keeping the player start clear. The same seed
// yields the same arena.
func Generate(name string, width, height float64, seed int64) *Level {
	rng := rand.New(rand.NewSource(seed))
	l := &Level{
		Name:        name,
		Width:       width,
		Height:      height,
		Wall:        16,
		PlayerStart: StartPos{X: width / 2, Y: height / 2},
	}

	// Border walls
	hw := width / 2
	hh := height / 2
	t := l.Wall / 2
	l.Obstacles = append(l.Obstacles,
		Obstacle{Shape: ShapeBox, X: hw, Y: t, HalfW: hw, HalfH: t},
		Obstacle{Shape: ShapeBox, X: hw, Y: height - t, HalfW: hw, HalfH: t},
		Obstacle{Shape: ShapeBox, X: t, Y: hh, HalfW: t, HalfH: hh},
		Obstacle{Shape: ShapeBox, X: width - t, Y: hh, HalfW: t, HalfH: hh},
	)

	rocks := int(width * height / 60000)
	for i := 0; i < rocks; i++ {
		o := Obstacle{Shape: ShapeCircle, Radius: 12 + rng.Float64()*16}
		l.scatter(rng, &o)
	}
	crates := rocks / 2
	for i := 0; i < crates; i++ {
		o := Obstacle{Shape: ShapeBox, HalfW: 16 + rng.Float64()*24, HalfH: 16 + rng.Float64()*24}
		l.scatter(rng, &o)
	}

	return l
}

// scatter places the obstacle at a random clear spot, or drops it
// after too many rejections
func (l *Level) scatter(rng *rand.Rand, o *Obstacle) {
	r := o.boundRadius()
	minX := l.Wall + r + obstacleGap
	maxX := l.Width - l.Wall - r - obstacleGap
	minY := l.Wall + r + obstacleGap
	maxY := l.Height - l.Wall - r - obstacleGap
	if maxX <= minX || maxY <= minY {
		return
	}

	for attempt := 0; attempt < placeAttempts; attempt++ {
		o.X = minX + rng.Float64()*(maxX-minX)
		o.Y = minY + rng.Float64()*(maxY-minY)

		if math.Hypot(o.X-l.PlayerStart.X, o.Y-l.PlayerStart.Y) < startClearance+r {
			continue
		}
		clear := true
		// Skip the four border walls when spacing
		for i := 4; i < len(l.Obstacles); i++ {
			other := &l.Obstacles[i]
			if math.Hypot(o.X-other.X, o.Y-other.Y) < r+other.boundRadius()+obstacleGap {
				clear = false
				break
			}
		}
		if clear {
			l.Obstacles = append(l.Obstacles, *o)
			return
		}
	}
}

// Validate checks the level is usable before entities are built from
// it, so broken files fail at load instead of panicking mid-game
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("maplib: level %q has non-positive bounds %gx%g", l.Name, l.Width, l.Height)
	}
	if l.PlayerStart.X < 0 || l.PlayerStart.X > l.Width || l.PlayerStart.Y < 0 || l.PlayerStart.Y > l.Height {
		return fmt.Errorf("maplib: level %q player start (%g, %g) outside bounds", l.Name, l.PlayerStart.X, l.PlayerStart.Y)
	}
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		switch o.Shape {
		case ShapeCircle:
			if o.Radius <= 0 {
				return fmt.Errorf("maplib: level %q obstacle %d has radius %g", l.Name, i, o.Radius)
			}
		case ShapeBox:
			if o.HalfW <= 0 || o.HalfH <= 0 {
				return fmt.Errorf("maplib: level %q obstacle %d has extents %gx%g", l.Name, i, o.HalfW, o.HalfH)
			}
		default:
			return fmt.Errorf("maplib: level %q obstacle %d has unknown shape %q", l.Name, i, o.Shape)
		}
	}
	return nil
}

// Inner returns the playable rectangle inset from the border walls by
// the given margin
func (l *Level) Inner(margin float64) (minX, minY, maxX, maxY float64) {
	inset := l.Wall + margin
	return inset, inset, l.Width - inset, l.Height - inset
}

// Build admits one obstacle entity per definition and returns how
// many were queued. They join the simulation at the next tick.
func (l *Level) Build(loop *core.GameLoop) int {
	n := 0
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		e := core.NewEntity()
		e.AddComponent(&core.Transform{X: o.X, Y: o.Y})
		switch o.Shape {
		case ShapeCircle:
			e.AddComponent(core.NewCircleCollider(o.Radius, core.LayerObstacle))
		case ShapeBox:
			e.AddComponent(core.NewBoxCollider(o.HalfW*2, o.HalfH*2, core.LayerObstacle))
		default:
			continue
		}
		loop.AddEntity(e)
		n++
	}
	return n
}

// SaveJSON saves the level to a JSON file
func (l *Level) SaveJSON(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads and validates a level from a JSON file
func LoadJSON(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}
