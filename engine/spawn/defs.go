package spawn

import (
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// EnemyDef defines an enemy archetype the director can spawn
type EnemyDef struct {
	Name      string
	Radius    float64
	HP        int
	Speed     float64
	Damage    int
	Every     float64 // seconds between contact hits
	Score     int
	Drop      core.PickupKind
	DropValue int
	MinWave   int
}

// Bestiary holds all enemy definitions
type Bestiary struct {
	Defs  map[string]*EnemyDef
	names []string
}

// NewBestiary creates the default horde roster
func NewBestiary() *Bestiary {
	b := &Bestiary{Defs: make(map[string]*EnemyDef)}

	b.Add(&EnemyDef{Name: "walker", Radius: 10, HP: 20, Speed: 55, Damage: 5, Every: 0.5, Score: 10, Drop: core.PickupScore, DropValue: 5, MinWave: 1})
	b.Add(&EnemyDef{Name: "runner", Radius: 7, HP: 10, Speed: 95, Damage: 3, Every: 0.4, Score: 15, Drop: core.PickupScore, DropValue: 10, MinWave: 2})
	b.Add(&EnemyDef{Name: "spitter", Radius: 9, HP: 16, Speed: 45, Damage: 8, Every: 0.6, Score: 20, Drop: core.PickupScore, DropValue: 10, MinWave: 3})
	b.Add(&EnemyDef{Name: "brute", Radius: 16, HP: 60, Speed: 35, Damage: 12, Every: 0.8, Score: 40, Drop: core.PickupHealth, DropValue: 20, MinWave: 5})

	return b
}

// Add registers a definition under its name
func (b *Bestiary) Add(d *EnemyDef) {
	if _, dup := b.Defs[d.Name]; !dup {
		b.names = append(b.names, d.Name)
	}
	b.Defs[d.Name] = d
}

// Get returns a definition by name
func (b *Bestiary) Get(name string) (*EnemyDef, bool) {
	d, ok := b.Defs[name]
	return d, ok
}

// Unlocked returns the archetypes available at the given wave, in
// registration order
func (b *Bestiary) Unlocked(wave int) []*EnemyDef {
	var out []*EnemyDef
	for _, n := range b.names {
		if d := b.Defs[n]; d.MinWave <= wave {
			out = append(out, d)
		}
	}
	return out
}

// Build assembles a live enemy entity from the definition, chasing
// the given target
func (d *EnemyDef) Build(x, y float64, target core.EntityID) *core.Entity {
	e := core.NewEntity()
	e.AddComponent(&core.Transform{X: x, Y: y})
	e.AddComponent(&core.Velocity{})
	e.AddComponent(core.NewCircleCollider(d.Radius, core.LayerEnemy))
	e.AddComponent(&core.Health{Current: d.HP, Max: d.HP})
	e.AddComponent(&core.Damage{Amount: d.Damage, Every: d.Every})
	e.AddComponent(&core.Chase{Speed: d.Speed, Separation: d.Radius * 2.5, Target: target})
	e.AddComponent(&core.Loot{Score: d.Score, Drop: d.Drop, Value: d.DropValue})
	return e
}
