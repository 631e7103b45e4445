package core

import (
	"math"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/geom"
)

// ---- Transform & Motion ----

// Transform is a world position and facing
type Transform struct {
	X, Y   float64 // world position in pixels
	Facing float64 // direction in radians (0 = east)
}

func (t *Transform) Type() ComponentType { return CompTransform }

// DistanceTo returns euclidean distance to another transform
func (t *Transform) DistanceTo(other *Transform) float64 {
	dx := t.X - other.X
	dy := t.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the angle from this transform to another
func (t *Transform) AngleTo(other *Transform) float64 {
	return math.Atan2(other.Y-t.Y, other.X-t.X)
}

// Velocity is a movement vector in pixels per second
type Velocity struct {
	VX, VY float64
}

func (v *Velocity) Type() ComponentType { return CompVelocity }

// ---- Collision ----

// Layer tags a collider for mask-based pair filtering
type Layer uint8

const (
	LayerPlayer Layer = iota
	LayerEnemy
	LayerProjectile
	LayerPickup
	LayerObstacle
)

// Mask is the set of layers a collider wants to test against. A pair
// is tested when either side's mask selects the other's layer, so a
// projectile can hit enemies without enemies listing projectiles.
type Mask uint8

const (
	MaskPlayer Mask = 1 << iota
	MaskEnemy
	MaskProjectile
	MaskPickup
	MaskObstacle
	MaskNone Mask = 0
	MaskAll  Mask = 0xFF
)

// Bit returns the mask bit for a layer
func (l Layer) Bit() Mask { return 1 << l }

// Collider gives an entity a collision shape on a layer
type Collider struct {
	Shape   geom.Shape
	Layer   Layer
	Mask    Mask
	Trigger bool // detected but never pushed against
}

func (c *Collider) Type() ComponentType { return CompCollider }

// QueryRadius returns the conservative broad-phase radius: twice the
// shape's bound so any overlapping neighbor's cell is covered
func (c *Collider) QueryRadius() float64 {
	return c.Shape.BoundRadius() * 2
}

// WantsLayer reports whether this collider's mask selects a layer
func (c *Collider) WantsLayer(l Layer) bool {
	return c.Mask&l.Bit() != 0
}

// NewCircleCollider builds a circle collider on a layer. Panics on a
// non-positive radius.
func NewCircleCollider(radius float64, layer Layer) *Collider {
	return &Collider{Shape: geom.NewCircle(radius), Layer: layer, Mask: MaskAll}
}

// NewBoxCollider builds a box collider on a layer. Panics on
// non-positive dimensions.
func NewBoxCollider(width, height float64, layer Layer) *Collider {
	return &Collider{Shape: geom.NewBox(width, height), Layer: layer, Mask: MaskAll}
}

// ---- Health & Combat ----

// Health represents hit points
type Health struct {
	Current int
	Max     int
}

func (h *Health) Type() ComponentType { return CompHealth }

func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// Damage deals contact damage to whatever the collider pairs with
type Damage struct {
	Amount      int
	Once        bool    // deactivate the dealer after its first hit (projectiles)
	Every       float64 // seconds between hits from this dealer, 0 hits every tick
	CooldownNow float64
}

func (d *Damage) Type() ComponentType { return CompDamage }

// Weapon fires projectiles at the nearest hostile in range
type Weapon struct {
	Damage      int
	Range       float64 // acquisition range in pixels
	Cooldown    float64 // seconds between shots
	CooldownNow float64
	Speed       float64 // projectile speed in pixels per second
	Life        float64 // projectile lifetime in seconds
}

func (w *Weapon) Type() ComponentType { return CompWeapon }

// ---- Lifetime ----

// Lifetime despawns an entity after a countdown
type Lifetime struct {
	Remaining float64 // seconds
}

func (l *Lifetime) Type() ComponentType { return CompLifetime }

// ---- Relations ----

// Owner stores the id of the entity that spawned this one. Raw id,
// resolved by lookup at use time, never a live reference.
type Owner struct {
	ID EntityID
}

func (o *Owner) Type() ComponentType { return CompOwner }

// Chase steers an entity toward a target entity id
type Chase struct {
	Speed      float64  // pixels per second
	Separation float64  // soft push radius against fellow chasers
	Target     EntityID // raw id, may be dead; chasers idle then
}

func (c *Chase) Type() ComponentType { return CompChase }

// ---- Pickups ----

type PickupKind uint8

const (
	PickupScore PickupKind = iota
	PickupHealth
)

// Pickup is collectable loot
type Pickup struct {
	Kind  PickupKind
	Value int
}

func (p *Pickup) Type() ComponentType { return CompPickup }

// Loot is what an entity yields when killed
type Loot struct {
	Score int        // added to the session score
	Drop  PickupKind // pickup spawned at the death position
	Value int        // pickup value, 0 drops nothing
}

func (l *Loot) Type() ComponentType { return CompLoot }
