// Headless load harness for the simulation core.
//
// Profiling:
// go build ./cmd/stress
// ./stress -enemies 2000 -ticks 3600 -cpuprofile
// go tool pprof -http=":8000" ./stress cpu.pprof

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/profile"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/maplib"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/spawn"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/systems"
)

func main() {
	enemies := flag.Int("enemies", 1000, "Enemies packed into the arena")
	ticks := flag.Int("ticks", 1800, "Fixed-step ticks to simulate")
	cellSize := flag.Float64("cellsize", 64, "Spatial grid cell size")
	worldW := flag.Float64("width", 3200, "Arena width")
	worldH := flag.Float64("height", 2400, "Arena height")
	seed := flag.Int64("seed", 1, "Arena and placement seed")
	cpuprofile := flag.Bool("cpuprofile", false, "Write cpu.pprof")
	memprofile := flag.Bool("memprofile", false, "Write mem.pprof instead")
	flag.Parse()

	if *cpuprofile {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		defer p.Stop()
	} else if *memprofile {
		p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
		defer p.Stop()
	}

	loop := core.NewGameLoop()
	bus := core.NewEventBus()
	session := core.NewSession()
	session.Observe(bus)

	level := maplib.Generate("stress", *worldW, *worldH, *seed)
	obstacles := level.Build(loop)

	player := core.NewEntity()
	player.AddComponent(&core.Transform{X: level.PlayerStart.X, Y: level.PlayerStart.Y})
	player.AddComponent(&core.Velocity{})
	player.AddComponent(core.NewCircleCollider(10, core.LayerPlayer))
	player.AddComponent(&core.Health{Current: 1 << 30, Max: 1 << 30})
	player.AddComponent(&core.Weapon{Damage: 8, Range: 260, Cooldown: 0.35, Speed: 420, Life: 1.5})
	loop.AddEntity(player)
	session.SetPlayer(player.ID)

	combat := &systems.CombatSystem{Loop: loop, EventBus: bus}
	pickups := &systems.PickupSystem{Loop: loop, EventBus: bus}
	loop.AddSystem(systems.NewChaseSystem())
	loop.AddSystem(&systems.MovementSystem{})
	loop.AddSystem(systems.NewCollisionResponseSystem())
	loop.AddSystem(systems.NewCollisionSystem(*cellSize, func(p systems.CollisionPair) {
		combat.Collect(p)
		pickups.Collect(p)
	}))
	loop.AddSystem(combat)
	loop.AddSystem(&systems.WeaponSystem{Loop: loop, EventBus: bus})
	loop.AddSystem(pickups)
	loop.AddSystem(&systems.LifetimeSystem{})
	loop.AddSystem(&systems.SessionSystem{Loop: loop, Session: session, EventBus: bus})

	bestiary := spawn.NewBestiary()
	pool := bestiary.Unlocked(99)
	rng := rand.New(rand.NewSource(*seed))
	minX, minY, maxX, maxY := level.Inner(48)
	for i := 0; i < *enemies; i++ {
		def := pool[rng.Intn(len(pool))]
		x := minX + rng.Float64()*(maxX-minX)
		y := minY + rng.Float64()*(maxY-minY)
		loop.AddEntity(def.Build(x, y, player.ID))
	}

	const dt = 1.0 / 60
	var worst time.Duration
	start := time.Now()
	for i := 0; i < *ticks; i++ {
		t0 := time.Now()
		loop.Update(dt)
		if d := time.Since(t0); d > worst {
			worst = d
		}
	}
	total := time.Since(start)

	fmt.Printf("arena %gx%g, %d obstacles, %d enemies\n", *worldW, *worldH, obstacles, *enemies)
	fmt.Printf("%d ticks in %v (avg %v, worst %v)\n", *ticks, total, total/time.Duration(*ticks), worst)
	fmt.Printf("entities alive %d, kills %d, score %d, sim time %.1fs\n",
		loop.EntityCount(), session.Kills.Load(), session.Score.Load(), session.Elapsed())
}
