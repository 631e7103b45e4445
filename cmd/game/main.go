package main

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/input"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/maplib"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/render"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/spawn"
	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/systems"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	WorldWidth  = 1600.0
	WorldHeight = 1200.0

	GridCellSize = 64.0

	PlayerRadius = 10.0
	PlayerHP     = 100
	PlayerSpeed  = 170.0
)

// ---- Game ----

type Game struct {
	loop     *core.GameLoop
	bus      *core.EventBus
	session  *core.Session
	director *spawn.Director
	level    *maplib.Level
	control  *systems.ControlState
	playerID core.EntityID

	camera   *render.Camera
	renderer *render.Renderer
	hud      *render.HUD
	input    *input.InputState

	showDebug bool
}

func NewGame() *Game {
	g := &Game{
		camera: render.NewCamera(ScreenWidth, ScreenHeight),
		hud:    render.NewHUD(ScreenWidth, ScreenHeight),
		input:  input.NewInputState(),
	}
	g.renderer = render.NewRenderer(g.camera)
	g.startWorld(time.Now().UnixNano())
	return g
}

// startWorld builds a fresh arena, player and horde and starts the
// simulation. Restart tears the old world down and calls it again.
func (g *Game) startWorld(seed int64) {
	g.loop = core.NewGameLoop()
	g.bus = core.NewEventBus()
	g.session = core.NewSession()
	g.session.Observe(g.bus)
	g.control = &systems.ControlState{}

	g.level = maplib.Generate("arena", WorldWidth, WorldHeight, seed)
	g.level.Build(g.loop)

	player := g.spawnPlayer()
	g.playerID = player.ID
	g.session.SetPlayer(player.ID)

	combat := &systems.CombatSystem{Loop: g.loop, EventBus: g.bus}
	pickups := &systems.PickupSystem{Loop: g.loop, EventBus: g.bus}

	g.loop.AddSystem(&systems.PlayerControlSystem{Control: g.control, Session: g.session, Speed: PlayerSpeed})
	g.loop.AddSystem(systems.NewChaseSystem())
	g.loop.AddSystem(&systems.MovementSystem{})
	g.loop.AddSystem(systems.NewCollisionResponseSystem())
	g.loop.AddSystem(systems.NewCollisionSystem(GridCellSize, func(p systems.CollisionPair) {
		combat.Collect(p)
		pickups.Collect(p)
	}))
	g.loop.AddSystem(combat)
	g.loop.AddSystem(&systems.WeaponSystem{Loop: g.loop, EventBus: g.bus})
	g.loop.AddSystem(pickups)
	g.loop.AddSystem(&systems.LifetimeSystem{})
	g.loop.AddSystem(&systems.SessionSystem{Loop: g.loop, Session: g.session, EventBus: g.bus})

	minX, minY, maxX, maxY := g.level.Inner(32)
	bounds := spawn.SpawnBounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	g.director = spawn.NewDirector(g.loop, g.bus, g.session, spawn.NewBestiary(), bounds, seed)

	g.camera.SetWorldBounds(g.level.Width, g.level.Height)
	g.camera.Follow(g.level.PlayerStart.X, g.level.PlayerStart.Y)

	g.loop.Start()
	g.director.Start()
}

func (g *Game) stopWorld() {
	g.director.Stop()
	g.loop.Stop()
}

func (g *Game) spawnPlayer() *core.Entity {
	e := core.NewEntity()
	e.AddComponent(&core.Transform{X: g.level.PlayerStart.X, Y: g.level.PlayerStart.Y})
	e.AddComponent(&core.Velocity{})
	e.AddComponent(core.NewCircleCollider(PlayerRadius, core.LayerPlayer))
	e.AddComponent(&core.Health{Current: PlayerHP, Max: PlayerHP})
	e.AddComponent(&core.Weapon{Damage: 8, Range: 260, Cooldown: 0.35, Speed: 420, Life: 1.5})
	g.loop.AddEntity(e)
	return e
}

func (g *Game) findPlayer() *core.Entity {
	for _, e := range g.loop.Snapshot() {
		if e.ID == g.playerID && e.IsActive() {
			return e
		}
	}
	return nil
}

// ---- Ebiten hooks ----

func (g *Game) Update() error {
	g.input.Update()

	if g.input.PauseJustPressed && !g.session.IsOver() {
		if g.loop.IsPaused() {
			g.loop.Resume()
		} else {
			g.loop.Pause()
		}
	}
	if g.input.RestartJustPressed && g.session.IsOver() {
		g.stopWorld()
		g.startWorld(time.Now().UnixNano())
	}
	if g.input.DebugJustPressed {
		g.showDebug = !g.showDebug
	}

	g.control.Set(g.input.MoveX, g.input.MoveY)

	if g.input.ScrollY != 0 {
		mx, my := ebiten.CursorPosition()
		g.camera.ZoomAt(g.input.ScrollY*0.1, mx, my)
	}

	if p := g.findPlayer(); p != nil {
		if c, ok := p.GetComponent(core.CompTransform); ok {
			t := c.(*core.Transform)
			g.camera.Follow(t.X, t.Y)
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 22, 28, 255})

	snapshot := g.loop.Snapshot()
	g.renderer.Draw(screen, snapshot)
	g.hud.Draw(screen, g.session, g.findPlayer())

	if g.session.IsOver() {
		g.hud.DrawGameOver(screen, g.session)
	} else if g.loop.IsPaused() {
		g.hud.DrawPaused(screen)
	}
	if g.showDebug {
		g.hud.Debug(screen, len(snapshot))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// ---- Entry point ----

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Nightmare Horde")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
