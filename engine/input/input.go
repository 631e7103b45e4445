package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks keyboard and wheel state per frame
type InputState struct {
	// Movement direction from WASD or arrows, normalized
	MoveX, MoveY float64

	// Wheel
	ScrollY float64

	// One-shot actions this frame
	PauseJustPressed   bool
	RestartJustPressed bool
	DebugJustPressed   bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	var mx, my float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		my--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		my++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		mx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		mx++
	}
	// Diagonals move no faster than straights
	if mx != 0 && my != 0 {
		mx *= math.Sqrt2 / 2
		my *= math.Sqrt2 / 2
	}
	s.MoveX, s.MoveY = mx, my

	_, s.ScrollY = ebiten.Wheel()

	s.PauseJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	s.RestartJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	s.DebugJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
