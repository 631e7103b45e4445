package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// HUD draws the run state on top of the scene
type HUD struct {
	ScreenW int
	ScreenH int
}

func NewHUD(screenW, screenH int) *HUD {
	return &HUD{ScreenW: screenW, ScreenH: screenH}
}

// Draw renders the score block and the player's health bar
func (h *HUD) Draw(screen *ebiten.Image, s *core.Session, player *core.Entity) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %06d", s.Score.Load()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE  %d", s.Wave.Load()), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("KILLS %d", s.Kills.Load()), 10, 42)
	el := int(s.Elapsed())
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TIME  %d:%02d", el/60, el%60), 10, 58)

	if player == nil {
		return
	}
	hpC, ok := player.GetComponent(core.CompHealth)
	if !ok {
		return
	}
	hp := hpC.(*core.Health)
	ratio := hp.Ratio()

	const barW = 180
	x := float32(10)
	y := float32(h.ScreenH - 26)
	vector.DrawFilledRect(screen, x, y, barW, 12, color.RGBA{40, 40, 40, 200}, false)
	vector.DrawFilledRect(screen, x, y, barW*float32(ratio), 12, healthColor(ratio), false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d", hp.Current, hp.Max), 10+barW+8, h.ScreenH-28)
}

// DrawPaused dims the scene and shows the pause banner
func (h *HUD) DrawPaused(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.ScreenH), color.RGBA{0, 0, 0, 120}, false)
	h.center(screen, "PAUSED", h.ScreenH/2-10)
	h.center(screen, "PRESS P TO RESUME", h.ScreenH/2+10)
}

// DrawGameOver dims the scene and shows the final tally
func (h *HUD) DrawGameOver(screen *ebiten.Image, s *core.Session) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.ScreenH), color.RGBA{0, 0, 0, 160}, false)
	cy := h.ScreenH / 2
	h.center(screen, "GAME OVER", cy-32)
	el := int(s.Elapsed())
	tally := fmt.Sprintf("SCORE %d   KILLS %d   WAVE %d   TIME %d:%02d",
		s.Score.Load(), s.Kills.Load(), s.Wave.Load(), el/60, el%60)
	h.center(screen, tally, cy-8)
	h.center(screen, "PRESS R TO RESTART", cy+24)
}

// Debug prints engine vitals in the corner
func (h *HUD) Debug(screen *ebiten.Image, entityCount int) {
	line := fmt.Sprintf("TPS %.0f  FPS %.0f  ENTITIES %d", ebiten.ActualTPS(), ebiten.ActualFPS(), entityCount)
	ebitenutil.DebugPrintAt(screen, line, 10, h.ScreenH-46)
}

func (h *HUD) center(screen *ebiten.Image, s string, y int) {
	ebitenutil.DebugPrintAt(screen, s, h.ScreenW/2-len(s)*3, y)
}
