// internal/ui/bars.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-run/internal/config"
)

// ResourceBar draws a value/max gauge over a darker track.
type ResourceBar struct {
	X, Y          float32
	Width, Height float32
	Fill, Track   color.RGBA
}

// FillWidth is the filled length for value out of max, clamped to the bar.
func (b ResourceBar) FillWidth(value, max int) float32 {
	if max <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return b.Width
	}
	return float32(int(b.Width * float32(value) / float32(max)))
}

func (b ResourceBar) Draw(screen *ebiten.Image, value, max int) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, b.Track, false)
	if w := b.FillWidth(value, max); w > 0 {
		vector.DrawFilledRect(screen, b.X, b.Y, w, b.Height, b.Fill, false)
	}
}

// HUD is the health and stamina pair centred at the bottom of the window.
type HUD struct {
	Health  ResourceBar
	Stamina ResourceBar
}

func NewHUD(settings config.Settings) *HUD {
	x := float32(settings.WindowWidth/2 - config.HealthBarWidth/2)
	h := float32(settings.WindowHeight)
	return &HUD{
		Health: ResourceBar{
			X: x, Y: h - 40,
			Width: config.HealthBarWidth, Height: config.HealthBarHeight,
			Fill: config.HealthColor, Track: config.HealthLowColor,
		},
		Stamina: ResourceBar{
			X: x, Y: h - 20,
			Width: config.HealthBarWidth, Height: config.HealthBarHeight,
			Fill: config.StaminaColor, Track: config.StaminaLowColor,
		},
	}
}

func (h *HUD) Draw(screen *ebiten.Image, health, maxHealth, stamina, maxStamina int) {
	h.Health.Draw(screen, health, maxHealth)
	h.Stamina.Draw(screen, stamina, maxStamina)
}
