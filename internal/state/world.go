// internal/state/world.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-run/internal/app"
	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
)

const playerSprite = "hen"

// fireTint colours the hen while the power-up is active.
var fireTint = color.RGBA{255, 170, 60, 255}

func drawWorld(screen *ebiten.Image, shared *Shared, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	if shared.Tiles != nil {
		shared.Tiles.Draw(screen)
	}

	if shared.Sprites != nil {
		if snap.Pickup.Visible {
			r := snap.Pickup.Rect
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(r.X, r.Y)
			screen.DrawImage(shared.Sprites.PickupImage(component.Size{W: r.W, H: r.H}), op)
		}

		for _, e := range snap.Enemies {
			img := shared.Sprites.Frame(e.Sprite, e.Direction, e.Frame, e.Size)
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(e.Position.X, e.Position.Y)
			screen.DrawImage(img, op)
		}

		p := snap.Player
		if img := shared.Sprites.Frame(playerSprite, p.Direction, p.Frame, p.Size); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(p.Position.X, p.Position.Y)
			if p.OnFire {
				op.ColorScale.ScaleWithColor(fireTint)
			}
			screen.DrawImage(img, op)
		}
	}

	if a := snap.Player.OverlayAlpha; a > 0 {
		overlay := config.DamageColor
		overlay.A = uint8(a)
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), premultiplied(overlay), false)
	}

	if shared.HUD != nil {
		p := snap.Player
		shared.HUD.Draw(screen, p.Health, p.MaxHealth, p.Stamina, p.MaxStamina)
	}
}

// premultiplied converts a straight-alpha color to the premultiplied form
// color.RGBA expects.
func premultiplied(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
