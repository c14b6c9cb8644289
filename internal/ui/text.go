// internal/ui/text.go
package ui

import (
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used by the screens.
type Fonts struct {
	Title text.Face
	Body  text.Face
}

// LoadFonts parses the bundled Go Regular font. basicfont is used if that fails.
func LoadFonts() *Fonts {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		slog.Warn("failed to parse font, using basicfont", "error", err)
		return fallbackFonts()
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 50, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		slog.Warn("failed to create title face, using basicfont", "error", err)
		return fallbackFonts()
	}
	body, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 28, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		slog.Warn("failed to create body face, using basicfont", "error", err)
		return fallbackFonts()
	}
	return &Fonts{Title: text.NewGoXFace(title), Body: text.NewGoXFace(body)}
}

func fallbackFonts() *Fonts {
	face := text.NewGoXFace(basicfont.Face7x13)
	return &Fonts{Title: face, Body: face}
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// DrawCentered draws s centred horizontally on the screen at height y.
func DrawCentered(screen *ebiten.Image, s string, face text.Face, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	x := (float64(screen.Bounds().Dx()) - w) / 2
	DrawText(screen, s, face, x, y, clr)
}

// DrawLines draws each line of s starting at (x, y), lineHeight apart.
func DrawLines(screen *ebiten.Image, s string, face text.Face, x, y, lineHeight float64, clr color.Color) {
	for i, line := range strings.Split(s, "\n") {
		DrawText(screen, line, face, x, y+float64(i)*lineHeight, clr)
	}
}
