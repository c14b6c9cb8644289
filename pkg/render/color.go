// pkg/render/color.go
package render

import "image/color"

// MapColors holds the colors used around the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA // zero alpha disables grid lines
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by k, clamped to [0, 255].
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * k
		switch {
		case f <= 0:
			return 0
		case f >= 255:
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
