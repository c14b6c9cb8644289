package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 100, 0, 255}, DarkenColor(color.RGBA{100, 200, 1, 255}))
}

func TestScaleColorClamps(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 200, 0, 128}, ScaleColor(color.RGBA{200, 100, 0, 128}, 2))
	assert.Equal(t, color.RGBA{0, 0, 0, 10}, ScaleColor(color.RGBA{200, 100, 50, 10}, -1))
}
