package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-chicken-run/internal/config"
)

func TestFillWidth(t *testing.T) {
	b := ResourceBar{Width: 300, Height: 10}
	assert.Equal(t, float32(300), b.FillWidth(100, 100))
	assert.Equal(t, float32(150), b.FillWidth(50, 100))
	assert.Equal(t, float32(0), b.FillWidth(0, 100))
	assert.Equal(t, float32(0), b.FillWidth(-5, 100))
	assert.Equal(t, float32(300), b.FillWidth(120, 100))
	assert.Equal(t, float32(99), b.FillWidth(33, 100))
	assert.Equal(t, float32(0), b.FillWidth(10, 0))
}

func TestNewHUDLayout(t *testing.T) {
	h := NewHUD(config.Default())
	assert.Equal(t, float32(350), h.Health.X)
	assert.Equal(t, float32(860), h.Health.Y)
	assert.Equal(t, float32(880), h.Stamina.Y)
	assert.Equal(t, config.HealthColor, h.Health.Fill)
	assert.Equal(t, config.StaminaLowColor, h.Stamina.Track)
}
