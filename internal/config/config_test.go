package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.InDelta(t, 45.0, s.ItemSize(), 1e-9)
	assert.Equal(t, time.Second/30, s.TickDuration())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte(`
window_width: 800
window_height: 600
keyboard_layout: WASD
player:
  speed: 5
waves:
  interval: 2s
item:
  effect: 10s
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, s.WindowWidth)
	assert.Equal(t, 600, s.WindowHeight)
	assert.Equal(t, LayoutWASD, s.KeyboardLayout)
	assert.Equal(t, 5.0, s.Player.Speed)
	assert.Equal(t, 2*time.Second, s.Waves.Interval)
	assert.Equal(t, 10*time.Second, s.Item.Effect)
	// untouched values keep their defaults
	assert.Equal(t, 25, s.TileSize)
	assert.Equal(t, "Poulet", s.Player.Name)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_width: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero tile", func(s *Settings) { s.TileSize = 0 }},
		{"negative width", func(s *Settings) { s.WindowWidth = -1 }},
		{"zero fps", func(s *Settings) { s.FPS = 0 }},
		{"odd tile rows", func(s *Settings) { s.WindowHeight = 875 }},
		{"layout", func(s *Settings) { s.KeyboardLayout = "dvorak" }},
		{"speed", func(s *Settings) { s.Player.Speed = 0 }},
		{"max health", func(s *Settings) { s.Player.MaxHealth = 0 }},
		{"wave interval", func(s *Settings) { s.Waves.Interval = 0 }},
		{"max enemies", func(s *Settings) { s.Waves.MaxEnemies = 0 }},
		{"spawn chance", func(s *Settings) { s.Item.SpawnChance = 1.5 }},
		{"volume", func(s *Settings) { s.Volume = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}
