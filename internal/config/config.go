// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings wraps every settings validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

const (
	MapNoiseResolution = 2 // gradient cells per axis for the tile map
	SpriteFrames       = 4 // animation frames per direction
	AnimationSpeed     = 0.1
	HealthBarWidth     = 300
	HealthBarHeight    = 10
	GameOverScreenTime = 5 * time.Second
	MaxDeltaTime       = 0.1 // seconds, caps the frame delta after a stall

	LayoutZQSD = "zqsd"
	LayoutWASD = "wasd"
)

// PlayerSettings holds the player's tunables.
type PlayerSettings struct {
	Name             string        `yaml:"name"`
	Speed            float64       `yaml:"speed"`
	HealthRegen      float64       `yaml:"health_regen"`
	MaxHealth        int           `yaml:"max_health"`
	MaxStamina       int           `yaml:"max_stamina"`
	DashCost         int           `yaml:"dash_cost"`
	DashMultiplier   float64       `yaml:"dash_multiplier"`
	BorderDamage     int           `yaml:"border_damage"`
	BorderDashDamage int           `yaml:"border_dash_damage"`
	Invincibility    time.Duration `yaml:"invincibility"`
	HealStep         time.Duration `yaml:"heal_step"`
	HealCooldown     time.Duration `yaml:"heal_cooldown"`
}

// WaveSettings controls the enemy spawner.
type WaveSettings struct {
	Interval   time.Duration `yaml:"interval"`
	MaxEnemies int           `yaml:"max_enemies"`
	// EnemyDefs optionally points at a JSON file replacing the built-in archetypes.
	EnemyDefs string `yaml:"enemy_defs"`
}

// ItemSettings controls the fire power-up.
type ItemSettings struct {
	SpawnChance float64       `yaml:"spawn_chance"`
	Effect      time.Duration `yaml:"effect"`
	SizeFactor  float64       `yaml:"size_factor"`
}

// Settings is passed explicitly to every component that needs it.
type Settings struct {
	WindowWidth    int     `yaml:"window_width"`
	WindowHeight   int     `yaml:"window_height"`
	TileSize       int     `yaml:"tile_size"`
	FPS            int     `yaml:"fps"`
	KeyboardLayout string  `yaml:"keyboard_layout"`
	Fullscreen     bool    `yaml:"fullscreen"`
	MapSeed        int64   `yaml:"map_seed"`
	Seed           int64   `yaml:"seed"` // 0 seeds gameplay randomness from the clock
	StatsPath      string  `yaml:"stats_path"`
	AssetsDir      string  `yaml:"assets_dir"`
	Audio          bool    `yaml:"audio"`
	Volume         float64 `yaml:"volume"`

	Player PlayerSettings `yaml:"player"`
	Waves  WaveSettings   `yaml:"waves"`
	Item   ItemSettings   `yaml:"item"`
}

// Default returns the stock game settings.
func Default() Settings {
	return Settings{
		WindowWidth:    1000,
		WindowHeight:   900,
		TileSize:       25,
		FPS:            30,
		KeyboardLayout: LayoutZQSD,
		StatsPath:      "stats.json",
		AssetsDir:      "assets",
		Audio:          true,
		Volume:         0.3,
		Player: PlayerSettings{
			Name:             "Poulet",
			Speed:            10,
			HealthRegen:      0.01,
			MaxHealth:        100,
			MaxStamina:       100,
			DashCost:         40,
			DashMultiplier:   5,
			BorderDamage:     10,
			BorderDashDamage: 100,
			Invincibility:    time.Second,
			HealStep:         time.Second,
			HealCooldown:     5 * time.Second,
		},
		Waves: WaveSettings{
			Interval:   3000 * time.Millisecond,
			MaxEnemies: 9,
		},
		Item: ItemSettings{
			SpawnChance: 0.002,
			Effect:      5 * time.Second,
			SizeFactor:  1.8,
		},
	}
}

// Load reads a YAML settings file over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, s.Validate()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, s.Validate()
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.KeyboardLayout = strings.ToLower(s.KeyboardLayout)
	return s, s.Validate()
}

// ItemSize is the pickup's side length in pixels.
func (s Settings) ItemSize() float64 {
	return float64(s.TileSize) * s.Item.SizeFactor
}

// TickDuration is the nominal time between two simulation ticks.
func (s Settings) TickDuration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// Validate reports the first configuration error found.
func (s Settings) Validate() error {
	switch {
	case s.WindowWidth <= 0 || s.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.WindowWidth, s.WindowHeight)
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidSettings, s.TileSize)
	case s.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidSettings, s.FPS)
	}
	rows, cols := s.WindowHeight/s.TileSize, s.WindowWidth/s.TileSize
	if rows == 0 || cols == 0 || rows%MapNoiseResolution != 0 || cols%MapNoiseResolution != 0 {
		return fmt.Errorf("%w: %dx%d tile grid is not divisible by map resolution %d",
			ErrInvalidSettings, rows, cols, MapNoiseResolution)
	}
	if s.KeyboardLayout != LayoutZQSD && s.KeyboardLayout != LayoutWASD {
		return fmt.Errorf("%w: unknown keyboard layout %q", ErrInvalidSettings, s.KeyboardLayout)
	}

	p := s.Player
	switch {
	case p.Speed <= 0 || p.DashMultiplier <= 0:
		return fmt.Errorf("%w: player speed %v, dash multiplier %v", ErrInvalidSettings, p.Speed, p.DashMultiplier)
	case p.MaxHealth <= 0 || p.MaxStamina <= 0:
		return fmt.Errorf("%w: max health %d, max stamina %d", ErrInvalidSettings, p.MaxHealth, p.MaxStamina)
	case p.DashCost < 0 || p.BorderDamage < 0 || p.BorderDashDamage < 0:
		return fmt.Errorf("%w: negative player cost or damage", ErrInvalidSettings)
	case p.Invincibility < 0 || p.HealStep <= 0 || p.HealCooldown < 0:
		return fmt.Errorf("%w: player timers", ErrInvalidSettings)
	}

	switch {
	case s.Waves.Interval <= 0:
		return fmt.Errorf("%w: wave interval %v", ErrInvalidSettings, s.Waves.Interval)
	case s.Waves.MaxEnemies < 1:
		return fmt.Errorf("%w: max enemies per wave %d", ErrInvalidSettings, s.Waves.MaxEnemies)
	case s.Item.SpawnChance < 0 || s.Item.SpawnChance > 1:
		return fmt.Errorf("%w: item spawn chance %v", ErrInvalidSettings, s.Item.SpawnChance)
	case s.Item.Effect <= 0 || s.Item.SizeFactor <= 0:
		return fmt.Errorf("%w: item effect %v, size factor %v", ErrInvalidSettings, s.Item.Effect, s.Item.SizeFactor)
	case s.Volume < 0 || s.Volume > 1:
		return fmt.Errorf("%w: volume %v", ErrInvalidSettings, s.Volume)
	}
	return nil
}

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	HealthColor     = color.RGBA{78, 253, 0, 255}
	HealthLowColor  = color.RGBA{254, 0, 2, 255}
	StaminaColor    = color.RGBA{109, 117, 238, 255}
	StaminaLowColor = color.RGBA{63, 72, 204, 255}
	DamageColor     = color.RGBA{200, 0, 0, 255}
	PauseDimColor   = color.RGBA{0, 0, 0, 128}
)

// PlaceholderColors tint generated sprites when an image set is missing.
var PlaceholderColors = map[string]color.RGBA{
	"hen":    {240, 230, 200, 255},
	"knight": {170, 170, 190, 255},
	"pirate": {150, 60, 40, 255},
	"item":   {255, 140, 0, 255},
}
