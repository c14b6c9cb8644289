// internal/component/player.go
package component

import (
	"time"

	"go-chicken-run/internal/config"
)

// PlayerData holds the player's identity and vital resources.
type PlayerData struct {
	Name        string
	Health      int
	MaxHealth   int
	HealthRegen float64
	Stamina     int
	MaxStamina  int
}

// Player is the controllable hen.
type Player struct {
	Actor
	PlayerData

	DamageTimestamp    time.Time
	TimeToHeal         time.Duration
	OnFire             bool
	IsInvincible       bool
	InvincibilityStart time.Time
	KillCount          int
	Dead               bool
}

// NewPlayer creates a full-health player at the top-left corner facing down.
func NewPlayer(s config.PlayerSettings, size Size, now time.Time) *Player {
	return &Player{
		Actor: NewActor(Vec2{}, size, Down, s.Speed),
		PlayerData: PlayerData{
			Name:        s.Name,
			Health:      s.MaxHealth,
			MaxHealth:   s.MaxHealth,
			HealthRegen: s.HealthRegen,
			Stamina:     s.MaxStamina,
			MaxStamina:  s.MaxStamina,
		},
		DamageTimestamp: now,
	}
}
