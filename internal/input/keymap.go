// internal/input/keymap.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
)

// Intent is what the player asked for during one frame.
type Intent struct {
	Direction    component.Direction
	HasDirection bool
	Dash         bool
	Pause        bool
	Quit         bool
	Confirm      bool
}

type binding struct {
	key ebiten.Key
	dir component.Direction
}

// Keymap binds keys to intents. Arrows always steer; the letter cluster
// depends on the keyboard layout.
type Keymap struct {
	directions []binding
	dash       ebiten.Key
	pause      ebiten.Key
	quit       ebiten.Key
	confirm    ebiten.Key
}

func NewKeymap(layout string) Keymap {
	km := Keymap{
		directions: []binding{
			{ebiten.KeyArrowUp, component.Up},
			{ebiten.KeyArrowDown, component.Down},
			{ebiten.KeyArrowLeft, component.Left},
			{ebiten.KeyArrowRight, component.Right},
		},
		dash:    ebiten.KeySpace,
		pause:   ebiten.KeyP,
		quit:    ebiten.KeyEscape,
		confirm: ebiten.KeyEnter,
	}
	switch layout {
	case config.LayoutWASD:
		km.directions = append(km.directions,
			binding{ebiten.KeyW, component.Up},
			binding{ebiten.KeyS, component.Down},
			binding{ebiten.KeyA, component.Left},
			binding{ebiten.KeyD, component.Right},
		)
	default:
		km.directions = append(km.directions,
			binding{ebiten.KeyZ, component.Up},
			binding{ebiten.KeyS, component.Down},
			binding{ebiten.KeyQ, component.Left},
			binding{ebiten.KeyD, component.Right},
		)
	}
	return km
}

// Resolve builds an intent from a pressed-key predicate. When several
// direction keys fire together the first binding wins.
func (km Keymap) Resolve(pressed func(ebiten.Key) bool) Intent {
	var in Intent
	for _, b := range km.directions {
		if pressed(b.key) {
			in.Direction = b.dir
			in.HasDirection = true
			break
		}
	}
	in.Dash = pressed(km.dash)
	in.Pause = pressed(km.pause)
	in.Quit = pressed(km.quit)
	in.Confirm = pressed(km.confirm) || pressed(ebiten.KeyNumpadEnter)
	return in
}

// Poll resolves this frame's just-pressed keys.
func (km Keymap) Poll() Intent {
	return km.Resolve(inpututil.IsKeyJustPressed)
}
