// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrInvalidDefinition wraps archetype validation failures.
var ErrInvalidDefinition = errors.New("invalid enemy definition")

//go:embed enemies.json
var builtinEnemies []byte

// DefaultEnemies returns the built-in archetypes.
func DefaultEnemies() *EnemyLibrary {
	lib, err := ParseEnemyDefinitions(builtinEnemies)
	if err != nil {
		panic(fmt.Sprintf("built-in enemy definitions: %v", err))
	}
	return lib
}

// LoadEnemyDefinitions reads an enemy configuration file.
// An empty path returns the built-in library.
func LoadEnemyDefinitions(path string) (*EnemyLibrary, error) {
	if path == "" {
		return DefaultEnemies(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := ParseEnemyDefinitions(file)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded enemy definitions", "path", path, "count", lib.Len())
	return lib, nil
}

// ParseEnemyDefinitions decodes and validates a JSON array of archetypes.
func ParseEnemyDefinitions(data []byte) (*EnemyLibrary, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if len(enemyDefs) == 0 {
		return nil, fmt.Errorf("%w: no archetypes", ErrInvalidDefinition)
	}

	lib := &EnemyLibrary{byID: make(map[string]int, len(enemyDefs))}
	for _, def := range enemyDefs {
		if err := validate(def); err != nil {
			return nil, err
		}
		if _, dup := lib.byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidDefinition, def.ID)
		}
		if def.Sprite == "" {
			def.Sprite = def.ID
		}
		lib.byID[def.ID] = len(lib.defs)
		lib.defs = append(lib.defs, def)
	}
	return lib, nil
}

func validate(def EnemyDefinition) error {
	switch {
	case def.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidDefinition)
	case def.SpeedMin <= 0 || def.SpeedMax < def.SpeedMin:
		return fmt.Errorf("%w: %s speed range [%v, %v]", ErrInvalidDefinition, def.ID, def.SpeedMin, def.SpeedMax)
	case def.Damage < 0:
		return fmt.Errorf("%w: %s damage %d", ErrInvalidDefinition, def.ID, def.Damage)
	case def.Weight < 0:
		return fmt.Errorf("%w: %s weight %d", ErrInvalidDefinition, def.ID, def.Weight)
	}
	switch def.Behavior {
	case BehaviorStraight:
	case BehaviorErratic:
		if def.WaitMin < 1 || def.WaitMax < def.WaitMin {
			return fmt.Errorf("%w: %s wait range [%d, %d]", ErrInvalidDefinition, def.ID, def.WaitMin, def.WaitMax)
		}
	default:
		return fmt.Errorf("%w: %s behavior %q", ErrInvalidDefinition, def.ID, def.Behavior)
	}
	return nil
}
