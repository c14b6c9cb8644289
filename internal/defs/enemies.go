// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Damage   int          `json:"damage"`
	SpeedMin float64      `json:"speed_min"`
	SpeedMax float64      `json:"speed_max"`
	Behavior BehaviorType `json:"behavior"`
	Sprite   string       `json:"sprite"`
	Weight   int          `json:"weight"`
	// Erratic movers wait a whole number of seconds in [WaitMin, WaitMax] between turns.
	WaitMin int `json:"wait_min,omitempty"`
	WaitMax int `json:"wait_max,omitempty"`
}

// EnemyLibrary is the set of archetypes the spawner draws from, in file order.
type EnemyLibrary struct {
	defs []EnemyDefinition
	byID map[string]int
}

// Len returns the number of archetypes.
func (l *EnemyLibrary) Len() int { return len(l.defs) }

// All returns the archetypes in file order.
func (l *EnemyLibrary) All() []EnemyDefinition {
	out := make([]EnemyDefinition, len(l.defs))
	copy(out, l.defs)
	return out
}

// Get looks an archetype up by id.
func (l *EnemyLibrary) Get(id string) (EnemyDefinition, bool) {
	i, ok := l.byID[id]
	if !ok {
		return EnemyDefinition{}, false
	}
	return l.defs[i], true
}

// SpawnTable returns one weighted entry per archetype.
func (l *EnemyLibrary) SpawnTable() []SpawnEntry {
	entries := make([]SpawnEntry, 0, len(l.defs))
	for _, d := range l.defs {
		entries = append(entries, SpawnEntry{EnemyID: d.ID, Weight: d.Weight})
	}
	return entries
}
