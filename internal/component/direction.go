// internal/component/direction.go
package component

// Direction is one of the four cardinal facings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every facing in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Vector returns the unit step for the direction. Screen y grows downwards.
func (d Direction) Vector() Vec2 {
	switch d {
	case Up:
		return Vec2{X: 0, Y: -1}
	case Down:
		return Vec2{X: 0, Y: 1}
	case Left:
		return Vec2{X: -1, Y: 0}
	case Right:
		return Vec2{X: 1, Y: 0}
	}
	return Vec2{}
}

// String returns the lowercase name used in sprite file names.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
