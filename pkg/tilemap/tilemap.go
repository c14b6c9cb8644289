// pkg/tilemap/tilemap.go
package tilemap

import (
	"fmt"

	"go-chicken-run/internal/config"
	"go-chicken-run/pkg/noise"
)

// TileMap is an immutable grid of classified tiles, row-major.
type TileMap struct {
	rows, cols int
	tiles      []TileKind
}

// Generate builds a rows×cols map from Perlin noise with the fixed map resolution.
func Generate(rows, cols int, seed int64) (*TileMap, error) {
	field, err := noise.Generate(
		noise.Shape{Rows: rows, Cols: cols},
		noise.Resolution{X: config.MapNoiseResolution, Y: config.MapNoiseResolution},
		seed,
	)
	if err != nil {
		return nil, fmt.Errorf("generate tile map: %w", err)
	}
	return FromField(field, DefaultThresholds), nil
}

// FromSettings sizes the map to the window in tiles.
func FromSettings(s config.Settings) (*TileMap, error) {
	return Generate(s.WindowHeight/s.TileSize, s.WindowWidth/s.TileSize, s.MapSeed)
}

// FromField classifies every sample of field.
func FromField(field noise.Field, th Thresholds) *TileMap {
	m := &TileMap{
		rows:  field.Rows(),
		cols:  field.Cols(),
		tiles: make([]TileKind, field.Rows()*field.Cols()),
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			m.tiles[r*m.cols+c] = th.Classify(field.At(r, c))
		}
	}
	return m
}

// Rows returns the number of tile rows.
func (m *TileMap) Rows() int { return m.rows }

// Cols returns the number of tile columns.
func (m *TileMap) Cols() int { return m.cols }

// Contains reports whether (row, col) is inside the map.
func (m *TileMap) Contains(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// TileAt returns the tile at (row, col).
func (m *TileMap) TileAt(row, col int) (TileKind, bool) {
	if !m.Contains(row, col) {
		return TileKind{}, false
	}
	return m.tiles[row*m.cols+col], true
}

// IsWalkable reports whether the tile at (row, col) can be walked on.
// Movement does not consult it yet; cells outside the map are not walkable.
func (m *TileMap) IsWalkable(row, col int) bool {
	tile, ok := m.TileAt(row, col)
	return ok && tile.Walkable
}

// Each calls fn for every tile in row-major order.
func (m *TileMap) Each(fn func(row, col int, kind TileKind)) {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			fn(r, c, m.tiles[r*m.cols+c])
		}
	}
}

// Counts returns how many tiles of each kind name the map holds.
func (m *TileMap) Counts() map[string]int {
	counts := make(map[string]int)
	for _, t := range m.tiles {
		counts[t.Name]++
	}
	return counts
}
