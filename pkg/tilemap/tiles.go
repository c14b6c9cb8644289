// pkg/tilemap/tiles.go
package tilemap

import "image/color"

// TileKind describes one type of map tile and how it is rendered.
type TileKind struct {
	ID       int
	Name     string
	Color    color.RGBA
	Image    string // optional image reference, relative to the assets dir
	Walkable bool
}

var (
	Dirt        = TileKind{ID: 0, Name: "dirt", Color: color.RGBA{139, 69, 19, 255}, Walkable: true}
	Grass       = TileKind{ID: 1, Name: "grass", Color: color.RGBA{0, 255, 0, 255}, Walkable: true}
	Water       = TileKind{ID: 2, Name: "water", Color: color.RGBA{0, 0, 255, 255}, Walkable: false}
	Tree        = TileKind{ID: 4, Name: "tree", Color: color.RGBA{0, 128, 0, 255}, Walkable: false}
	GrassSmall  = TileKind{ID: 5, Name: "grass_small", Color: color.RGBA{0, 128, 0, 255}, Walkable: true}
	GrassMedium = TileKind{ID: 6, Name: "grass_medium", Color: color.RGBA{0, 128, 0, 255}, Image: "tiles/grass_medium.png", Walkable: true}
	GrassLarge  = TileKind{ID: 7, Name: "grass_large", Color: color.RGBA{0, 128, 0, 255}, Image: "tiles/grass_large.png", Walkable: true}
	GrassXLarge = TileKind{ID: 8, Name: "grass_xlarge", Color: color.RGBA{0, 128, 0, 255}, Walkable: true}
	Gravel      = TileKind{ID: 9, Name: "gravel", Color: color.RGBA{128, 128, 128, 255}, Walkable: true}
)

// Kinds lists every known tile kind in id order.
var Kinds = []TileKind{Dirt, Grass, Water, Tree, GrassSmall, GrassMedium, GrassLarge, GrassXLarge, Gravel}

// KindByName looks a tile kind up by its name.
func KindByName(name string) (TileKind, bool) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return TileKind{}, false
}

// Thresholds split noise values into plain, medium and large grass.
type Thresholds struct {
	Plain  float64 // values below are plain grass
	Medium float64 // values below (and >= Plain) are medium grass
}

// DefaultThresholds are the classification cut-offs used for generated maps.
var DefaultThresholds = Thresholds{Plain: -0.1, Medium: 0.5}

// Classify maps a noise sample to a tile kind.
func (t Thresholds) Classify(v float64) TileKind {
	switch {
	case v < t.Plain:
		return Grass
	case v < t.Medium:
		return GrassMedium
	default:
		return GrassLarge
	}
}

// Classify uses DefaultThresholds.
func Classify(v float64) TileKind {
	return DefaultThresholds.Classify(v)
}
