// pkg/render/tile_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-run/internal/component"
	"go-chicken-run/pkg/tilemap"
)

// ImageSource resolves tile image references. A nil result means "draw the
// flat color instead".
type ImageSource interface {
	Image(rel string, size component.Size) *ebiten.Image
}

// TileRenderer pre-renders a tile map into one background image.
type TileRenderer struct {
	tiles    *tilemap.TileMap
	tileSize int
	images   ImageSource
	colors   MapColors
	mapImage *ebiten.Image
}

func NewTileRenderer(tiles *tilemap.TileMap, tileSize int, images ImageSource, colors MapColors) *TileRenderer {
	return &TileRenderer{
		tiles:    tiles,
		tileSize: tileSize,
		images:   images,
		colors:   colors,
	}
}

// SetTileMap swaps the map and drops the cached background.
func (r *TileRenderer) SetTileMap(tiles *tilemap.TileMap) {
	r.tiles = tiles
	r.mapImage = nil
}

// RenderMapImage draws every tile into the cached background.
func (r *TileRenderer) RenderMapImage() *ebiten.Image {
	w, h := r.tiles.Cols()*r.tileSize, r.tiles.Rows()*r.tileSize
	img := ebiten.NewImage(w, h)
	img.Fill(r.colors.BackgroundColor)

	ts := float32(r.tileSize)
	size := component.Size{W: float64(r.tileSize), H: float64(r.tileSize)}
	r.tiles.Each(func(row, col int, kind tilemap.TileKind) {
		x, y := float32(col)*ts, float32(row)*ts
		if kind.Image != "" && r.images != nil {
			if tile := r.images.Image(kind.Image, size); tile != nil {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x), float64(y))
				img.DrawImage(tile, op)
				return
			}
		}
		vector.DrawFilledRect(img, x, y, ts, ts, kind.Color, false)
	})

	if r.colors.GridColor.A > 0 {
		for c := 0; c <= r.tiles.Cols(); c++ {
			vector.StrokeLine(img, float32(c)*ts, 0, float32(c)*ts, float32(h), 1, r.colors.GridColor, false)
		}
		for row := 0; row <= r.tiles.Rows(); row++ {
			vector.StrokeLine(img, 0, float32(row)*ts, float32(w), float32(row)*ts, 1, r.colors.GridColor, false)
		}
	}

	r.mapImage = img
	return img
}

// Draw blits the background, rendering it on first use.
func (r *TileRenderer) Draw(screen *ebiten.Image) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)
}
