// internal/assets/sprites.go
package assets

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
)

var fallbackColor = color.RGBA{200, 0, 200, 255}

// SpriteManager loads and caches animation frames and single images from the
// assets directory. Anything missing is replaced by a generated placeholder.
type SpriteManager struct {
	dir    string
	frames map[string]map[component.Direction][]*ebiten.Image
	images map[string]*ebiten.Image
	logger *slog.Logger
}

func NewSpriteManager(dir string, logger *slog.Logger) *SpriteManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpriteManager{
		dir:    dir,
		frames: make(map[string]map[component.Direction][]*ebiten.Image),
		images: make(map[string]*ebiten.Image),
		logger: logger,
	}
}

// Frame returns frame n of set facing dir, scaled to size.
// Files are looked up as sprites/<set>/<dir>_<n+1>.png.
func (m *SpriteManager) Frame(set string, dir component.Direction, n int, size component.Size) *ebiten.Image {
	byDir, ok := m.frames[set]
	if !ok {
		byDir = m.loadSet(set, size)
		m.frames[set] = byDir
	}
	frames := byDir[dir]
	if len(frames) == 0 {
		return nil
	}
	return frames[n%len(frames)]
}

func (m *SpriteManager) loadSet(set string, size component.Size) map[component.Direction][]*ebiten.Image {
	byDir := make(map[component.Direction][]*ebiten.Image, len(component.Directions))
	missing := 0
	for _, dir := range component.Directions {
		frames := make([]*ebiten.Image, 0, config.SpriteFrames)
		for i := 1; i <= config.SpriteFrames; i++ {
			path := filepath.Join(m.dir, "sprites", set, fmt.Sprintf("%s_%d.png", dir, i))
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				missing++
				frames = append(frames, placeholder(set, dir, size))
				continue
			}
			frames = append(frames, scaled(img, size))
		}
		byDir[dir] = frames
	}
	if missing > 0 {
		m.logger.Warn("sprite frames missing, using placeholders", "set", set, "missing", missing)
	}
	return byDir
}

// Image returns the image at rel (relative to the assets dir) scaled to size,
// or nil when it cannot be loaded.
func (m *SpriteManager) Image(rel string, size component.Size) *ebiten.Image {
	key := fmt.Sprintf("%s@%vx%v", rel, size.W, size.H)
	if img, ok := m.images[key]; ok {
		return img
	}
	src, _, err := ebitenutil.NewImageFromFile(filepath.Join(m.dir, rel))
	if err != nil {
		m.logger.Warn("image missing", "path", rel, "error", err)
		m.images[key] = nil
		return nil
	}
	img := scaled(src, size)
	m.images[key] = img
	return img
}

// PickupImage is the fire power-up sprite, or a placeholder square.
func (m *SpriteManager) PickupImage(size component.Size) *ebiten.Image {
	if img := m.Image("items/fire.png", size); img != nil {
		return img
	}
	key := "placeholder:item"
	if img, ok := m.images[key]; ok && img != nil {
		return img
	}
	img := placeholder("item", component.Up, size)
	m.images[key] = img
	return img
}

func scaled(src *ebiten.Image, size component.Size) *ebiten.Image {
	b := src.Bounds()
	dst := ebiten.NewImage(int(size.W), int(size.H))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.W/float64(b.Dx()), size.H/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// placeholder is a tinted square with a dark notch on the facing side.
func placeholder(set string, dir component.Direction, size component.Size) *ebiten.Image {
	clr, ok := config.PlaceholderColors[set]
	if !ok {
		clr = fallbackColor
	}
	img := ebiten.NewImage(int(size.W), int(size.H))
	img.Fill(clr)

	w, h := float32(size.W), float32(size.H)
	notch := color.RGBA{0, 0, 0, 160}
	switch dir {
	case component.Up:
		vector.DrawFilledRect(img, w/3, 0, w/3, h/5, notch, false)
	case component.Down:
		vector.DrawFilledRect(img, w/3, h-h/5, w/3, h/5, notch, false)
	case component.Left:
		vector.DrawFilledRect(img, 0, h/3, w/5, h/3, notch, false)
	case component.Right:
		vector.DrawFilledRect(img, w-w/5, h/3, w/5, h/3, notch, false)
	}
	return img
}
