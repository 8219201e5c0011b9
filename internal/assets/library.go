package assets

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"os"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Library resolves sprite ids to ebiten images. Images listed in the
// manifest are loaded from disk; everything else, including files that fail
// to load, gets a generated placeholder.
//
// Not safe for concurrent use. Ebiten calls Draw from a single goroutine.
type Library struct {
	manifest *Manifest
	rules    game.Rules
	log      *zap.Logger

	sources map[game.SpriteID]image.Image
	images  map[game.SpriteID]*ebiten.Image
}

// NewLibrary creates a library. m may be nil for placeholders only.
func NewLibrary(m *Manifest, r game.Rules, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{
		manifest: m,
		rules:    r,
		log:      log,
		sources:  make(map[game.SpriteID]image.Image),
		images:   make(map[game.SpriteID]*ebiten.Image),
	}
}

// Source returns the decoded image for a sprite, loading it on first use.
func (l *Library) Source(id game.SpriteID) image.Image {
	if img, ok := l.sources[id]; ok {
		return img
	}
	var img image.Image
	if path, ok := l.manifest.Resolve(id); ok {
		decoded, err := decodeFile(path)
		if err != nil {
			l.log.Warn("sprite image unavailable, using placeholder",
				zap.String("sprite", string(id)), zap.Error(err))
		} else {
			img = decoded
		}
	}
	if img == nil {
		img = Placeholder(id, l.rules)
	}
	l.sources[id] = img
	return img
}

// Image returns the ebiten image for a sprite.
func (l *Library) Image(id game.SpriteID) *ebiten.Image {
	if img, ok := l.images[id]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(l.Source(id))
	l.images[id] = img
	return img
}

// Preload decodes every sprite up front and reports the first file that
// could not be read. Failed sprites still fall back to placeholders.
func (l *Library) Preload() error {
	var first error
	for _, id := range game.AllSprites {
		if path, ok := l.manifest.Resolve(id); ok && first == nil {
			if _, err := os.Stat(path); err != nil {
				first = fmt.Errorf("sprite %s: %w", id, err)
			}
		}
		l.Source(id)
	}
	return first
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
