package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"gopkg.in/yaml.v3"
)

// Manifest maps sprite ids to image files.
//
// Example:
//
//	base_path: images
//	images:
//	  - id: enemy
//	    path: kitten.png
type Manifest struct {
	BasePath string       `yaml:"base_path"`
	Images   []ImageEntry `yaml:"images"`

	dir string // directory of the manifest file; relative paths resolve against it
}

type ImageEntry struct {
	ID   game.SpriteID `yaml:"id"`
	Path string        `yaml:"path"`
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse asset manifest YAML: %w", err)
	}

	if err := validateManifest(&m); err != nil {
		return nil, fmt.Errorf("invalid asset manifest %s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return &m, nil
}

func validateManifest(m *Manifest) error {
	known := make(map[game.SpriteID]bool, len(game.AllSprites))
	for _, id := range game.AllSprites {
		known[id] = true
	}
	seen := make(map[game.SpriteID]bool, len(m.Images))
	for i, img := range m.Images {
		if img.ID == "" {
			return fmt.Errorf("images[%d]: id cannot be empty", i)
		}
		if !known[img.ID] {
			return fmt.Errorf("images[%d]: unknown sprite id %q", i, img.ID)
		}
		if seen[img.ID] {
			return fmt.Errorf("images[%d]: duplicate sprite id %q", i, img.ID)
		}
		seen[img.ID] = true
		if img.Path == "" {
			return fmt.Errorf("images[%d]: path for %q cannot be empty", i, img.ID)
		}
	}
	return nil
}

// Resolve returns the file path for a sprite, or false when the manifest
// does not list it.
func (m *Manifest) Resolve(id game.SpriteID) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, img := range m.Images {
		if img.ID != id {
			continue
		}
		if filepath.IsAbs(img.Path) {
			return img.Path, true
		}
		return filepath.Join(m.dir, m.BasePath, img.Path), true
	}
	return "", false
}
