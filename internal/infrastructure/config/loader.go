package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyMap is returned when a map file has no tile rows
var ErrEmptyMap = errors.New("map has no tiles")

// Loader loads maps from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new map loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new map loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadMap loads a map. Bare names resolve to maps/<name>.json,
// names ending in .json are read as-is.
func (l *Loader) LoadMap(name string) (*GameMap, error) {
	p := name
	if !strings.HasSuffix(name, ".json") {
		p = path.Join("maps", name+".json")
	}
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(path.Base(p), ".json")
	}
	return m, nil
}

// ParseMap decodes a map from JSON
func ParseMap(data []byte) (*GameMap, error) {
	var m GameMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if len(m.Tiles) == 0 {
		return nil, ErrEmptyMap
	}
	if m.TileSize <= 0 {
		m.TileSize = 32
	}
	if m.Height == 0 {
		m.Height = len(m.Tiles)
	}
	if m.Width == 0 {
		for _, row := range m.Tiles {
			if len(row) > m.Width {
				m.Width = len(row)
			}
		}
	}
	return &m, nil
}

// LoadMapFile loads a map from a path on disk
func LoadMapFile(p string) (*GameMap, error) {
	return NewLoader(filepath.Dir(p)).LoadMap(filepath.Base(p))
}

// LoadTuning loads the simulation tuning.
// Search order: customPath -> ~/.platformer/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadTuning(customPath string) (Tuning, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Tuning{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTuning(data)
		if err != nil {
			return Tuning{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTuning(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tuning.yaml"); err == nil {
		if cfg, err := parseTuning(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTuning(defaultTuningYAML)
	if err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseTuning(data []byte) (Tuning, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Tuning{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
