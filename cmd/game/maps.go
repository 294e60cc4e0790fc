package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
)

//go:embed maps/*.json
var mapsFS embed.FS

// defaultMap is played when no map is given
const defaultMap = "demo"

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the built-in maps",
	Args:  cobra.NoArgs,
	RunE:  runMaps,
}

func runMaps(cmd *cobra.Command, _ []string) error {
	names, err := builtinMaps()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	loader := config.NewFSLoader(mapsFS, "maps")
	for _, name := range names {
		m, err := loader.LoadMap(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-12s %3dx%-3d %d objects, %d coins\n",
			name, m.Width, m.Height, len(m.Objects), len(m.ObjectsOfType("Coin")))
	}
	return nil
}

// builtinMaps lists the embedded map names without extension
func builtinMaps() ([]string, error) {
	entries, err := fs.ReadDir(mapsFS, "maps")
	if err != nil {
		return nil, fmt.Errorf("failed to list built-in maps: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	return names, nil
}

// loadMap resolves a map argument: an existing file on disk wins,
// anything else is looked up among the built-in maps.
func loadMap(arg string) (*config.GameMap, error) {
	if arg == "" {
		arg = defaultMap
	}
	if _, err := os.Stat(arg); err == nil {
		return config.LoadMapFile(arg)
	}

	name := strings.TrimSuffix(path.Base(arg), ".json")
	m, err := config.NewFSLoader(mapsFS, "maps").LoadMap(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no map file or built-in map named %q", arg)
	}
	return m, err
}
