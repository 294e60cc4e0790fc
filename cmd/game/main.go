// game is a tile-based platformer.
//
// Usage:
//
//	game play [map]                  - Play a map in a window
//	game sim <map> --replay <file>   - Re-run a recording headless
//	game scores [map]                - Show the best runs
//	game maps                        - List the built-in maps
//
// A map argument is a path to a JSON map file or the name of a built-in map.
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--tuning <path>      - Tuning YAML overriding the built-in constants
//	--db <path>          - Run history database (default: ~/.platformer/runs.db)
//	--seed <value>       - RNG seed (0 = from the clock)
//	--weapon <name>      - fireball or banana
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
)

var (
	// Global flags
	flagLogLevel string
	flagTuning   string
	flagDBPath   string
	flagSeed     int64
	flagWeapon   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "A tile-based platformer",
	Long: `A tile-based platformer with stompable enemies, power-ups, hazards
and deterministic input replays.

Examples:
  game play
  game play levels/castle.json --record run.json
  game sim demo --replay run.json
  game scores demo`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to the run history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagWeapon, "weapon", "fireball", "Projectile thrown after a fire flower (fireball, banana)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapsCmd)
}

// newLogger builds the process logger from --log-level
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	logger.SetLevel(level)
	return logger, nil
}

// loadTuning applies --tuning over the built-in constants
func loadTuning() (config.Tuning, error) {
	return config.LoadTuning(flagTuning)
}

// parseWeapon validates --weapon
func parseWeapon(name string) (entity.BulletVariant, error) {
	w, ok := entity.ParseBulletVariant(name)
	if !ok {
		return 0, fmt.Errorf("unknown weapon %q (want fireball or banana)", name)
	}
	return w, nil
}
