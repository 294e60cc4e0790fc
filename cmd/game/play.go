package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/game"
	"github.com/Niaki1412/Super-Mario-Game/internal/application/scene/playing"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/audio"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/storage"
)

var (
	flagRecord string
	flagScale  int
	flagWidth  int
	flagNoSave bool
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Play a map in a window",
	Long: `Open a window and play a map. Without an argument the built-in demo
map is played.

Controls:
  Arrows / WASD   move, down crouches
  Space / Up / W  jump
  X               double jump
  Z / J           shoot (after a fire flower)
  Esc / P         pause
  R / Enter       restart after the run ends
  F5              save the recording so far

Examples:
  game play
  game play my_level.json --record run.json
  game play --record auto --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", `Record input to this file ("auto" names it from the clock)`)
	playCmd.Flags().IntVar(&flagScale, "scale", 2, "Window scale factor")
	playCmd.Flags().IntVar(&flagWidth, "width", 480, "Logical screen width in pixels")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the run in the history database")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	tuning, err := loadTuning()
	if err != nil {
		return err
	}
	weapon, err := parseWeapon(flagWeapon)
	if err != nil {
		return err
	}

	var mapArg string
	if len(args) > 0 {
		mapArg = args[0]
	}
	m, err := loadMap(mapArg)
	if err != nil {
		return err
	}

	var runs playing.RunSaver
	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("run history disabled", "err", err)
		} else {
			defer func() { _ = store.Close() }()
			runs = store
		}
	}

	screenW := flagWidth
	screenH := m.Height * m.TileSize
	scn, err := playing.New(playing.Config{
		Map:        m,
		Tuning:     tuning,
		Weapon:     weapon,
		Seed:       flagSeed,
		ScreenW:    screenW,
		ScreenH:    screenH,
		RecordPath: flagRecord,
		Audio:      audio.NewLogSink(logger),
		Runs:       runs,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(screenW*flagScale, screenH*flagScale)
	ebiten.SetWindowTitle(fmt.Sprintf("Platformer - %s", m.Name))
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)

	g := game.New(scn, screenW, screenH)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	logger.Info("session ended", "map", m.Name, "frames", g.Frames())
	return nil
}
