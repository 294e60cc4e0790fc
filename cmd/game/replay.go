package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/replay"
	"github.com/Niaki1412/Super-Mario-Game/internal/application/system"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/audio"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/storage"
)

var (
	flagReplay  string
	flagSimSave bool
)

var simCmd = &cobra.Command{
	Use:   "sim <map>",
	Short: "Re-run a recorded replay without a window",
	Long: `Load a map and feed it the inputs from a replay file, then print the
outcome. The seed and weapon come from the replay, so the run plays out
exactly as it was recorded. Tuning is not stored in the replay, only its
fingerprint: play it back with the same --tuning file it was recorded with,
otherwise the run diverges and a warning is logged.

Examples:
  game sim demo --replay run.json
  game sim my_level.json --replay run.json --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay file to play back (required)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the outcome in the run history database")
	_ = simCmd.MarkFlagRequired("replay")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	tuning, err := loadTuning()
	if err != nil {
		return err
	}
	m, err := loadMap(args[0])
	if err != nil {
		return err
	}
	data, err := replay.LoadReplay(flagReplay)
	if err != nil {
		return err
	}
	for _, w := range replayWarnings(*data, m, tuning) {
		logger.Warn(w)
	}

	cues := audio.NewCounter()
	res, err := simulate(m, tuning, *data, audio.Multi{audio.NewLogSink(logger), cues})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "map:     %s\n", m.Name)
	fmt.Fprintf(out, "seed:    %d\n", data.Seed)
	fmt.Fprintf(out, "frames:  %d/%d\n", res.Frames, len(data.Frames))
	fmt.Fprintf(out, "score:   %d\n", res.Score)
	fmt.Fprintf(out, "outcome: %s\n", outcomeOf(res))
	fmt.Fprintf(out, "cues:    %s\n", cues.Summary())

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	_, err = store.SaveRun(storage.Run{
		Map:     m.Name,
		Score:   res.Score,
		Outcome: outcomeOf(res),
		Frames:  res.Frames,
		Seed:    data.Seed,
	})
	return err
}

// replayWarnings lists the ways data was recorded under different
// conditions than the ones it is about to be played with
func replayWarnings(data replay.ReplayData, m *config.GameMap, tuning config.Tuning) []string {
	var warnings []string
	if data.Stage != "" && data.Stage != m.Name {
		warnings = append(warnings, fmt.Sprintf("replay was recorded on map %q, playing %q", data.Stage, m.Name))
	}
	if data.Tuning != "" && data.Tuning != tuning.Fingerprint() {
		warnings = append(warnings, "replay was recorded with different tuning; playback may diverge")
	}
	return warnings
}

// simulate replays data on a fresh simulation of m
func simulate(m *config.GameMap, tuning config.Tuning, data replay.ReplayData, sink system.AudioSink) (replay.Result, error) {
	weapon, err := parseWeapon(data.Weapon)
	if err != nil {
		return replay.Result{}, err
	}
	sim, err := system.NewSimulation(m, tuning, system.Options{
		Seed:   data.Seed,
		Weapon: weapon,
		Audio:  sink,
	})
	if err != nil {
		return replay.Result{}, err
	}
	return replay.Run(sim, replay.NewReplayer(data)), nil
}

func outcomeOf(res replay.Result) storage.Outcome {
	switch {
	case res.Died:
		return storage.OutcomeDied
	case res.Won:
		return storage.OutcomeWon
	default:
		return storage.OutcomeAborted
	}
}
