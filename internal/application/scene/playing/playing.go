// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/replay"
	"github.com/Niaki1412/Super-Mario-Game/internal/application/scene"
	"github.com/Niaki1412/Super-Mario-Game/internal/application/state"
	"github.com/Niaki1412/Super-Mario-Game/internal/application/system"
	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/render"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/storage"
)

var (
	colorPause    = color.RGBA{0, 0, 0, 128}
	colorGameOver = color.RGBA{100, 0, 0, 180}
	colorClear    = color.RGBA{0, 60, 0, 160}
)

// RunSaver stores finished runs
type RunSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Config configures a Playing scene
type Config struct {
	Map     *config.GameMap
	Tuning  config.Tuning
	Weapon  entity.BulletVariant
	Seed    int64 // 0 picks a seed from the clock on every (re)start
	ScreenW int
	ScreenH int

	// RecordPath enables input recording. "auto" names the file from the clock.
	RecordPath string

	Controls Controls
	Audio    system.AudioSink
	Runs     RunSaver // optional
	Logger   *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	cfg    Config
	logger *log.Logger

	sim   *system.Simulation
	state state.GameState
	seed  int64
	prev  system.Keys
	dt    float64
	saved bool // run already stored for this attempt

	recorder *replay.Recorder
}

// New creates a new Playing scene and builds the first simulation
func New(cfg Config) (*Playing, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Controls == nil {
		cfg.Controls = NewKeyboard()
	}
	if cfg.ScreenW <= 0 {
		cfg.ScreenW = system.DefaultViewportWidth
	}
	if cfg.ScreenH <= 0 && cfg.Map != nil {
		cfg.ScreenH = cfg.Map.Height * cfg.Map.TileSize
	}

	p := &Playing{
		cfg:    cfg,
		logger: cfg.Logger.WithPrefix("playing"),
		dt:     replay.DefaultDT,
	}
	if err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds a fresh simulation, and a fresh recorder when recording
func (p *Playing) start() error {
	p.seed = p.cfg.Seed
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}

	sim, err := system.NewSimulation(p.cfg.Map, p.cfg.Tuning, system.Options{
		Seed:          p.seed,
		ViewportWidth: float64(p.cfg.ScreenW),
		Weapon:        p.cfg.Weapon,
		Audio:         p.cfg.Audio,
		Logger:        p.cfg.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}

	p.sim = sim
	p.state = state.StatePlaying
	p.prev = system.Keys{}
	p.saved = false

	if p.cfg.RecordPath != "" {
		p.recorder = replay.NewRecorder(p.seed, p.cfg.Map.Name, p.cfg.Weapon.String(), p.dt)
		p.recorder.SetTuning(p.cfg.Tuning.Fingerprint())
		p.logger.Info("recording enabled", "path", p.cfg.RecordPath, "seed", p.seed)
	}
	return nil
}

// Update advances the scene by one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if dt > 0 {
		p.dt = dt
	}
	ctl := p.cfg.Controls

	switch p.state {
	case state.StatePlaying:
		if ctl.PausePressed() {
			p.state = p.state.TogglePause()
			return nil, nil
		}
		if ctl.SavePressed() {
			p.saveRecording()
		}
		p.step(ctl.Keys())
	case state.StatePaused:
		if ctl.PausePressed() {
			p.state = p.state.TogglePause()
		}
	case state.StateGameOver, state.StateStageClear:
		if ctl.RestartPressed() {
			if err := p.start(); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

func (p *Playing) step(keys system.Keys) {
	if p.recorder != nil {
		p.recorder.RecordFrame(keys)
	}

	res := p.sim.Step(p.dt, system.NewInput(keys, p.prev))
	p.prev = keys
	p.state = p.state.AfterStep(res.Died, res.Won)

	if p.state.Finished() {
		p.finish()
	}
}

// finish logs the outcome and stores the run and recording
func (p *Playing) finish() {
	outcome := storage.OutcomeDied
	if p.state == state.StateStageClear {
		outcome = storage.OutcomeWon
	}
	p.logger.Info("run finished",
		"outcome", outcome,
		"score", p.sim.Score(),
		"frames", p.sim.Frame())

	p.saveRun(outcome)
	p.saveRecording()
}

func (p *Playing) saveRun(outcome storage.Outcome) {
	if p.saved || p.cfg.Runs == nil || p.sim.Frame() == 0 {
		return
	}
	p.saved = true

	_, err := p.cfg.Runs.SaveRun(storage.Run{
		Map:     p.cfg.Map.Name,
		Score:   p.sim.Score(),
		Outcome: outcome,
		Frames:  p.sim.Frame(),
		Seed:    p.seed,
	})
	if err != nil {
		p.logger.Error("failed to save run", "err", err)
	}
}

// saveRecording writes the recording so far to disk
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.cfg.RecordPath
	if filename == "auto" {
		filename = replay.GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the world, the HUD and any state overlay
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.cfg.Map.Background())

	r := render.New(screen)
	p.sim.Draw(r, float64(p.cfg.ScreenW), float64(p.cfg.ScreenH))
	p.drawHUD(r)

	switch p.state {
	case state.StatePaused:
		r.Overlay(colorPause)
		r.Text("PAUSED\n\nPress ESC to resume", p.cfg.ScreenW/2-50, p.cfg.ScreenH/2-20)
	case state.StateGameOver:
		r.Overlay(colorGameOver)
		r.Text(fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress R to restart", p.sim.Score()),
			p.cfg.ScreenW/2-60, p.cfg.ScreenH/2-30)
	case state.StateStageClear:
		r.Overlay(colorClear)
		r.Text(fmt.Sprintf("STAGE CLEAR\n\nScore: %d\nTime: %.1fs\n\nPress R to play again",
			p.sim.Score(), p.sim.Elapsed()), p.cfg.ScreenW/2-60, p.cfg.ScreenH/2-36)
	}
}

func (p *Playing) drawHUD(r *render.Renderer) {
	pl := p.sim.Player()
	power := "small"
	switch {
	case pl.CanShoot:
		power = p.cfg.Weapon.String()
	case pl.Big:
		power = "big"
	}
	r.Text(fmt.Sprintf("SCORE %06d  TIME %5.1f  %s", p.sim.Score(), p.sim.Elapsed(), power), 4, 4)
	if p.recorder != nil {
		r.Text(fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.cfg.ScreenW-70, 4)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("entered", "map", p.cfg.Map.Name, "seed", p.seed)
}

// OnExit stores an unfinished run as aborted and flushes the recording
func (p *Playing) OnExit() {
	if !p.state.Finished() {
		p.saveRun(storage.OutcomeAborted)
		p.saveRecording()
	}
}

// State returns the current game state
func (p *Playing) State() state.GameState { return p.state }

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation { return p.sim }

// Seed returns the seed of the current attempt
func (p *Playing) Seed() int64 { return p.seed }

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(_, _ int) (int, int) {
	return p.cfg.ScreenW, p.cfg.ScreenH
}
