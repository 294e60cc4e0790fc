package replay

import "github.com/Niaki1412/Super-Mario-Game/internal/application/system"

// DefaultDT is the fixed step used when a replay does not record one
const DefaultDT = 1.0 / 60.0

// Result summarizes a headless replay
type Result struct {
	Frames int
	Score  int
	Died   bool
	Won    bool
}

// Run feeds every recorded frame into sim until the frames run out or
// the run ends. sim must have been built with the replay's seed.
func Run(sim *system.Simulation, r *Replayer) Result {
	dt := r.data.DT
	if dt <= 0 {
		dt = DefaultDT
	}

	var res Result
	for !sim.Finished() {
		in, ok := r.NextInput()
		if !ok {
			break
		}
		step := sim.Step(dt, in)
		res.Frames++
		res.Score += step.ScoreDelta
		res.Died = res.Died || step.Died
		res.Won = res.Won || step.Won
	}
	return res
}
