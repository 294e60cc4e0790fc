package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/system"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder collects per-frame keys during play
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder starts a recording for the given run parameters
func NewRecorder(seed int64, stage, weapon string, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Stage:     stage,
			Weapon:    weapon,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// SetTuning stamps the recording with a tuning fingerprint
func (r *Recorder) SetTuning(fingerprint string) {
	r.data.Tuning = fingerprint
}

// RecordFrame appends one frame's held keys
func (r *Recorder) RecordFrame(k system.Keys) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameFromKeys(len(r.data.Frames), k))
}

// Stop stops recording. Frames already recorded are kept.
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the recording to a JSON file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// GenerateFilename creates a replay filename from the current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

// Replayer plays recorded keys back, pairing each frame with the
// previous one so press edges fire exactly as they did live
type Replayer struct {
	data  ReplayData
	frame int
	prev  system.Keys
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// NextInput returns the input for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) NextInput() (in system.Input, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Input{}, false
	}

	now := r.data.Frames[r.frame].Keys()
	in = system.NewInput(now, r.prev)
	r.prev = now
	r.frame++
	return in, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset rewinds to the first frame
func (r *Replayer) Reset() {
	r.frame = 0
	r.prev = system.Keys{}
}
